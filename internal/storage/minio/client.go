package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// MaxObjectSize bounds what Get reads back. A receipt is a few hundred bytes.
const MaxObjectSize = 64 << 10

const jsonContentType = "application/json"

// objectAPI is the part of *minio.Client the archive bucket is driven through.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// minioObjects narrows GetObject's *minio.Object to io.ReadCloser.
type minioObjects struct {
	*minio.Client
}

func (m minioObjects) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := m.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

var _ model.ObjectStore = (*Client)(nil)

// Client stores JSON documents in a single bucket.
type Client struct {
	api    objectAPI
	bucket string
}

// Dial creates a *minio.Client with static credentials.
func Dial(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return client, nil
}

// NewClient creates bucket if needed and returns a Client bound to it.
func NewClient(ctx context.Context, client *minio.Client, bucket string) (*Client, error) {
	return newClient(ctx, minioObjects{Client: client}, bucket)
}

func newClient(ctx context.Context, api objectAPI, bucket string) (*Client, error) {
	if bucket == "" {
		return nil, errors.New("bucket name is empty")
	}

	c := &Client{api: api, bucket: bucket}
	if err := c.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) ensureBucket(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", c.bucket, err)
	}
	if exists {
		return nil
	}

	if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		// Another replica may have created it between the two calls.
		switch minio.ToErrorResponse(err).Code {
		case "BucketAlreadyOwnedByYou", "BucketAlreadyExists":
			return nil
		}
		return fmt.Errorf("failed to create bucket %q: %w", c.bucket, err)
	}
	return nil
}

// Create writes body as JSON under key unless the key is already taken.
func (c *Client) Create(ctx context.Context, key string, body []byte) (bool, error) {
	_, err := c.api.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return false, nil
	}
	if !isNoSuchKey(err) {
		return false, fmt.Errorf("failed to stat object %q: %w", key, err)
	}

	_, err = c.api.PutObject(ctx, c.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: jsonContentType,
	})
	if err != nil {
		return false, fmt.Errorf("failed to put object %q: %w", key, err)
	}
	return true, nil
}

// Get reads the object under key. minio defers the request to the first
// read, so a missing key can surface from either call.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := c.api.GetObject(ctx, c.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, getError(key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(io.LimitReader(obj, MaxObjectSize+1))
	if err != nil {
		return nil, getError(key, err)
	}
	if len(body) > MaxObjectSize {
		return nil, fmt.Errorf("object %q exceeds %d bytes", key, MaxObjectSize)
	}
	return body, nil
}

func getError(key string, err error) error {
	if isNoSuchKey(err) {
		return model.ErrNotFound
	}
	return fmt.Errorf("failed to get object %q: %w", key, err)
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
