// Package redis stores revoked access token identifiers in Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

const defaultPrefix = "stellar-wallet:revoked:"

var _ model.TokenDenylist = (*Denylist)(nil)

// Denylist is a Redis implementation of model.TokenDenylist.
type Denylist struct {
	client redis.Cmdable
	prefix string
}

// NewDenylist creates a Denylist on top of client.
func NewDenylist(client redis.Cmdable) *Denylist {
	return &Denylist{
		client: client,
		prefix: defaultPrefix,
	}
}

// Revoke stores tokenID with expiration ttl.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, d.prefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked checks whether tokenID has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	val, err := d.client.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return val > 0, nil
}

// NewClient parses url and returns a connected client.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
