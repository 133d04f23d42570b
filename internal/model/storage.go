package model

import "context"

// ObjectStore keeps write-once documents under string keys.
type ObjectStore interface {
	// Create writes body under key unless an object already exists there
	// and reports whether it wrote.
	Create(ctx context.Context, key string, body []byte) (bool, error)
	// Get returns the body stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}

// ReceiptArchive keeps a copy of every submitted payment receipt.
type ReceiptArchive interface {
	Archive(ctx context.Context, receipt PaymentReceipt) error
	// Load returns the archived receipt of the transaction hash sent by
	// source, or ErrNotFound.
	Load(ctx context.Context, source, hash string) (PaymentReceipt, error)
}
