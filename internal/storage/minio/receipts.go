package minio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

var _ model.ReceiptArchive = (*ReceiptArchive)(nil)

// ReceiptArchive stores payment receipts as JSON objects. A receipt is
// written once; later writes for the same transaction are ignored.
type ReceiptArchive struct {
	store model.ObjectStore
}

func NewReceiptArchive(store model.ObjectStore) *ReceiptArchive {
	return &ReceiptArchive{store: store}
}

// ReceiptKey returns the object key for a receipt: receipts/<source>/<hash>.json.
func ReceiptKey(source, hash string) string {
	return path.Join("receipts", source, hash+".json")
}

func (a *ReceiptArchive) Archive(ctx context.Context, receipt model.PaymentReceipt) error {
	if receipt.TransactionHash == "" || receipt.SourceAccount == "" {
		return fmt.Errorf("receipt is missing hash or source account")
	}

	body, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}

	if _, err := a.store.Create(ctx, ReceiptKey(receipt.SourceAccount, receipt.TransactionHash), body); err != nil {
		return fmt.Errorf("failed to archive receipt: %w", err)
	}
	return nil
}

// Load reads an archived receipt back. Returns model.ErrNotFound when absent.
func (a *ReceiptArchive) Load(ctx context.Context, source, hash string) (model.PaymentReceipt, error) {
	body, err := a.store.Get(ctx, ReceiptKey(source, hash))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PaymentReceipt{}, model.ErrNotFound
		}
		return model.PaymentReceipt{}, fmt.Errorf("failed to load receipt: %w", err)
	}

	var receipt model.PaymentReceipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return model.PaymentReceipt{}, fmt.Errorf("failed to decode receipt: %w", err)
	}
	return receipt, nil
}
