package service

import (
	"context"
	"encoding/hex"

	"github.com/dtroode/stellar-wallet-server/internal/keys"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Wallet exposes ledger operations to authenticated callers.
type Wallet struct {
	payments *Payment
	gateway  model.LedgerGateway
	archive  model.ReceiptArchive
	events   model.EventPublisher
	logger   *logger.Logger
}

// NewWallet creates a Wallet. archive and events may be nil.
func NewWallet(
	payments *Payment,
	gateway model.LedgerGateway,
	archive model.ReceiptArchive,
	events model.EventPublisher,
	logger *logger.Logger,
) *Wallet {
	return &Wallet{
		payments: payments,
		gateway:  gateway,
		archive:  archive,
		events:   events,
		logger:   logger,
	}
}

func (w *Wallet) GetBalances(ctx context.Context, publicKey string) ([]model.LedgerBalance, error) {
	return w.gateway.GetBalances(ctx, publicKey)
}

// SubmitPayment validates req and submits it. Validation failures never reach the network.
func (w *Wallet) SubmitPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentReceipt, error) {
	instruction, err := w.payments.Build(req)
	if err != nil {
		w.logger.Debug("Wallet service: payment rejected by validation",
			"destination", req.Destination,
			"error", err.Error())
		return model.PaymentReceipt{}, err
	}

	receipt, err := w.gateway.SubmitPayment(ctx, instruction)
	if err != nil {
		return model.PaymentReceipt{}, err
	}

	if w.archive != nil {
		if err := w.archive.Archive(ctx, receipt); err != nil {
			w.logger.Warn("Wallet service: failed to archive receipt",
				"hash", receipt.TransactionHash,
				"error", err.Error())
		}
	}

	if w.events != nil {
		if err := w.events.PublishPaymentSubmitted(ctx, receipt); err != nil {
			w.logger.Warn("Wallet service: failed to publish payment event",
				"hash", receipt.TransactionHash,
				"error", err.Error())
		}
	}

	return receipt, nil
}

func (w *Wallet) GetHistory(ctx context.Context, publicKey string, limit int) ([]model.LedgerTransactionRecord, error) {
	return w.gateway.GetTransactionHistory(ctx, publicKey, limit)
}

// TransactionHashLength is the hex length of a ledger transaction hash.
const TransactionHashLength = 64

// Receipt returns the archived receipt of a payment sent by source.
// Without an archive every lookup is model.ErrNotFound.
func (w *Wallet) Receipt(ctx context.Context, source, hash string) (model.PaymentReceipt, error) {
	if err := keys.ValidatePublicKey(source); err != nil {
		return model.PaymentReceipt{}, err
	}
	if len(hash) != TransactionHashLength {
		return model.PaymentReceipt{}, model.ErrInvalidTransactionHash
	}
	if _, err := hex.DecodeString(hash); err != nil {
		return model.PaymentReceipt{}, model.ErrInvalidTransactionHash
	}
	if w.archive == nil {
		return model.PaymentReceipt{}, model.ErrNotFound
	}

	return w.archive.Load(ctx, source, hash)
}
