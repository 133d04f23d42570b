package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"

	"github.com/dtroode/stellar-wallet-server/internal/keys"
	"github.com/dtroode/stellar-wallet-server/internal/logger"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

const (
	// MaxHistoryLimit is the largest page Horizon serves.
	MaxHistoryLimit = 100
	// SubmissionTimeout is the validity window of a built transaction.
	SubmissionTimeout = 30 * time.Second
)

var _ model.LedgerGateway = (*Gateway)(nil)

// Gateway is the single point of contact with the Stellar network.
type Gateway struct {
	horizon    Horizon
	passphrase string
	baseFee    int64
	timeout    time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

// NewGateway creates a Gateway signing for the network identified by passphrase.
func NewGateway(horizon Horizon, passphrase string, baseFee int64, timeout time.Duration, logger *logger.Logger) *Gateway {
	if baseFee < txnbuild.MinBaseFee {
		baseFee = txnbuild.MinBaseFee
	}
	return &Gateway{
		horizon:    horizon,
		passphrase: passphrase,
		baseFee:    baseFee,
		timeout:    timeout,
		logger:     logger,
		now:        time.Now,
	}
}

// GetBalances returns every balance line of publicKey.
func (g *Gateway) GetBalances(ctx context.Context, publicKey string) ([]model.LedgerBalance, error) {
	if err := keys.ValidatePublicKey(publicKey); err != nil {
		return nil, err
	}

	account, err := call(ctx, g.timeout, func() (hProtocol.Account, error) {
		return g.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: publicKey})
	})
	if err != nil {
		g.logger.Debug("Ledger gateway: account lookup failed", "public_key", publicKey, "error", err)
		return nil, classify(err, readOperation)
	}

	balances := make([]model.LedgerBalance, 0, len(account.Balances))
	for _, b := range account.Balances {
		amount, err := decimal.NewFromString(b.Balance)
		if err != nil {
			return nil, &model.LedgerError{
				Kind:   model.ErrGatewayUnavailable,
				Reason: fmt.Sprintf("malformed balance %q", b.Balance),
			}
		}

		line := model.LedgerBalance{
			AssetType: b.Asset.Type,
			Balance:   amount,
		}
		if b.Asset.Type == "native" {
			line.AssetCode = model.NativeAssetCode
		} else {
			line.AssetCode = b.Asset.Code
			if b.Asset.Issuer != "" {
				issuer := b.Asset.Issuer
				line.AssetIssuer = &issuer
			}
		}
		balances = append(balances, line)
	}

	return balances, nil
}

// SubmitPayment builds, signs and submits a single-payment transaction.
func (g *Gateway) SubmitPayment(ctx context.Context, instruction model.TransferInstruction) (model.PaymentReceipt, error) {
	if instruction.Asset == nil {
		instruction.Asset = model.NativeAsset{}
	}
	if instruction.Signer == nil {
		return model.PaymentReceipt{}, fmt.Errorf("%w: missing signing key", model.ErrInvalidKeyFormat)
	}
	if err := keys.ValidatePublicKey(instruction.Destination); err != nil {
		return model.PaymentReceipt{}, err
	}

	asset, err := toTxnAsset(instruction.Asset)
	if err != nil {
		return model.PaymentReceipt{}, err
	}

	source := instruction.Signer.Address()

	account, err := call(ctx, g.timeout, func() (hProtocol.Account, error) {
		return g.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: source})
	})
	if err != nil {
		// Loading the sequence number is a read; only a missing source is user-actionable.
		return model.PaymentReceipt{}, classify(err, readOperation)
	}

	params := txnbuild.TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: instruction.Destination,
				Amount:      instruction.Amount.StringFixed(model.AmountPrecision),
				Asset:       asset,
			},
		},
		BaseFee: g.baseFee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(SubmissionTimeout / time.Second)),
		},
	}
	if instruction.Memo != "" {
		params.Memo = txnbuild.MemoText(instruction.Memo)
	}

	tx, err := txnbuild.NewTransaction(params)
	if err != nil {
		return model.PaymentReceipt{}, &model.LedgerError{Kind: model.ErrPaymentRejected, Reason: err.Error()}
	}

	tx, err = tx.Sign(g.passphrase, instruction.Signer)
	if err != nil {
		return model.PaymentReceipt{}, &model.LedgerError{Kind: model.ErrPaymentRejected, Reason: err.Error()}
	}

	result, err := call(ctx, g.timeout, func() (hProtocol.Transaction, error) {
		return g.horizon.SubmitTransaction(tx)
	})
	if err != nil {
		classified := classify(err, submitOperation)
		g.logger.Warn("Ledger gateway: payment submission failed",
			"source", source, "destination", instruction.Destination, "error", classified)
		return model.PaymentReceipt{}, classified
	}

	receipt := model.PaymentReceipt{
		TransactionHash: result.Hash,
		LedgerSequence:  result.Ledger,
		SourceAccount:   source,
		Destination:     instruction.Destination,
		Amount:          instruction.Amount,
		AssetCode:       instruction.Asset.AssetCode(),
		SubmittedAt:     g.now().UTC(),
	}
	if issued, ok := instruction.Asset.(model.IssuedAsset); ok {
		issuer := issued.Issuer
		receipt.AssetIssuer = &issuer
	}
	if instruction.Memo != "" {
		memo := instruction.Memo
		receipt.Memo = &memo
	}

	g.logger.Info("Ledger gateway: payment submitted",
		"hash", receipt.TransactionHash, "ledger", receipt.LedgerSequence, "source", source)

	return receipt, nil
}

// GetTransactionHistory returns the operations of the latest transactions of
// publicKey, most recent first. limit is clamped to [1, MaxHistoryLimit].
func (g *Gateway) GetTransactionHistory(ctx context.Context, publicKey string, limit int) ([]model.LedgerTransactionRecord, error) {
	if err := keys.ValidatePublicKey(publicKey); err != nil {
		return nil, err
	}
	limit = ClampLimit(limit)

	page, err := call(ctx, g.timeout, func() (hProtocol.TransactionsPage, error) {
		return g.horizon.Transactions(horizonclient.TransactionRequest{
			ForAccount: publicKey,
			Limit:      uint(limit),
			Order:      horizonclient.OrderDesc,
		})
	})
	if err != nil {
		return nil, classify(err, readOperation)
	}

	records := make([]model.LedgerTransactionRecord, 0, len(page.Embedded.Records))
	for _, tx := range page.Embedded.Records {
		ops, err := call(ctx, g.timeout, func() (operations.OperationsPage, error) {
			return g.horizon.Operations(horizonclient.OperationRequest{
				ForTransaction: tx.Hash,
				Limit:          MaxHistoryLimit,
			})
		})
		if err != nil {
			return nil, classify(err, readOperation)
		}

		for _, op := range ops.Embedded.Records {
			records = append(records, normalizeOperation(op, tx))
		}
	}

	return records, nil
}

// ClampLimit bounds a history page size to [1, MaxHistoryLimit].
func ClampLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}

func toTxnAsset(asset model.Asset) (txnbuild.Asset, error) {
	switch a := asset.(type) {
	case model.NativeAsset:
		return txnbuild.NativeAsset{}, nil
	case model.IssuedAsset:
		if a.Issuer == "" {
			return nil, model.ErrMissingAssetIssuer
		}
		return txnbuild.CreditAsset{Code: a.Code, Issuer: a.Issuer}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported asset %T", model.ErrInvalidAsset, asset)
	}
}

// call runs fn and gives up once ctx is done or timeout elapses. Horizon
// client methods take no context, so fn keeps running in the background
// until its HTTP client timeout fires.
func call[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-done:
		return r.value, r.err
	}
}
