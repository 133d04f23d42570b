package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dtroode/stellar-wallet-server/internal/keys"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

const (
	maxMemoBytes     = 28
	maxAssetCodeSize = 12
)

// maxAmount is the largest amount representable in stroops.
var maxAmount = decimal.New(math.MaxInt64, -model.AmountPrecision)

// Payment validates raw payment input into a TransferInstruction. It never
// talks to the network.
type Payment struct{}

func NewPayment() *Payment {
	return &Payment{}
}

// Build validates req. Checks run in a fixed order so the first problem found
// is the one reported.
func (p *Payment) Build(req model.PaymentRequest) (model.TransferInstruction, error) {
	destination := strings.TrimSpace(req.Destination)
	if err := keys.ValidatePublicKey(destination); err != nil {
		return model.TransferInstruction{}, fmt.Errorf("destination: %w", err)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return model.TransferInstruction{}, err
	}

	asset, err := resolveAsset(req.AssetCode, req.AssetIssuer)
	if err != nil {
		return model.TransferInstruction{}, err
	}

	if len(req.Memo) > maxMemoBytes {
		return model.TransferInstruction{}, fmt.Errorf("%w: memo exceeds %d bytes", model.ErrInvalidMemo, maxMemoBytes)
	}

	signer, err := keys.ParseSigner(req.SecretSeed)
	if err != nil {
		return model.TransferInstruction{}, err
	}

	return model.TransferInstruction{
		Destination: destination,
		Amount:      amount,
		Asset:       asset,
		Memo:        req.Memo,
		Signer:      signer,
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", model.ErrInvalidAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: must be greater than zero", model.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(model.AmountPrecision)) {
		return decimal.Decimal{}, fmt.Errorf("%w: at most %d decimal places", model.ErrInvalidAmount, model.AmountPrecision)
	}
	if amount.GreaterThan(maxAmount) {
		return decimal.Decimal{}, fmt.Errorf("%w: too large", model.ErrInvalidAmount)
	}
	return amount, nil
}

// resolveAsset treats an empty code or XLM as the native asset, ignoring
// any issuer sent along with it.
func resolveAsset(code, issuer string) (model.Asset, error) {
	code = strings.TrimSpace(code)
	issuer = strings.TrimSpace(issuer)

	if code == "" || strings.EqualFold(code, model.NativeAssetCode) {
		return model.NativeAsset{}, nil
	}

	if issuer == "" {
		return nil, model.ErrMissingAssetIssuer
	}

	if len(code) > maxAssetCodeSize || !isAlphanumeric(code) {
		return nil, fmt.Errorf("%w: code %q", model.ErrInvalidAsset, code)
	}

	if err := keys.ValidatePublicKey(issuer); err != nil {
		return nil, fmt.Errorf("asset issuer: %w", err)
	}

	return model.IssuedAsset{Code: code, Issuer: issuer}, nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
