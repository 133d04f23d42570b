package model

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
)

// NativeAssetCode is the code reported for lumens.
const NativeAssetCode = "XLM"

// AmountPrecision is the number of fractional digits the ledger keeps.
const AmountPrecision = 7

// Asset is either NativeAsset or IssuedAsset.
type Asset interface {
	AssetCode() string
	isAsset()
}

// NativeAsset is the ledger's base currency.
type NativeAsset struct{}

func (NativeAsset) AssetCode() string { return NativeAssetCode }
func (NativeAsset) isAsset()          {}

// IssuedAsset is a credit asset identified by code and issuer.
type IssuedAsset struct {
	Code   string
	Issuer string
}

func (a IssuedAsset) AssetCode() string { return a.Code }
func (IssuedAsset) isAsset()            {}

// PaymentRequest is the raw, unvalidated payment input.
type PaymentRequest struct {
	Destination string
	Amount      string
	AssetCode   string
	AssetIssuer string
	Memo        string
	SecretSeed  string
}

// TransferInstruction is a validated single-payment instruction.
type TransferInstruction struct {
	Destination string
	Amount      decimal.Decimal
	Asset       Asset
	Memo        string
	Signer      *keypair.Full
}

// PaymentReceipt is the result of a submitted payment.
type PaymentReceipt struct {
	TransactionHash string          `json:"transaction_hash"`
	LedgerSequence  int32           `json:"ledger"`
	SourceAccount   string          `json:"source_account"`
	Destination     string          `json:"destination"`
	Amount          decimal.Decimal `json:"amount"`
	AssetCode       string          `json:"asset_code"`
	AssetIssuer     *string         `json:"asset_issuer"`
	Memo            *string         `json:"memo"`
	SubmittedAt     time.Time       `json:"submitted_at"`
}

// LedgerBalance is one balance line of an account.
type LedgerBalance struct {
	AssetType   string          `json:"asset_type"`
	AssetCode   string          `json:"asset_code"`
	AssetIssuer *string         `json:"asset_issuer"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerTransactionRecord is one operation of an account's history. Fields
// that only apply to payment-like operations are nil for other kinds.
type LedgerTransactionRecord struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	CreatedAt       time.Time        `json:"created_at"`
	TransactionHash string           `json:"transaction_hash"`
	SourceAccount   string           `json:"source_account"`
	From            *string          `json:"from_address"`
	To              *string          `json:"to_address"`
	Amount          *decimal.Decimal `json:"amount"`
	AssetCode       *string          `json:"asset_code"`
	AssetType       *string          `json:"asset_type"`
}

// LedgerGateway is the single contact point with the ledger network.
type LedgerGateway interface {
	GetBalances(ctx context.Context, publicKey string) ([]LedgerBalance, error)
	SubmitPayment(ctx context.Context, instruction TransferInstruction) (PaymentReceipt, error)
	GetTransactionHistory(ctx context.Context, publicKey string, limit int) ([]LedgerTransactionRecord, error)
}
