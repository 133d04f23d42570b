package ledger

import (
	"github.com/shopspring/decimal"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/base"
	"github.com/stellar/go/protocols/horizon/operations"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

const nativeAssetType = "native"

// normalizeOperation flattens op into a record with a fixed shape. Only
// payments and account creations fill the transfer fields.
func normalizeOperation(op operations.Operation, tx hProtocol.Transaction) model.LedgerTransactionRecord {
	b := op.GetBase()

	record := model.LedgerTransactionRecord{
		ID:              b.ID,
		Type:            b.Type,
		CreatedAt:       b.LedgerCloseTime,
		TransactionHash: b.TransactionHash,
		SourceAccount:   b.SourceAccount,
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = tx.LedgerCloseTime
	}
	if record.TransactionHash == "" {
		record.TransactionHash = tx.Hash
	}
	if record.SourceAccount == "" {
		record.SourceAccount = tx.Account
	}

	switch o := op.(type) {
	case operations.Payment:
		fillPayment(&record, o)
	case *operations.Payment:
		fillPayment(&record, *o)
	case operations.CreateAccount:
		fillCreateAccount(&record, o)
	case *operations.CreateAccount:
		fillCreateAccount(&record, *o)
	}

	return record
}

func fillPayment(record *model.LedgerTransactionRecord, p operations.Payment) {
	record.From = stringPtr(p.From)
	record.To = stringPtr(p.To)
	record.Amount = amountPtr(p.Amount)
	record.AssetCode = stringPtr(assetCode(p.Asset))
	record.AssetType = stringPtr(p.Asset.Type)
}

func fillCreateAccount(record *model.LedgerTransactionRecord, c operations.CreateAccount) {
	record.From = stringPtr(c.Funder)
	record.To = stringPtr(c.Account)
	record.Amount = amountPtr(c.StartingBalance)
	record.AssetCode = stringPtr(model.NativeAssetCode)
	record.AssetType = stringPtr(nativeAssetType)
}

func assetCode(a base.Asset) string {
	if a.Type == nativeAssetType {
		return model.NativeAssetCode
	}
	return a.Code
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func amountPtr(s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
