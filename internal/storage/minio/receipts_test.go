package minio

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/stellar-wallet-server/internal/mocks"
	"github.com/dtroode/stellar-wallet-server/internal/model"
)

func testReceipt() model.PaymentReceipt {
	memo := "rent"
	return model.PaymentReceipt{
		TransactionHash: "abc123",
		LedgerSequence:  42,
		SourceAccount:   "GSOURCE",
		Destination:     "GDEST",
		Amount:          decimal.RequireFromString("10.5"),
		AssetCode:       "XLM",
		Memo:            &memo,
		SubmittedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReceiptKey(t *testing.T) {
	assert.Equal(t, "receipts/GSOURCE/abc123.json", ReceiptKey("GSOURCE", "abc123"))
}

func TestReceiptArchive_RoundTrip(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{}
	archive := NewReceiptArchive(newTestClient(t, api))

	receipt := testReceipt()
	require.NoError(t, archive.Archive(ctx, receipt))
	require.Contains(t, api.objects, "receipts/GSOURCE/abc123.json")

	loaded, err := archive.Load(ctx, "GSOURCE", "abc123")
	require.NoError(t, err)
	assert.Equal(t, receipt.TransactionHash, loaded.TransactionHash)
	assert.Equal(t, receipt.LedgerSequence, loaded.LedgerSequence)
	assert.True(t, receipt.Amount.Equal(loaded.Amount))
	require.NotNil(t, loaded.Memo)
	assert.Equal(t, "rent", *loaded.Memo)
}

func TestReceiptArchive_FirstWriteWins(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{}
	archive := NewReceiptArchive(newTestClient(t, api))

	first := testReceipt()
	require.NoError(t, archive.Archive(ctx, first))

	second := testReceipt()
	second.LedgerSequence = 99
	require.NoError(t, archive.Archive(ctx, second))
	assert.Equal(t, 1, api.puts)

	loaded, err := archive.Load(ctx, first.SourceAccount, first.TransactionHash)
	require.NoError(t, err)
	assert.Equal(t, int32(42), loaded.LedgerSequence)
}

func TestReceiptArchive_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("incomplete receipt", func(t *testing.T) {
		err := NewReceiptArchive(servermocks.NewObjectStore(t)).Archive(ctx, model.PaymentReceipt{})
		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		store := servermocks.NewObjectStore(t)
		store.On("Create", mock.Anything, "receipts/GSOURCE/abc123.json", mock.Anything).Return(false, assert.AnError).Once()

		err := NewReceiptArchive(store).Archive(ctx, testReceipt())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("missing on load", func(t *testing.T) {
		store := servermocks.NewObjectStore(t)
		store.On("Get", mock.Anything, "receipts/G/h.json").Return(nil, model.ErrNotFound).Once()

		_, err := NewReceiptArchive(store).Load(ctx, "G", "h")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("corrupt object", func(t *testing.T) {
		store := servermocks.NewObjectStore(t)
		store.On("Get", mock.Anything, mock.Anything).Return([]byte("not json"), nil).Once()

		_, err := NewReceiptArchive(store).Load(ctx, "G", "h")
		assert.ErrorContains(t, err, "failed to decode receipt")
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}
