package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/stellar-wallet-server/internal/model"
	"github.com/dtroode/stellar-wallet-server/internal/testutil"
)

func TestPayment_Build(t *testing.T) {
	signer := testutil.RandomKeypair(t)
	destination := testutil.RandomKeypair(t).Address()
	issuer := testutil.RandomKeypair(t).Address()

	valid := func() model.PaymentRequest {
		return model.PaymentRequest{
			Destination: destination,
			Amount:      "10.5",
			SecretSeed:  signer.Seed(),
		}
	}

	tests := []struct {
		name      string
		mutate    func(r *model.PaymentRequest)
		wantErr   error
		wantAsset model.Asset
	}{
		{name: "native by default", mutate: func(*model.PaymentRequest) {}, wantAsset: model.NativeAsset{}},
		{name: "explicit XLM ignores issuer", mutate: func(r *model.PaymentRequest) { r.AssetCode = "XLM"; r.AssetIssuer = "whatever" }, wantAsset: model.NativeAsset{}},
		{
			name:      "issued asset",
			mutate:    func(r *model.PaymentRequest) { r.AssetCode = "USDC"; r.AssetIssuer = issuer },
			wantAsset: model.IssuedAsset{Code: "USDC", Issuer: issuer},
		},
		{name: "issued asset without issuer", mutate: func(r *model.PaymentRequest) { r.AssetCode = "USDC" }, wantErr: model.ErrMissingAssetIssuer},
		{name: "issued asset bad issuer", mutate: func(r *model.PaymentRequest) { r.AssetCode = "USDC"; r.AssetIssuer = "GBAD" }, wantErr: model.ErrInvalidKeyFormat},
		{name: "asset code too long", mutate: func(r *model.PaymentRequest) { r.AssetCode = "ABCDEFGHIJKLM"; r.AssetIssuer = issuer }, wantErr: model.ErrInvalidAsset},
		{name: "asset code symbols", mutate: func(r *model.PaymentRequest) { r.AssetCode = "US-D"; r.AssetIssuer = issuer }, wantErr: model.ErrInvalidAsset},
		{name: "zero amount", mutate: func(r *model.PaymentRequest) { r.Amount = "0" }, wantErr: model.ErrInvalidAmount},
		{name: "negative amount", mutate: func(r *model.PaymentRequest) { r.Amount = "-1" }, wantErr: model.ErrInvalidAmount},
		{name: "non numeric amount", mutate: func(r *model.PaymentRequest) { r.Amount = "ten" }, wantErr: model.ErrInvalidAmount},
		{name: "too many decimals", mutate: func(r *model.PaymentRequest) { r.Amount = "1.00000001" }, wantErr: model.ErrInvalidAmount},
		{name: "seven decimals", mutate: func(r *model.PaymentRequest) { r.Amount = "0.0000001" }, wantAsset: model.NativeAsset{}},
		{name: "amount overflow", mutate: func(r *model.PaymentRequest) { r.Amount = "922337203686.4775808" }, wantErr: model.ErrInvalidAmount},
		{name: "bad destination", mutate: func(r *model.PaymentRequest) { r.Destination = "GABC" }, wantErr: model.ErrInvalidKeyFormat},
		{name: "memo too long", mutate: func(r *model.PaymentRequest) { r.Memo = strings.Repeat("m", 29) }, wantErr: model.ErrInvalidMemo},
		{name: "memo at limit", mutate: func(r *model.PaymentRequest) { r.Memo = strings.Repeat("m", 28) }, wantAsset: model.NativeAsset{}},
		{name: "bad seed", mutate: func(r *model.PaymentRequest) { r.SecretSeed = "SNOTASEED" }, wantErr: model.ErrInvalidKeyFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := valid()
			tt.mutate(&req)

			instruction, err := NewPayment().Build(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAsset, instruction.Asset)
			assert.Equal(t, signer.Address(), instruction.Signer.Address())
			assert.Equal(t, req.Memo, instruction.Memo)
		})
	}
}

func TestPayment_Build_AmountIsExact(t *testing.T) {
	req := model.PaymentRequest{
		Destination: testutil.RandomKeypair(t).Address(),
		Amount:      "0.1",
		SecretSeed:  testutil.RandomKeypair(t).Seed(),
	}

	instruction, err := NewPayment().Build(req)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.1").Equal(instruction.Amount))
	assert.Equal(t, "0.1000000", instruction.Amount.StringFixed(model.AmountPrecision))
}
