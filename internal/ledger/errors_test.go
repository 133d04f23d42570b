package ledger

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind operationKind
		want error
	}{
		{name: "nil", err: nil, kind: readOperation, want: nil},
		{name: "deadline", err: context.DeadlineExceeded, kind: readOperation, want: model.ErrGatewayUnavailable},
		{name: "deadline on submit", err: context.DeadlineExceeded, kind: submitOperation, want: model.ErrGatewayUnavailable},
		{name: "not found on read", err: notFoundError(), kind: readOperation, want: model.ErrAccountNotFunded},
		{name: "not found on submit", err: notFoundError(), kind: submitOperation, want: model.ErrAccountNotFunded},
		{name: "no destination", err: txFailedError("op_no_destination"), kind: submitOperation, want: model.ErrAccountNotFunded},
		{name: "no trust", err: txFailedError("op_no_trust"), kind: submitOperation, want: model.ErrPaymentRejected},
		{name: "tx failed on read", err: txFailedError("op_underfunded"), kind: readOperation, want: model.ErrGatewayUnavailable},
		{name: "plain error", err: errors.New("boom"), kind: submitOperation, want: model.ErrGatewayUnavailable},
		{name: "over capacity on submit", err: statusError(http.StatusServiceUnavailable, "Server Over Capacity"), kind: submitOperation, want: model.ErrGatewayUnavailable},
		{name: "timeout on submit", err: statusError(http.StatusGatewayTimeout, "Timeout"), kind: submitOperation, want: model.ErrGatewayUnavailable},
		{name: "rejected with server status", err: failedWithStatus(http.StatusInternalServerError), kind: submitOperation, want: model.ErrPaymentRejected},
		{
			name: "already classified",
			err:  &model.LedgerError{Kind: model.ErrPaymentRejected},
			kind: readOperation,
			want: model.ErrPaymentRejected,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := classify(tt.err, tt.kind)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassify_KeepsResultCodes(t *testing.T) {
	err := classify(txFailedError("op_underfunded"), submitOperation)

	var ledgerErr *model.LedgerError
	if assert.ErrorAs(t, err, &ledgerErr) {
		assert.Equal(t, []string{"tx_failed", "op_underfunded"}, ledgerErr.ResultCodes)
		assert.Equal(t, "Transaction Failed", ledgerErr.Reason)
	}
}

func failedWithStatus(status int) error {
	err := txFailedError("op_underfunded")
	err.(*horizonclient.Error).Problem.Status = status
	return err
}
