package ledger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stellar/go/clients/horizonclient"

	"github.com/dtroode/stellar-wallet-server/internal/model"
)

// Result codes that mean an account involved in a payment does not exist.
var notFundedCodes = map[string]struct{}{
	"op_no_destination":    {},
	"op_no_account":        {},
	"tx_no_source_account": {},
}

type operationKind int

const (
	readOperation operationKind = iota
	submitOperation
)

// classify converts any failure coming out of Horizon into a *model.LedgerError.
func classify(err error, kind operationKind) error {
	if err == nil {
		return nil
	}

	var ledgerErr *model.LedgerError
	if errors.As(err, &ledgerErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &model.LedgerError{Kind: model.ErrGatewayUnavailable, Reason: err.Error()}
	}

	var herr *horizonclient.Error
	if !errors.As(err, &herr) {
		return &model.LedgerError{Kind: model.ErrGatewayUnavailable, Reason: err.Error()}
	}

	reason := problemReason(herr)
	codes := resultCodes(herr)

	if herr.Problem.Status == http.StatusNotFound || strings.HasSuffix(herr.Problem.Type, "not_found") {
		return &model.LedgerError{Kind: model.ErrAccountNotFunded, Reason: reason, ResultCodes: codes}
	}

	if kind == submitOperation && unavailable(herr) {
		return &model.LedgerError{Kind: model.ErrGatewayUnavailable, Reason: reason, ResultCodes: codes}
	}

	if kind == submitOperation {
		for _, code := range codes {
			if _, ok := notFundedCodes[code]; ok {
				return &model.LedgerError{Kind: model.ErrAccountNotFunded, Reason: reason, ResultCodes: codes}
			}
		}
		return &model.LedgerError{Kind: model.ErrPaymentRejected, Reason: reason, ResultCodes: codes}
	}

	return &model.LedgerError{Kind: model.ErrGatewayUnavailable, Reason: reason, ResultCodes: codes}
}

// unavailable reports Horizon failing to process a submission at all:
// rate limiting, overload or a submission timeout. A rejected transaction
// is reported as transaction_failed whatever its status.
func unavailable(herr *horizonclient.Error) bool {
	if strings.HasSuffix(herr.Problem.Type, "transaction_failed") {
		return false
	}
	return herr.Problem.Status == http.StatusTooManyRequests || herr.Problem.Status >= http.StatusInternalServerError
}

func problemReason(herr *horizonclient.Error) string {
	p := herr.Problem
	switch {
	case p.Title != "" && p.Detail != "":
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	case p.Detail != "":
		return p.Detail
	case p.Title != "":
		return p.Title
	default:
		return fmt.Sprintf("horizon responded with status %d", p.Status)
	}
}

func resultCodes(herr *horizonclient.Error) []string {
	rc, err := herr.ResultCodes()
	if err != nil || rc == nil {
		return nil
	}

	var codes []string
	if rc.TransactionCode != "" {
		codes = append(codes, rc.TransactionCode)
	}
	if rc.InnerTransactionCode != "" {
		codes = append(codes, rc.InnerTransactionCode)
	}
	for _, code := range rc.OperationCodes {
		if code != "" && code != "op_success" {
			codes = append(codes, code)
		}
	}
	return codes
}
