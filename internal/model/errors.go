package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by stores when no record matches.
var ErrNotFound = errors.New("not found")

// Failure taxonomy shared by the auth and ledger layers.
var (
	ErrInvalidKeyFormat         = errors.New("invalid stellar public key format")
	ErrIdentityNotFound         = errors.New("wallet not found")
	ErrSessionNotFoundOrExpired = errors.New("invalid or expired session")
	ErrInvalidSignature         = errors.New("invalid signature")
	ErrAccountNotFunded         = errors.New("account not found on stellar network, account may not be funded yet")
	ErrMissingAssetIssuer       = errors.New("asset issuer is required for non-native assets")
	ErrPaymentRejected          = errors.New("payment rejected")
	ErrGatewayUnavailable       = errors.New("ledger gateway unavailable")
)

// Payment validation failures.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidMemo   = errors.New("invalid memo")
	ErrInvalidAsset  = errors.New("invalid asset")

	ErrInvalidTransactionHash = errors.New("invalid transaction hash")
)

// ErrTokenRevoked is returned for access tokens presented after logout.
var ErrTokenRevoked = errors.New("access token revoked")

// LedgerError carries the upstream reason behind a ledger failure kind.
type LedgerError struct {
	Kind        error
	Reason      string
	ResultCodes []string
}

func (e *LedgerError) Error() string {
	msg := e.Kind.Error()
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if len(e.ResultCodes) > 0 {
		msg = fmt.Sprintf("%s [%s]", msg, strings.Join(e.ResultCodes, ", "))
	}
	return msg
}

func (e *LedgerError) Unwrap() error {
	return e.Kind
}
