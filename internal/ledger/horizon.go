// Package ledger talks to the Stellar network through Horizon and translates
// its responses and failures into domain types.
package ledger

import (
	"net/http"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"
)

// Horizon is the subset of the Horizon client used by the gateway.
type Horizon interface {
	AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
	Transactions(request horizonclient.TransactionRequest) (hProtocol.TransactionsPage, error)
	Operations(request horizonclient.OperationRequest) (operations.OperationsPage, error)
	SubmitTransaction(transaction *txnbuild.Transaction) (hProtocol.Transaction, error)
}

var _ Horizon = (*horizonclient.Client)(nil)

// NewHorizonClient returns a Horizon client whose requests are bounded by timeout.
func NewHorizonClient(url string, timeout time.Duration) *horizonclient.Client {
	return &horizonclient.Client{
		HorizonURL: url,
		HTTP:       &http.Client{Timeout: timeout},
	}
}
