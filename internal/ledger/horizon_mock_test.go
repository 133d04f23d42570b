package ledger

import (
	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/mock"
)

type horizonMock struct {
	mock.Mock
}

func (m *horizonMock) AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error) {
	args := m.Called(request)
	return args.Get(0).(hProtocol.Account), args.Error(1)
}

func (m *horizonMock) Transactions(request horizonclient.TransactionRequest) (hProtocol.TransactionsPage, error) {
	args := m.Called(request)
	return args.Get(0).(hProtocol.TransactionsPage), args.Error(1)
}

func (m *horizonMock) Operations(request horizonclient.OperationRequest) (operations.OperationsPage, error) {
	args := m.Called(request)
	return args.Get(0).(operations.OperationsPage), args.Error(1)
}

func (m *horizonMock) SubmitTransaction(transaction *txnbuild.Transaction) (hProtocol.Transaction, error) {
	args := m.Called(transaction)
	return args.Get(0).(hProtocol.Transaction), args.Error(1)
}
