package handler

import (
	"context"
	"net/http"

	"ethsql/internal/core"
	"ethsql/pkg/sqltypes"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	GetTransactions(ctx context.Context, transactionsHashes []sqltypes.Hash) ([]core.TransactionRecord, error)
	ParseRLP(rlphex string) ([]sqltypes.Hash, error)
	SaveUserTransactionsHistory(ctx context.Context, token string, transactionsHashes []sqltypes.Hash) error
	GetUserTransactionsHistory(ctx context.Context, token string) ([]core.TransactionRecord, error)
	GetAllDBTransactions(ctx context.Context, minValue sqltypes.U256) ([]core.TransactionRecord, error)
	SenderSummary(ctx context.Context, sender sqltypes.Address) (core.SenderSummary, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
