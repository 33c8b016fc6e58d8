package core

import (
	"context"

	"ethsql/internal/ethereum"
	"ethsql/internal/repository"
	tokenIssuer "ethsql/pkg/jwt"
	"ethsql/pkg/sqltypes"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetTransactionsByHash(ctx context.Context, txHashes []sqltypes.Hash) ([]repository.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]repository.Transaction, error)
	GetTransactionsBySender(ctx context.Context, sender sqltypes.Address) ([]repository.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []repository.Transaction) error
	GetUserHistory(ctx context.Context, userID string) ([]sqltypes.Hash, error)
	SaveUserHistory(ctx context.Context, userID string, transactions []sqltypes.Hash) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchTransactions(ctx context.Context, hashes []sqltypes.Hash) ([]*ethereum.Transaction, error)
}
