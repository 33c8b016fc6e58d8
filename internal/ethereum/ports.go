package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// EthClient is the subset of ethclient.Client the service reads from.
//
//counterfeiter:generate -o fake -fake-name EthClient . EthClient
type EthClient interface {
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	NetworkID(ctx context.Context) (*big.Int, error)
}
