package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"ethsql/pkg/sqltypes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type EthService struct {
	client EthClient
}

func NewEthService(ethClient EthClient) *EthService {
	return &EthService{
		client: ethClient,
	}
}

// FetchTransactions looks up every hash concurrently. Transactions that
// could not be fetched are left out and their errors joined into the result.
func (s *EthService) FetchTransactions(ctx context.Context, hashes []sqltypes.Hash) ([]*Transaction, error) {
	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash sqltypes.Hash) {
			defer wg.Done()
			res := s.getTransactionByHash(ctx, hash.Common())
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hash, res.Error)
			}
			resultsChan <- res
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Transaction)
	}

	return results, aggrErr
}

func (s *EthService) getTransactionByHash(ctx context.Context, hash common.Hash) *TxResult {
	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &TxResult{nil, err}
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return &TxResult{nil, err}
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return &TxResult{nil, err}
	}

	value, err := sqltypes.FromBig[sqltypes.Bits256](tx.Value())
	if err != nil {
		return &TxResult{nil, fmt.Errorf("value: %w", err)}
	}

	gasPrice, err := sqltypes.FromBig[sqltypes.Bits256](effectiveGasPrice(tx, receipt))
	if err != nil {
		return &TxResult{nil, fmt.Errorf("gas price: %w", err)}
	}

	var to *sqltypes.Address
	if tx.To() != nil {
		addr := sqltypes.AddressFromCommon(*tx.To())
		to = &addr
	}

	var contractAddress *sqltypes.Address
	if receipt.ContractAddress != (common.Address{}) {
		addr := sqltypes.AddressFromCommon(receipt.ContractAddress)
		contractAddress = &addr
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &TxResult{
		Transaction: &Transaction{
			TransactionHash:   sqltypes.HashFromCommon(tx.Hash()),
			TransactionStatus: receipt.Status,
			BlockHash:         sqltypes.HashFromCommon(receipt.BlockHash),
			BlockNumber:       blockNumber,
			From:              sqltypes.AddressFromCommon(from),
			To:                to,
			ContractAddress:   contractAddress,
			LogsCount:         len(receipt.Logs),
			Input:             sqltypes.CopyBytes(tx.Data()),
			Value:             value,
			Gas:               tx.Gas(),
			GasPrice:          gasPrice,
		},
		Error: nil,
	}
}

// effectiveGasPrice prefers the price the receipt reports as actually paid.
func effectiveGasPrice(tx *types.Transaction, receipt *types.Receipt) *big.Int {
	if receipt.EffectiveGasPrice != nil {
		return receipt.EffectiveGasPrice
	}
	return tx.GasPrice()
}
