package ethereum

import "ethsql/pkg/sqltypes"

type TxResult struct {
	Transaction *Transaction
	Error       error
}

type Transaction struct {
	TransactionHash   sqltypes.Hash
	TransactionStatus uint64
	BlockHash         sqltypes.Hash
	BlockNumber       uint64
	From              sqltypes.Address
	To                *sqltypes.Address
	ContractAddress   *sqltypes.Address
	LogsCount         int
	Input             sqltypes.Bytes
	Value             sqltypes.U256
	Gas               uint64
	GasPrice          sqltypes.U256
}
