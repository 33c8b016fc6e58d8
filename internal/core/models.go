package core

import "ethsql/pkg/sqltypes"

// TransactionRecord is the API view of a stored transaction. Every hash,
// address and amount is rendered as 0x-prefixed hex.
type TransactionRecord struct {
	TransactionHash   sqltypes.Hash     `json:"transactionHash"`
	TransactionStatus uint64            `json:"transactionStatus"`
	BlockHash         sqltypes.Hash     `json:"blockHash"`
	BlockNumber       uint64            `json:"blockNumber"`
	From              sqltypes.Address  `json:"from"`
	To                *sqltypes.Address `json:"to"`
	ContractAddress   *sqltypes.Address `json:"contractAddress"`
	LogsCount         int               `json:"logsCount"`
	Input             sqltypes.Bytes    `json:"input"`
	Value             sqltypes.U256     `json:"value"`
	Gas               uint64            `json:"gas"`
	GasPrice          sqltypes.U256     `json:"gasPrice"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SenderSummary aggregates the stored transactions sent from one address.
// Fees are gas limit times gas price, an upper bound on what was paid.
type SenderSummary struct {
	Sender       sqltypes.Address    `json:"sender"`
	Count        int                 `json:"count"`
	TotalValue   sqltypes.U256       `json:"totalValue"`
	TotalEther   string              `json:"totalEther"`
	MaxFees      sqltypes.U256       `json:"maxFees"`
	MaxGasPrice  sqltypes.U256       `json:"maxGasPrice"`
	Transactions []TransactionRecord `json:"transactions"`
}
