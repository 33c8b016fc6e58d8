package repository

import "ethsql/pkg/sqltypes"

type Transaction struct {
	TransactionHash   sqltypes.Hash     `gorm:"uniqueIndex;not null"`
	TransactionStatus uint64            `gorm:"not null"` // 1 (success) or 0 (failure)
	BlockHash         sqltypes.Hash     `gorm:"not null"`
	BlockNumber       uint64            `gorm:"not null;index"`
	From              sqltypes.Address  `gorm:"column:from_address;not null;index"`
	To                *sqltypes.Address `gorm:"column:to_address"` // nil for contract creation
	ContractAddress   *sqltypes.Address
	LogsCount         int            `gorm:"not null;default:0"`
	Input             sqltypes.Bytes `gorm:"not null"`
	Value             sqltypes.U256  `gorm:"not null"` // wei
	Gas               uint64         `gorm:"not null"`
	GasPrice          sqltypes.U256  `gorm:"not null"` // wei per gas
}

type User struct {
	ID           string           `gorm:"primaryKey;autoIncrement:false"`
	Username     string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string           `gorm:"not null"`
	Wallet       sqltypes.Address `gorm:"not null"`
}

type UserTransaction struct {
	UserID          string        `gorm:"primaryKey"`
	TransactionHash sqltypes.Hash `gorm:"primaryKey"`
}
