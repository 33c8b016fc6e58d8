package repository

import (
	"context"
	"errors"
	"fmt"

	"ethsql/internal/db"
	"ethsql/pkg/sqltypes"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

type seedUser struct {
	username     string
	passwordHash string
	wallet       sqltypes.Address
}

var seedUsers = []seedUser{
	{"alice", "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK", sqltypes.MustAddress("0x1111111111111111111111111111111111111111")},
	{"bob", "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u", sqltypes.MustAddress("0x2222222222222222222222222222222222222222")},
	{"carol", "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2", sqltypes.MustAddress("0x3333333333333333333333333333333333333333")},
	{"dave", "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG", sqltypes.MustAddress("0x4444444444444444444444444444444444444444")},
}

type TransactionRepository struct {
	db Storage
}

func NewTransactionRepository(db Storage) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

// MigrateAndSeed verifies every typed column is textual, migrates the
// ledger tables and inserts the demo users.
func (r *TransactionRepository) MigrateAndSeed(ctx context.Context) error {
	tables := []any{&Transaction{}, &User{}, &UserTransaction{}}

	if err := db.CheckTextColumns(tables...); err != nil {
		return fmt.Errorf("check column types: %w", err)
	}

	if err := r.db.MigrateTable(tables...); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := make([]User, 0, len(seedUsers))
	for _, u := range seedUsers {
		users = append(users, User{
			ID:           uuid.NewString(),
			Username:     u.username,
			PasswordHash: u.passwordHash,
			Wallet:       u.wallet,
		})
	}

	if err := r.db.SaveToTable(ctx, &users); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *TransactionRepository) SaveTransactions(ctx context.Context, transactions []Transaction) error {
	err := r.db.SaveToTable(ctx, &transactions)
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetUserHistory(ctx context.Context, userID string) ([]sqltypes.Hash, error) {
	var userTransactions []UserTransaction

	err := r.db.GetAllBy(ctx, "user_id", userID, &userTransactions)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("get user history: %w", ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user history: %w", err)
	}

	txHashes := make([]sqltypes.Hash, 0, len(userTransactions))
	for _, tx := range userTransactions {
		txHashes = append(txHashes, tx.TransactionHash)
	}

	return txHashes, nil
}

func (r *TransactionRepository) SaveUserHistory(ctx context.Context, userID string, transactions []sqltypes.Hash) error {
	if len(transactions) == 0 {
		return nil
	}

	userTransactions := make([]UserTransaction, 0, len(transactions))
	for _, tx := range transactions {
		userTransactions = append(userTransactions, UserTransaction{
			UserID:          userID,
			TransactionHash: tx,
		})
	}

	err := r.db.SaveToTable(ctx, &userTransactions)
	if err != nil {
		return fmt.Errorf("save user history: %w", err)
	}

	return nil
}

func (r *TransactionRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TransactionRepository) GetTransactionsByHash(ctx context.Context, txHashes []sqltypes.Hash) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, "transaction_hash", txHashes, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transaction by hash: %w", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) GetAllTransactions(ctx context.Context) ([]Transaction, error) {
	transactions := []Transaction{}
	if err := r.db.GetAll(ctx, &transactions); err != nil {
		return transactions, fmt.Errorf("get all transactions: %w", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) GetTransactionsBySender(ctx context.Context, sender sqltypes.Address) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.GetAllBy(ctx, "from_address", sender, &transactions)
	if err != nil {
		return transactions, fmt.Errorf("get transactions by sender: %w", err)
	}

	return transactions, nil
}
