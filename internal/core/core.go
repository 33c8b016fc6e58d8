package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"ethsql/internal/repository"
	tokenIssuer "ethsql/pkg/jwt"
	"ethsql/pkg/sqltypes"

	"github.com/ethereum/go-ethereum/rlp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrInvalidRLP error = errors.New("invalid rlp payload")
var ErrInvalidClaims error = errors.New("token claims are missing the subject")
var ErrNoTransactions error = errors.New("no transactions found")

// Ledger serves Ethereum transactions from the database, falling back to
// the node for hashes it has not stored yet.
type Ledger struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	ethService EthereumService
}

func NewLedger(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, ethereumService EthereumService) *Ledger {
	return &Ledger{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		ethService: ethereumService,
	}
}

// Authenticate checks the credentials and returns a signed token carrying
// the user id and wallet.
func (l *Ledger) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := l.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Wallet:     user.Wallet.String(),
		Expiration: 24,
	}
	token := l.jwtIssuer.Generate(tokenInfo)
	signed, err := l.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// GetTransactions returns the stored transactions for the given hashes and
// fetches the rest from the node. Node results are cached in the background.
// A node failure is logged and the transactions found so far are returned.
func (l *Ledger) GetTransactions(ctx context.Context, transactionsHashes []sqltypes.Hash) ([]TransactionRecord, error) {
	records, err := l.getTransactionsFromDB(ctx, transactionsHashes)
	if err != nil {
		return nil, fmt.Errorf("get transactions from db: %w", err)
	}

	l.logs.Infow("transactions fetched from db", "count", len(records))

	found := make(map[sqltypes.Hash]struct{}, len(records))
	for _, rec := range records {
		found[rec.TransactionHash] = struct{}{}
	}

	missing := make([]sqltypes.Hash, 0, len(transactionsHashes))
	for _, hash := range transactionsHashes {
		if _, ok := found[hash]; !ok {
			found[hash] = struct{}{}
			missing = append(missing, hash)
		}
	}

	if len(missing) == 0 {
		l.logs.Infow("all transactions found in DB", "count", len(records))
		return records, nil
	}

	nodeTxs, err := l.getTransactionsFromNode(ctx, missing)
	if err != nil {
		l.logs.Errorw("getting transactions from node", "error", err)
	}

	if len(nodeTxs) == 0 {
		return records, nil
	}

	records = append(records, nodeTxs...)

	l.logs.Infow("caching transactions from eth node to DB", "count", len(nodeTxs))

	go func(ctx context.Context) {
		if err := l.saveTransactionsToDB(ctx, nodeTxs); err != nil {
			l.logs.Errorw("failed to save transactions to DB", "error", err, "count", len(nodeTxs))
		}
	}(context.WithoutCancel(ctx))

	return records, nil
}

// SaveUserTransactionsHistory links the given transactions to the token's user.
func (l *Ledger) SaveUserTransactionsHistory(ctx context.Context, token string, transactionsHashes []sqltypes.Hash) error {
	if len(transactionsHashes) == 0 {
		return nil
	}

	userId, err := l.userFromToken(token)
	if err != nil {
		return err
	}

	err = l.repo.SaveUserHistory(ctx, userId, transactionsHashes)
	if err != nil {
		return fmt.Errorf("save user history: %w", err)
	}

	l.logs.Infow("user history saved", "userId", userId, "count", len(transactionsHashes))
	return nil
}

// GetUserTransactionsHistory returns the transactions previously looked up
// by the token's user.
func (l *Ledger) GetUserTransactionsHistory(ctx context.Context, token string) ([]TransactionRecord, error) {
	userId, err := l.userFromToken(token)
	if err != nil {
		return nil, err
	}

	l.logs.Infow("getting user transactions history", "userId", userId)

	transactionsHashes, err := l.repo.GetUserHistory(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}

	txRecords, err := l.getTransactionsFromDB(ctx, transactionsHashes)
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w", err)
	}

	l.logs.Infow("user transactions history fetched from DB", "userId", userId, "transactionsCount", len(txRecords))

	return txRecords, nil
}

// GetAllDBTransactions returns every stored transaction whose value is at
// least minValue.
func (l *Ledger) GetAllDBTransactions(ctx context.Context, minValue sqltypes.U256) ([]TransactionRecord, error) {
	transactions, err := l.repo.GetAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting all transactions: %w", err)
	}

	records := repoTransactionsToRecords(transactions)
	if minValue.IsZero() {
		return records, nil
	}

	return slices.DeleteFunc(records, func(rec TransactionRecord) bool {
		return rec.Value.Lt(minValue)
	}), nil
}

// SenderSummary totals the stored transactions sent from sender. The
// transactions are listed by value, largest first.
func (l *Ledger) SenderSummary(ctx context.Context, sender sqltypes.Address) (SenderSummary, error) {
	transactions, err := l.repo.GetTransactionsBySender(ctx, sender)
	if err != nil {
		return SenderSummary{}, fmt.Errorf("get transactions by sender: %w", err)
	}

	if len(transactions) == 0 {
		return SenderSummary{}, fmt.Errorf("sender %s: %w", sender, ErrNoTransactions)
	}

	summary := SenderSummary{
		Sender:       sender,
		Count:        len(transactions),
		Transactions: repoTransactionsToRecords(transactions),
	}

	for _, tx := range summary.Transactions {
		summary.TotalValue, err = summary.TotalValue.CheckedAdd(tx.Value)
		if err != nil {
			return SenderSummary{}, fmt.Errorf("total value: %w", err)
		}

		fee, err := sqltypes.ApplyUint(tx.GasPrice, sqltypes.OpMul, tx.Gas, sqltypes.Checked)
		if err != nil {
			return SenderSummary{}, fmt.Errorf("fee of %s: %w", tx.TransactionHash, err)
		}

		summary.MaxFees, err = summary.MaxFees.CheckedAdd(fee)
		if err != nil {
			return SenderSummary{}, fmt.Errorf("total fees: %w", err)
		}

		summary.MaxGasPrice = summary.MaxGasPrice.Max(tx.GasPrice)
	}

	summary.TotalEther = sqltypes.FormatEther(summary.TotalValue)

	slices.SortStableFunc(summary.Transactions, func(a, b TransactionRecord) int {
		return sqltypes.Compare(b.Value, a.Value)
	})

	return summary, nil
}

// ParseRLP decodes a hex-encoded RLP list of 32-byte transaction hashes.
func (l *Ledger) ParseRLP(rlphex string) ([]sqltypes.Hash, error) {
	if len(rlphex) < 2 || !strings.EqualFold(rlphex[:2], "0x") {
		rlphex = "0x" + rlphex
	}
	data, err := sqltypes.ParseBytes(rlphex)
	if err != nil {
		return nil, fmt.Errorf("decode hex string: %w: %w", ErrInvalidRLP, err)
	}

	var txHashBytes [][]byte
	if err := rlp.DecodeBytes(data, &txHashBytes); err != nil {
		return nil, fmt.Errorf("decode rlp bytes: %w: %w", ErrInvalidRLP, err)
	}

	txHashes := make([]sqltypes.Hash, len(txHashBytes))
	for i, b := range txHashBytes {
		if len(b) != sqltypes.HashLength {
			return nil, fmt.Errorf("item %d has %d bytes: %w: %w", i, len(b), ErrInvalidRLP, sqltypes.ErrLengthMismatch)
		}
		copy(txHashes[i][:], b)
	}
	return txHashes, nil
}

func (l *Ledger) userFromToken(token string) (string, error) {
	claims, err := l.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	userId, ok := claims["sub"].(string)
	if !ok || userId == "" {
		return "", ErrInvalidClaims
	}
	return userId, nil
}

func (l *Ledger) saveTransactionsToDB(ctx context.Context, transactionRecords []TransactionRecord) error {
	transactions := make([]repository.Transaction, 0, len(transactionRecords))
	for _, tx := range transactionRecords {
		transactions = append(transactions, repository.Transaction(tx))
	}

	if err := l.repo.SaveTransactions(ctx, transactions); err != nil {
		return fmt.Errorf("repo save transactions: %w", err)
	}
	return nil
}

func (l *Ledger) getTransactionsFromDB(ctx context.Context, transactionsHashes []sqltypes.Hash) ([]TransactionRecord, error) {
	dbTransactions, err := l.repo.GetTransactionsByHash(ctx, transactionsHashes)
	if err != nil {
		return nil, fmt.Errorf("get transactions by hash: %w", err)
	}

	return repoTransactionsToRecords(dbTransactions), nil
}

func (l *Ledger) getTransactionsFromNode(ctx context.Context, transactionsHashes []sqltypes.Hash) ([]TransactionRecord, error) {
	transactions, err := l.ethService.FetchTransactions(ctx, transactionsHashes)

	records := make([]TransactionRecord, 0, len(transactions))
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		records = append(records, TransactionRecord(*tx))
	}

	return records, err
}

func repoTransactionsToRecords(transactions []repository.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = TransactionRecord(tx)
	}
	return records
}
