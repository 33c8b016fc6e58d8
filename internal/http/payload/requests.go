package payload

import (
	"fmt"

	"ethsql/internal/core"
	"ethsql/pkg/sqltypes"

	"github.com/jellydator/validation"
)

const (
	maxHashesPerRequest = 100
	maxUsernameLength   = 255
)

// AuthRequest is the body of POST /ledger/authenticate.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, maxUsernameLength)),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage(a)
}

type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions,
			validation.Required,
			validation.Length(1, maxHashesPerRequest),
			validation.Each(validation.Required, IsHash)),
	)
}

// Hashes parses the validated request into typed hashes.
func (t TransactionsRequest) Hashes() ([]sqltypes.Hash, error) {
	hashes := make([]sqltypes.Hash, 0, len(t.Transactions))
	for _, s := range t.Transactions {
		h, err := sqltypes.ParseHash(s)
		if err != nil {
			return nil, fmt.Errorf("transaction hash: %w", err)
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

type SenderRequest struct {
	Address string
}

func (s SenderRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, IsAddress),
	)
}

func (s SenderRequest) Sender() (sqltypes.Address, error) {
	return sqltypes.ParseAddress(s.Address)
}

type AllTransactionsRequest struct {
	MinValue string
}

func (a AllTransactionsRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.MinValue, IsU256),
	)
}

// Min returns the parsed minimum value, zero when none was given.
func (a AllTransactionsRequest) Min() (sqltypes.U256, error) {
	if a.MinValue == "" {
		return sqltypes.U256{}, nil
	}
	return sqltypes.ParseU256(a.MinValue)
}
