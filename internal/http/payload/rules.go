package payload

import (
	"errors"

	"ethsql/pkg/sqltypes"

	"github.com/jellydator/validation"
)

var errNotString = errors.New("must be a string")

// IsHash, IsAddress and IsU256 accept exactly the strings the matching
// sqltypes parser accepts.
var (
	IsHash    = textRule(sqltypes.ParseHash)
	IsAddress = textRule(sqltypes.ParseAddress)
	IsU256    = textRule(sqltypes.ParseU256)
)

func textRule[T any](parse func(string) (T, error)) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return errNotString
		}
		if s == "" {
			return nil
		}
		_, err := parse(s)
		return err
	})
}
