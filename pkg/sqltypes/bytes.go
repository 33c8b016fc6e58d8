package sqltypes

import (
	"bytes"
	"database/sql/driver"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Bytes is a variable-length byte string such as transaction input data.
// It is stored as 0x-prefixed hex in an unbounded text column.
type Bytes []byte

// ParseBytes decodes 0x-prefixed hex with an even number of digits. "0x"
// is the empty string.
func ParseBytes(s string) (Bytes, error) {
	body, ok := cutHexPrefix(s)
	if !ok || !isHex(body) || len(body)%2 != 0 {
		return nil, parseErr("bytes", s, ErrMalformed)
	}
	if body == "" {
		return Bytes{}, nil
	}
	b, err := hexutil.Decode("0x" + body)
	if err != nil {
		return nil, parseErr("bytes", s, ErrMalformed)
	}
	return Bytes(b), nil
}

// CopyBytes returns b as Bytes without aliasing it.
func CopyBytes(b []byte) Bytes {
	return Bytes(bytes.Clone(b))
}

func (b Bytes) Len() int {
	return len(b)
}

func (b Bytes) String() string {
	return encodeHex(b)
}

func (b Bytes) Equal(o Bytes) bool {
	return bytes.Equal(b, o)
}

func (b Bytes) Cmp(o Bytes) int {
	return bytes.Compare(b, o)
}

// U256 reads b as a big-endian integer. Leading zero bytes are ignored; more
// than 32 significant bytes is out of range.
func (b Bytes) U256() (U256, error) {
	return bytesToU256("bytes", b)
}

func bytesToU256(typ string, b []byte) (U256, error) {
	trimmed := bytes.TrimLeft(b, "\x00")
	if len(trimmed) > 32 {
		return U256{}, parseErr(typ, encodeHex(b), ErrOutOfRange)
	}
	var u U256
	u.v.SetBytes(trimmed)
	return u, nil
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	v, err := ParseBytes(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b *Bytes) Scan(src any) error {
	return scanText("bytes", src, func(s string) error {
		return b.UnmarshalText([]byte(s))
	})
}

func (b Bytes) Value() (driver.Value, error) {
	return b.String(), nil
}

func (Bytes) GormDataType() string {
	return gormDataType
}

func (Bytes) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return textType(db)
}

func (Bytes) textColumn() {}
