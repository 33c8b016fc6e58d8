package sqltypes

import (
	"bytes"
	"database/sql/driver"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const HashLength = common.HashLength

// Hash is a 32-byte content hash or event topic. There is deliberately no
// zero constant: an all-zero hash is never a meaningful default.
type Hash common.Hash

// TopicHash names a Hash used as an indexed event topic.
type TopicHash = Hash

// ParseHash decodes 0x-prefixed hex with exactly 64 digits in either case.
func ParseHash(s string) (Hash, error) {
	b, err := decodeFixed("hash", s, HashLength)
	if err != nil {
		return Hash{}, err
	}
	return Hash(common.BytesToHash(b)), nil
}

func HashFromCommon(h common.Hash) Hash {
	return Hash(h)
}

func (h Hash) Common() common.Hash {
	return common.Hash(h)
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return encodeHex(h[:])
}

func (h Hash) Cmp(o Hash) int {
	return bytes.Compare(h[:], o[:])
}

// Address returns the low 20 bytes when the upper 12 are zero, the layout
// of an address stored in a topic or storage slot.
func (h Hash) Address() (Address, bool) {
	if !allZero(h[:HashLength-AddressLength]) {
		return Address{}, false
	}
	return Address(common.BytesToAddress(h[HashLength-AddressLength:])), true
}

// U256 reads the hash as a big-endian integer.
func (h Hash) U256() U256 {
	var u U256
	u.v.SetBytes(h[:])
	return u
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	v, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h *Hash) Scan(src any) error {
	return scanText("hash", src, func(s string) error {
		return h.UnmarshalText([]byte(s))
	})
}

func (h Hash) Value() (driver.Value, error) {
	return h.String(), nil
}

func (Hash) GormDataType() string {
	return gormDataType
}

func (Hash) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return varcharType(db, HashColumnWidth)
}

func (Hash) textColumn() {}
