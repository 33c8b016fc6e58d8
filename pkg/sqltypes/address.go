package sqltypes

import (
	"bytes"
	"database/sql/driver"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const AddressLength = common.AddressLength

// Address is a 20-byte account or contract identifier stored as
// lowercase 0x-prefixed hex.
type Address common.Address

// ZeroAddress is the all-zero address.
var ZeroAddress = Address{}

// ParseAddress decodes 0x-prefixed hex with exactly 40 digits in either case.
func ParseAddress(s string) (Address, error) {
	b, err := decodeFixed("address", s, AddressLength)
	if err != nil {
		return Address{}, err
	}
	return Address(common.BytesToAddress(b)), nil
}

func AddressFromCommon(a common.Address) Address {
	return Address(a)
}

func (a Address) Common() common.Address {
	return common.Address(a)
}

func (a Address) Bytes() []byte {
	return a[:]
}

// String returns lowercase hex. Unlike common.Address.Hex it applies no
// checksum casing.
func (a Address) String() string {
	return encodeHex(a[:])
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) Cmp(b Address) int {
	return bytes.Compare(a[:], b[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	v, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a *Address) Scan(src any) error {
	return scanText("address", src, func(s string) error {
		return a.UnmarshalText([]byte(s))
	})
}

func (a Address) Value() (driver.Value, error) {
	return a.String(), nil
}

func (Address) GormDataType() string {
	return gormDataType
}

func (Address) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return varcharType(db, AddressColumnWidth)
}

func (Address) textColumn() {}
