package sqltypes

import (
	"bytes"
	"database/sql/driver"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// FixedBytes is an opaque identifier of exactly W.Size() bytes, such as a
// 4-byte function selector. The zero value is the all-zero sequence and
// compares equal to a parsed all-zero string.
type FixedBytes[W Width] struct {
	// data is empty when every byte is zero
	data string
}

func ParseFixedBytes[W Width](s string) (FixedBytes[W], error) {
	b, err := decodeFixed(fixedName[W](), s, sizeOf[W]())
	if err != nil {
		return FixedBytes[W]{}, err
	}
	return newFixed[W](b), nil
}

// BytesToFixed copies b, which must be exactly W.Size() bytes long.
func BytesToFixed[W Width](b []byte) (FixedBytes[W], error) {
	if len(b) != sizeOf[W]() {
		return FixedBytes[W]{}, parseErr(fixedName[W](), encodeHex(b), ErrLengthMismatch)
	}
	return newFixed[W](b), nil
}

func newFixed[W Width](b []byte) FixedBytes[W] {
	if allZero(b) {
		return FixedBytes[W]{}
	}
	return FixedBytes[W]{data: string(b)}
}

func fixedName[W Width]() string {
	return "bytes" + strconv.Itoa(sizeOf[W]())
}

func (f FixedBytes[W]) Len() int {
	return sizeOf[W]()
}

func (f FixedBytes[W]) Bytes() []byte {
	if f.data == "" {
		return make([]byte, sizeOf[W]())
	}
	return []byte(f.data)
}

func (f FixedBytes[W]) String() string {
	return encodeHex(f.Bytes())
}

func (f FixedBytes[W]) IsZero() bool {
	return f.data == ""
}

func (f FixedBytes[W]) Cmp(g FixedBytes[W]) int {
	return bytes.Compare(f.Bytes(), g.Bytes())
}

// U256 reads the bytes as a big-endian integer.
func (f FixedBytes[W]) U256() (U256, error) {
	return bytesToU256(fixedName[W](), f.Bytes())
}

func (f FixedBytes[W]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FixedBytes[W]) UnmarshalText(text []byte) error {
	v, err := ParseFixedBytes[W](string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *FixedBytes[W]) Scan(src any) error {
	return scanText(fixedName[W](), src, func(s string) error {
		return f.UnmarshalText([]byte(s))
	})
}

func (f FixedBytes[W]) Value() (driver.Value, error) {
	return f.String(), nil
}

func (FixedBytes[W]) GormDataType() string {
	return gormDataType
}

func (FixedBytes[W]) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return varcharType(db, 2+2*sizeOf[W]())
}

func (FixedBytes[W]) textColumn() {}
