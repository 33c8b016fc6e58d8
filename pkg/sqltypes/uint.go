package sqltypes

import (
	"database/sql/driver"
	"hash/maphash"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Uint is an unsigned integer bounded to the width given by B. The zero
// value is the number zero. Values are immutable: every operation returns a
// new Uint.
//
// The canonical text form is lowercase 0x-prefixed hex with no leading
// zeros. Parsing also accepts 0X and plain decimal.
type Uint[B Bits] struct {
	v uint256.Int
}

type (
	U256 = Uint[Bits256]
	U128 = Uint[Bits128]
	U64  = Uint[Bits64]
)

// NewU256 returns x as a U256.
func NewU256(x uint64) U256 {
	var u U256
	u.v.SetUint64(x)
	return u
}

// MaxUint returns 2^W - 1 for the width of B.
func MaxUint[B Bits]() Uint[B] {
	var u Uint[B]
	u.v.SetAllOne()
	if w := bitsOf[B](); w < 256 {
		u.v.Rsh(&u.v, uint(256-w))
	}
	return u
}

// ParseU256 parses s as a 256-bit unsigned integer.
func ParseU256(s string) (U256, error) {
	return ParseUint[Bits256](s)
}

// ParseUint parses 0x/0X-prefixed hex or a plain decimal numeral.
func ParseUint[B Bits](s string) (Uint[B], error) {
	typ := uintName[B]()
	var u Uint[B]

	if body, ok := cutHexPrefix(s); ok {
		if body == "" || !isHex(body) {
			return Uint[B]{}, parseErr(typ, s, ErrMalformed)
		}
		body = strings.TrimLeft(body, "0")
		if body == "" {
			return u, nil
		}
		if len(body) > 64 {
			return Uint[B]{}, parseErr(typ, s, ErrOutOfRange)
		}
		if err := u.v.SetFromHex("0x" + body); err != nil {
			return Uint[B]{}, parseErr(typ, s, ErrMalformed)
		}
	} else {
		if !isDecimal(s) {
			return Uint[B]{}, parseErr(typ, s, ErrMalformed)
		}
		if err := u.v.SetFromDecimal(s); err != nil {
			return Uint[B]{}, parseErr(typ, s, ErrOutOfRange)
		}
	}

	if u.v.BitLen() > bitsOf[B]() {
		return Uint[B]{}, parseErr(typ, s, ErrOutOfRange)
	}
	return u, nil
}

func uintName[B Bits]() string {
	return "uint" + strconv.Itoa(bitsOf[B]())
}

// String returns the canonical hex form.
func (u Uint[B]) String() string {
	return u.v.Hex()
}

// Dec returns the decimal form.
func (u Uint[B]) Dec() string {
	return u.v.Dec()
}

// Int returns the wrapped engine value.
func (u Uint[B]) Int() uint256.Int {
	return u.v
}

func (u Uint[B]) Big() *big.Int {
	return u.v.ToBig()
}

func (u Uint[B]) IsZero() bool {
	return u.v.IsZero()
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than v.
func (u Uint[B]) Cmp(v Uint[B]) int {
	return u.v.Cmp(&v.v)
}

func (u Uint[B]) Eq(v Uint[B]) bool { return u.v.Eq(&v.v) }
func (u Uint[B]) Lt(v Uint[B]) bool { return u.v.Lt(&v.v) }
func (u Uint[B]) Gt(v Uint[B]) bool { return u.v.Gt(&v.v) }

func (u Uint[B]) Min(v Uint[B]) Uint[B] {
	if v.Lt(u) {
		return v
	}
	return u
}

func (u Uint[B]) Max(v Uint[B]) Uint[B] {
	if v.Gt(u) {
		return v
	}
	return u
}

// Compare orders a and b by magnitude, for use with slices.SortFunc.
func Compare[B Bits](a, b Uint[B]) int {
	return a.Cmp(b)
}

// Digest hashes u. It equals DigestInt for the wrapped engine value, so maps
// keyed by either representation agree.
func (u Uint[B]) Digest(seed maphash.Seed) uint64 {
	return DigestInt(seed, &u.v)
}

// DigestInt hashes a raw engine value.
func DigestInt(seed maphash.Seed, x *uint256.Int) uint64 {
	b := x.Bytes32()
	return maphash.Bytes(seed, b[:])
}

func (u Uint[B]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[B]) UnmarshalText(text []byte) error {
	v, err := ParseUint[B](string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u *Uint[B]) Scan(src any) error {
	return scanText(uintName[B](), src, func(s string) error {
		v, err := ParseUint[B](s)
		if err != nil {
			return err
		}
		*u = v
		return nil
	})
}

func (u Uint[B]) Value() (driver.Value, error) {
	return u.String(), nil
}

func (Uint[B]) GormDataType() string {
	return gormDataType
}

func (Uint[B]) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return varcharType(db, 2+bitsOf[B]()/4)
}

func (Uint[B]) textColumn() {}
