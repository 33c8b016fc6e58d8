package sqltypes

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/holiman/uint256"
)

// Unsigned is the set of native unsigned integer types usable as operands.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// FromUint widens a native unsigned value.
func FromUint[B Bits, P Unsigned](p P) (Uint[B], error) {
	var u Uint[B]
	u.v.SetUint64(uint64(p))
	if u.v.BitLen() > bitsOf[B]() {
		return Uint[B]{}, &RangeError{Bits: bitsOf[B]()}
	}
	return u, nil
}

// FromInt converts a signed value. Negative input is out of range.
func FromInt[B Bits, S Signed](s S) (Uint[B], error) {
	if s < 0 {
		return Uint[B]{}, fmt.Errorf("%w: negative value %d", ErrOutOfRange, s)
	}
	return FromUint[B](uint64(s))
}

// FromBig converts b, failing when it is negative or wider than B.
func FromBig[B Bits](b *big.Int) (Uint[B], error) {
	if b.Sign() < 0 {
		return Uint[B]{}, fmt.Errorf("%w: negative value %s", ErrOutOfRange, b)
	}
	x, overflow := uint256.FromBig(b)
	if overflow || x.BitLen() > bitsOf[B]() {
		return Uint[B]{}, &RangeError{Bits: bitsOf[B]()}
	}
	return Uint[B]{v: *x}, nil
}

// FromInt256 wraps a raw engine value.
func FromInt256[B Bits](x *uint256.Int) (Uint[B], error) {
	if x.BitLen() > bitsOf[B]() {
		return Uint[B]{}, &RangeError{Bits: bitsOf[B]()}
	}
	return Uint[B]{v: *x}, nil
}

// To narrows u to a native unsigned type. It never truncates: a value that
// does not fit yields a *RangeError naming the target width.
func To[P Unsigned, B Bits](u Uint[B]) (P, error) {
	limit := uint64(^P(0))
	if !u.v.IsUint64() || u.v.Uint64() > limit {
		return 0, &RangeError{Bits: bits.Len64(limit)}
	}
	return P(u.v.Uint64()), nil
}

// Truncate keeps the low-order bits of u that fit in P. It is lossy; use To
// for a checked conversion.
func Truncate[P Unsigned, B Bits](u Uint[B]) P {
	return P(u.v.Uint64())
}

// Convert moves u to another width, failing if it does not fit.
func Convert[Dst, Src Bits](u Uint[Src]) (Uint[Dst], error) {
	if u.v.BitLen() > bitsOf[Dst]() {
		return Uint[Dst]{}, &RangeError{Bits: bitsOf[Dst]()}
	}
	return Uint[Dst]{v: u.v}, nil
}

func (u Uint[B]) Uint8() (uint8, error)   { return To[uint8](u) }
func (u Uint[B]) Uint16() (uint16, error) { return To[uint16](u) }
func (u Uint[B]) Uint32() (uint32, error) { return To[uint32](u) }
func (u Uint[B]) Uint64() (uint64, error) { return To[uint64](u) }
func (u Uint[B]) Uint() (uint, error)     { return To[uint](u) }

// U128 narrows u to 128 bits.
func (u Uint[B]) U128() (U128, error) {
	return Convert[Bits128](u)
}
