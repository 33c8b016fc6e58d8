package sqltypes

import (
	"fmt"
	"strconv"
)

// Op names a binary operation understood by Apply.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpRem
	OpAnd
	OpOr
	OpXor
)

var opNames = [...]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpRem: "rem",
	OpAnd: "and",
	OpOr:  "or",
	OpXor: "xor",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Policy selects what happens when a result leaves [0, 2^W-1].
type Policy uint8

const (
	// Panicking panics with an error wrapping ErrOverflow or ErrDivisionByZero.
	Panicking Policy = iota
	// Checked returns the error instead.
	Checked
	// Saturating clamps to zero or MaxUint.
	Saturating
	// Wrapping reduces the result modulo 2^W.
	Wrapping
)

// Apply evaluates u op v under policy. Division and remainder by zero are
// reported as ErrDivisionByZero regardless of policy; Panicking panics with
// it.
func (u Uint[B]) Apply(op Op, v Uint[B], policy Policy) (Uint[B], error) {
	var (
		z        Uint[B]
		overflow bool
	)

	switch op {
	case OpAdd:
		_, overflow = z.v.AddOverflow(&u.v, &v.v)
	case OpSub:
		_, overflow = z.v.SubOverflow(&u.v, &v.v)
	case OpMul:
		_, overflow = z.v.MulOverflow(&u.v, &v.v)
	case OpDiv, OpRem:
		if v.v.IsZero() {
			return fail[B](policy, fmt.Errorf("%s: %w", op, ErrDivisionByZero))
		}
		if op == OpDiv {
			z.v.Div(&u.v, &v.v)
		} else {
			z.v.Mod(&u.v, &v.v)
		}
	case OpAnd:
		z.v.And(&u.v, &v.v)
	case OpOr:
		z.v.Or(&u.v, &v.v)
	case OpXor:
		z.v.Xor(&u.v, &v.v)
	default:
		return fail[B](policy, fmt.Errorf("unsupported operation %s", op))
	}

	if z.v.BitLen() > bitsOf[B]() {
		overflow = true
	}
	if !overflow {
		return z, nil
	}

	switch policy {
	case Saturating:
		if op == OpSub {
			return Uint[B]{}, nil
		}
		return MaxUint[B](), nil
	case Wrapping:
		m := MaxUint[B]()
		z.v.And(&z.v, &m.v)
		return z, nil
	default:
		return fail[B](policy, fmt.Errorf("%s: %w", op, ErrOverflow))
	}
}

func fail[B Bits](policy Policy, err error) (Uint[B], error) {
	if policy == Panicking {
		panic(err)
	}
	return Uint[B]{}, err
}

func (u Uint[B]) must(op Op, v Uint[B]) Uint[B] {
	z, _ := u.Apply(op, v, Panicking)
	return z
}

// Add returns u+v and panics on overflow. The same holds for the other
// unprefixed operators; use the Checked, Saturating or Wrapping variants to
// handle overflow without a panic.
func (u Uint[B]) Add(v Uint[B]) Uint[B] { return u.must(OpAdd, v) }
func (u Uint[B]) Sub(v Uint[B]) Uint[B] { return u.must(OpSub, v) }
func (u Uint[B]) Mul(v Uint[B]) Uint[B] { return u.must(OpMul, v) }
func (u Uint[B]) Div(v Uint[B]) Uint[B] { return u.must(OpDiv, v) }
func (u Uint[B]) Rem(v Uint[B]) Uint[B] { return u.must(OpRem, v) }
func (u Uint[B]) And(v Uint[B]) Uint[B] { return u.must(OpAnd, v) }
func (u Uint[B]) Or(v Uint[B]) Uint[B]  { return u.must(OpOr, v) }
func (u Uint[B]) Xor(v Uint[B]) Uint[B] { return u.must(OpXor, v) }

func (u Uint[B]) CheckedAdd(v Uint[B]) (Uint[B], error) { return u.Apply(OpAdd, v, Checked) }
func (u Uint[B]) CheckedSub(v Uint[B]) (Uint[B], error) { return u.Apply(OpSub, v, Checked) }
func (u Uint[B]) CheckedMul(v Uint[B]) (Uint[B], error) { return u.Apply(OpMul, v, Checked) }
func (u Uint[B]) CheckedDiv(v Uint[B]) (Uint[B], error) { return u.Apply(OpDiv, v, Checked) }
func (u Uint[B]) CheckedRem(v Uint[B]) (Uint[B], error) { return u.Apply(OpRem, v, Checked) }

func (u Uint[B]) SaturatingAdd(v Uint[B]) Uint[B] {
	z, _ := u.Apply(OpAdd, v, Saturating)
	return z
}

func (u Uint[B]) SaturatingSub(v Uint[B]) Uint[B] {
	z, _ := u.Apply(OpSub, v, Saturating)
	return z
}

func (u Uint[B]) SaturatingMul(v Uint[B]) Uint[B] {
	z, _ := u.Apply(OpMul, v, Saturating)
	return z
}

func (u Uint[B]) WrappingAdd(v Uint[B]) Uint[B] {
	z, _ := u.Apply(OpAdd, v, Wrapping)
	return z
}

func (u Uint[B]) WrappingSub(v Uint[B]) Uint[B] {
	z, _ := u.Apply(OpSub, v, Wrapping)
	return z
}

func (u Uint[B]) WrappingMul(v Uint[B]) Uint[B] {
	z, _ := u.Apply(OpMul, v, Wrapping)
	return z
}

// Lsh shifts left by n bits. Bits moved past the width are dropped.
func (u Uint[B]) Lsh(n uint) Uint[B] {
	var z Uint[B]
	z.v.Lsh(&u.v, n)
	m := MaxUint[B]()
	z.v.And(&z.v, &m.v)
	return z
}

func (u Uint[B]) Rsh(n uint) Uint[B] {
	var z Uint[B]
	z.v.Rsh(&u.v, n)
	return z
}

// Not flips every bit within the width.
func (u Uint[B]) Not() Uint[B] {
	z := MaxUint[B]()
	z.v.Xor(&z.v, &u.v)
	return z
}

func (u Uint[B]) Square() Uint[B] {
	return u.Mul(u)
}

// CheckedPow returns u**exp or an error wrapping ErrOverflow.
func (u Uint[B]) CheckedPow(exp uint) (Uint[B], error) {
	result := Uint[B]{}
	result.v.SetOne()
	base := u

	var err error
	for exp > 0 {
		if exp&1 == 1 {
			if result, err = result.CheckedMul(base); err != nil {
				return Uint[B]{}, fmt.Errorf("pow: %w", ErrOverflow)
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = base.CheckedMul(base); err != nil {
				return Uint[B]{}, fmt.Errorf("pow: %w", ErrOverflow)
			}
		}
	}
	return result, nil
}

func (u Uint[B]) Pow(exp uint) Uint[B] {
	z, err := u.CheckedPow(exp)
	if err != nil {
		panic(err)
	}
	return z
}

func (u Uint[B]) SaturatingPow(exp uint) Uint[B] {
	z, err := u.CheckedPow(exp)
	if err != nil {
		return MaxUint[B]()
	}
	return z
}

// Gcd returns the greatest common divisor; Gcd(0, 0) is 0.
func (u Uint[B]) Gcd(v Uint[B]) Uint[B] {
	a, b := u.v, v.v
	for !b.IsZero() {
		a.Mod(&a, &b)
		a, b = b, a
	}
	return Uint[B]{v: a}
}

// Lcm returns the least common multiple and panics on overflow.
func (u Uint[B]) Lcm(v Uint[B]) Uint[B] {
	if u.IsZero() || v.IsZero() {
		return Uint[B]{}
	}
	return u.Div(u.Gcd(v)).Mul(v)
}
