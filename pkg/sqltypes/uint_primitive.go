package sqltypes

// ApplyUint evaluates u op p for a native right operand.
func ApplyUint[B Bits, P Unsigned](u Uint[B], op Op, p P, policy Policy) (Uint[B], error) {
	v, err := FromUint[B](p)
	if err != nil {
		return fail[B](policy, err)
	}
	return u.Apply(op, v, policy)
}

// ApplyUintLeft evaluates p op u for a native left operand.
func ApplyUintLeft[B Bits, P Unsigned](p P, op Op, u Uint[B], policy Policy) (Uint[B], error) {
	v, err := FromUint[B](p)
	if err != nil {
		return fail[B](policy, err)
	}
	return v.Apply(op, u, policy)
}

// Calc is ApplyUint under the Panicking policy.
func Calc[B Bits, P Unsigned](u Uint[B], op Op, p P) Uint[B] {
	z, _ := ApplyUint(u, op, p, Panicking)
	return z
}

// CalcLeft is ApplyUintLeft under the Panicking policy.
func CalcLeft[B Bits, P Unsigned](p P, op Op, u Uint[B]) Uint[B] {
	z, _ := ApplyUintLeft(p, op, u, Panicking)
	return z
}

// CmpUint compares u with a native value by magnitude.
func CmpUint[B Bits, P Unsigned](u Uint[B], p P) int {
	if !u.v.IsUint64() {
		return 1
	}
	x, y := u.v.Uint64(), uint64(p)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func CmpUintLeft[B Bits, P Unsigned](p P, u Uint[B]) int {
	return -CmpUint(u, p)
}

func EqUint[B Bits, P Unsigned](u Uint[B], p P) bool {
	return CmpUint(u, p) == 0
}
