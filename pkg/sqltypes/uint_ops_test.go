package sqltypes_test

import (
	"hash/maphash"

	"ethsql/pkg/sqltypes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Uint arithmetic", func() {
	var (
		maxVal sqltypes.U256
		zero   sqltypes.U256
		one    sqltypes.U256
		ten    sqltypes.U256
	)

	BeforeEach(func() {
		maxVal = sqltypes.MaxUint[sqltypes.Bits256]()
		zero = sqltypes.U256{}
		one = sqltypes.NewU256(1)
		ten = sqltypes.NewU256(10)
	})

	Describe("Apply", func() {
		DescribeTable("evaluates in range operations",
			func(op sqltypes.Op, a, b, want uint64) {
				for _, policy := range []sqltypes.Policy{sqltypes.Panicking, sqltypes.Checked, sqltypes.Saturating, sqltypes.Wrapping} {
					got, err := sqltypes.NewU256(a).Apply(op, sqltypes.NewU256(b), policy)
					Expect(err).NotTo(HaveOccurred())
					Expect(got).To(Equal(sqltypes.NewU256(want)))
				}
			},
			Entry("add", sqltypes.OpAdd, uint64(7), uint64(5), uint64(12)),
			Entry("sub", sqltypes.OpSub, uint64(7), uint64(5), uint64(2)),
			Entry("mul", sqltypes.OpMul, uint64(7), uint64(5), uint64(35)),
			Entry("div", sqltypes.OpDiv, uint64(7), uint64(5), uint64(1)),
			Entry("rem", sqltypes.OpRem, uint64(7), uint64(5), uint64(2)),
			Entry("and", sqltypes.OpAnd, uint64(6), uint64(3), uint64(2)),
			Entry("or", sqltypes.OpOr, uint64(6), uint64(3), uint64(7)),
			Entry("xor", sqltypes.OpXor, uint64(6), uint64(3), uint64(5)),
		)

		It("reports overflow when checked", func() {
			_, err := maxVal.CheckedAdd(one)
			Expect(err).To(MatchError(sqltypes.ErrOverflow))
			Expect(err).To(MatchError("add: arithmetic overflow"))

			_, err = zero.CheckedSub(one)
			Expect(err).To(MatchError(sqltypes.ErrOverflow))

			_, err = maxVal.CheckedMul(ten)
			Expect(err).To(MatchError(sqltypes.ErrOverflow))
		})

		It("clamps when saturating", func() {
			Expect(maxVal.SaturatingAdd(one)).To(Equal(maxVal))
			Expect(zero.SaturatingSub(one)).To(Equal(zero))
			Expect(maxVal.SaturatingMul(ten)).To(Equal(maxVal))
			Expect(ten.SaturatingSub(one)).To(Equal(sqltypes.NewU256(9)))
		})

		It("wraps modulo 2^256", func() {
			Expect(maxVal.WrappingAdd(one)).To(Equal(zero))
			Expect(zero.WrappingSub(one)).To(Equal(maxVal))
			Expect(maxVal.WrappingMul(sqltypes.NewU256(2))).To(Equal(maxVal.Sub(one)))
		})

		It("panics on overflow when unchecked", func() {
			Expect(func() { maxVal.Add(one) }).To(PanicWith(MatchError(sqltypes.ErrOverflow)))
			Expect(func() { zero.Sub(one) }).To(PanicWith(MatchError(sqltypes.ErrOverflow)))
		})

		It("fails division by zero under every policy", func() {
			for _, op := range []sqltypes.Op{sqltypes.OpDiv, sqltypes.OpRem} {
				for _, policy := range []sqltypes.Policy{sqltypes.Checked, sqltypes.Saturating, sqltypes.Wrapping} {
					_, err := ten.Apply(op, zero, policy)
					Expect(err).To(MatchError(sqltypes.ErrDivisionByZero))
				}
			}

			_, err := ten.CheckedDiv(zero)
			Expect(err).To(MatchError(sqltypes.ErrDivisionByZero))
			_, err = ten.CheckedRem(zero)
			Expect(err).To(MatchError(sqltypes.ErrDivisionByZero))

			Expect(func() { ten.Div(zero) }).To(PanicWith(MatchError(sqltypes.ErrDivisionByZero)))
			Expect(func() { ten.Rem(zero) }).To(PanicWith(MatchError(sqltypes.ErrDivisionByZero)))
		})

		It("respects narrower widths", func() {
			max64 := sqltypes.MaxUint[sqltypes.Bits64]()
			one64, err := sqltypes.FromUint[sqltypes.Bits64](uint8(1))
			Expect(err).NotTo(HaveOccurred())

			_, err = max64.CheckedAdd(one64)
			Expect(err).To(MatchError(sqltypes.ErrOverflow))
			Expect(max64.WrappingAdd(one64)).To(Equal(sqltypes.U64{}))
			Expect(sqltypes.U64{}.WrappingSub(one64)).To(Equal(max64))
			Expect(max64.SaturatingAdd(one64)).To(Equal(max64))
			Expect(max64.Not()).To(Equal(sqltypes.U64{}))
			Expect(max64.Lsh(1)).To(Equal(max64.Sub(one64)))
		})
	})

	Describe("primitive operands", func() {
		var a sqltypes.U256

		BeforeEach(func() {
			a = sqltypes.MustU256("0x1234567890abcdef")
		})

		It("is symmetric for addition and multiplication", func() {
			Expect(sqltypes.Calc(a, sqltypes.OpMul, uint8(2))).To(Equal(sqltypes.CalcLeft(uint8(2), sqltypes.OpMul, a)))
			Expect(sqltypes.Calc(a, sqltypes.OpMul, uint16(2))).To(Equal(sqltypes.CalcLeft(uint16(2), sqltypes.OpMul, a)))
			Expect(sqltypes.Calc(a, sqltypes.OpAdd, uint32(9))).To(Equal(sqltypes.CalcLeft(uint32(9), sqltypes.OpAdd, a)))
			Expect(sqltypes.Calc(a, sqltypes.OpAdd, uint64(9))).To(Equal(sqltypes.CalcLeft(uint64(9), sqltypes.OpAdd, a)))
			Expect(sqltypes.Calc(a, sqltypes.OpMul, uint(3))).To(Equal(sqltypes.CalcLeft(uint(3), sqltypes.OpMul, a)))
			Expect(sqltypes.Calc(a, sqltypes.OpMul, uintptr(3))).To(Equal(sqltypes.CalcLeft(uintptr(3), sqltypes.OpMul, a)))

			Expect(sqltypes.Calc(a, sqltypes.OpMul, uint8(2))).To(Equal(a.Add(a)))
		})

		It("keeps operand order for non commutative operations", func() {
			Expect(sqltypes.Calc(ten, sqltypes.OpSub, uint8(3))).To(Equal(sqltypes.NewU256(7)))
			Expect(sqltypes.CalcLeft(uint8(30), sqltypes.OpDiv, ten)).To(Equal(sqltypes.NewU256(3)))
			Expect(sqltypes.CalcLeft(uint8(33), sqltypes.OpRem, ten)).To(Equal(sqltypes.NewU256(3)))

			_, err := sqltypes.ApplyUintLeft(uint8(3), sqltypes.OpSub, ten, sqltypes.Checked)
			Expect(err).To(MatchError(sqltypes.ErrOverflow))

			got, err := sqltypes.ApplyUintLeft(uint8(3), sqltypes.OpSub, ten, sqltypes.Saturating)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.IsZero()).To(BeTrue())
		})

		It("fails division by a zero primitive", func() {
			_, err := sqltypes.ApplyUint(ten, sqltypes.OpDiv, uint64(0), sqltypes.Checked)
			Expect(err).To(MatchError(sqltypes.ErrDivisionByZero))
			Expect(func() { sqltypes.Calc(ten, sqltypes.OpRem, uint8(0)) }).To(PanicWith(MatchError(sqltypes.ErrDivisionByZero)))
		})

		It("compares against primitives in both orders", func() {
			five := sqltypes.NewU256(5)
			Expect(sqltypes.EqUint(five, uint8(5))).To(BeTrue())
			Expect(sqltypes.EqUint(five, uint64(5))).To(BeTrue())
			Expect(sqltypes.CmpUint(five, uint8(6))).To(Equal(-1))
			Expect(sqltypes.CmpUintLeft(uint8(6), five)).To(Equal(1))
			Expect(sqltypes.CmpUint(maxVal, ^uint64(0))).To(Equal(1))
			Expect(sqltypes.CmpUintLeft(^uint64(0), maxVal)).To(Equal(-1))
		})
	})

	Describe("helpers", func() {
		It("computes powers", func() {
			Expect(sqltypes.NewU256(2).Pow(10)).To(Equal(sqltypes.NewU256(1024)))
			Expect(sqltypes.NewU256(7).Pow(0)).To(Equal(one))
			Expect(sqltypes.NewU256(12).Square()).To(Equal(sqltypes.NewU256(144)))

			_, err := sqltypes.NewU256(2).CheckedPow(256)
			Expect(err).To(MatchError(sqltypes.ErrOverflow))
			Expect(sqltypes.NewU256(2).SaturatingPow(256)).To(Equal(maxVal))

			top, err := sqltypes.NewU256(2).CheckedPow(255)
			Expect(err).NotTo(HaveOccurred())
			Expect(top).To(Equal(one.Lsh(255)))
		})

		It("computes gcd and lcm", func() {
			Expect(sqltypes.NewU256(48).Gcd(sqltypes.NewU256(18))).To(Equal(sqltypes.NewU256(6)))
			Expect(sqltypes.NewU256(4).Lcm(sqltypes.NewU256(6))).To(Equal(sqltypes.NewU256(12)))
			Expect(zero.Gcd(zero)).To(Equal(zero))
			Expect(zero.Lcm(ten)).To(Equal(zero))
		})

		It("shifts and inverts within the width", func() {
			Expect(one.Lsh(4)).To(Equal(sqltypes.NewU256(16)))
			Expect(sqltypes.NewU256(16).Rsh(4)).To(Equal(one))
			Expect(maxVal.Lsh(256)).To(Equal(zero))
			Expect(zero.Not()).To(Equal(maxVal))
		})
	})

	Describe("Digest", func() {
		It("matches the digest of the wrapped value", func() {
			seed := maphash.MakeSeed()
			u := sqltypes.MustU256("0xdeadbeef")
			raw := u.Int()

			Expect(u.Digest(seed)).To(Equal(sqltypes.DigestInt(seed, &raw)))
			Expect(sqltypes.MustU256("3735928559").Digest(seed)).To(Equal(u.Digest(seed)))
		})

		It("keys maps by the wrapped value", func() {
			seen := map[sqltypes.U256]int{}
			seen[sqltypes.MustU256("100")]++
			seen[sqltypes.MustU256("0x64")]++
			Expect(seen).To(HaveLen(1))
			Expect(seen[sqltypes.NewU256(100)]).To(Equal(2))
		})
	})
})
