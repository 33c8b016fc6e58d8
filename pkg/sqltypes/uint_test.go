package sqltypes_test

import (
	"errors"
	"math/big"
	"slices"

	"ethsql/pkg/sqltypes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	maxU256Dec = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	maxU256Hex = "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	two64Dec   = "18446744073709551616"
	two64Hex   = "0x10000000000000000"
)

var _ = Describe("Uint", func() {
	Describe("ParseU256", func() {
		DescribeTable("decimal and hex forms decode to the same value",
			func(dec, hex string) {
				fromDec, err := sqltypes.ParseU256(dec)
				Expect(err).NotTo(HaveOccurred())
				fromHex, err := sqltypes.ParseU256(hex)
				Expect(err).NotTo(HaveOccurred())

				Expect(fromDec).To(Equal(fromHex))
				Expect(fromDec.String()).To(Equal(hex))
				Expect(fromDec.Dec()).To(Equal(dec))

				again, err := sqltypes.ParseU256(fromDec.String())
				Expect(err).NotTo(HaveOccurred())
				Expect(again).To(Equal(fromDec))
			},
			Entry("zero", "0", "0x0"),
			Entry("one", "1", "0x1"),
			Entry("one hundred", "100", "0x64"),
			Entry("max uint64", "18446744073709551615", "0xffffffffffffffff"),
			Entry("2^64", two64Dec, two64Hex),
			Entry("max uint256", maxU256Dec, maxU256Hex),
		)

		It("equals the zero value for \"0\"", func() {
			u, err := sqltypes.ParseU256("0")
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(Equal(sqltypes.U256{}))
			Expect(u.IsZero()).To(BeTrue())
		})

		It("accepts an upper case prefix and digits", func() {
			u, err := sqltypes.ParseU256("0XFF")
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(Equal(sqltypes.NewU256(255)))
			Expect(u.String()).To(Equal("0xff"))
		})

		It("accepts leading zeros on input and drops them on output", func() {
			u, err := sqltypes.ParseU256("0x00000000000000000000000000000000000000000000000000000000000000000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.String()).To(Equal("0x1"))

			u, err = sqltypes.ParseU256("007")
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(Equal(sqltypes.NewU256(7)))
		})

		DescribeTable("rejects malformed input",
			func(input string) {
				_, err := sqltypes.ParseU256(input)
				Expect(err).To(MatchError(sqltypes.ErrMalformed))

				var pe *sqltypes.ParseError
				Expect(errors.As(err, &pe)).To(BeTrue())
				Expect(pe.Input).To(Equal(input))
				Expect(pe.Type).To(Equal("uint256"))
			},
			Entry("empty", ""),
			Entry("bare prefix", "0x"),
			Entry("bad hex digit", "0xg1"),
			Entry("hex digits without prefix", "ff"),
			Entry("negative", "-1"),
			Entry("plus sign", "+1"),
			Entry("whitespace", " 1"),
			Entry("fraction", "1.5"),
		)

		DescribeTable("rejects magnitudes above 2^256-1",
			func(input string) {
				_, err := sqltypes.ParseU256(input)
				Expect(err).To(MatchError(sqltypes.ErrOutOfRange))
			},
			Entry("decimal 2^256", "115792089237316195423570985008687907853269984665640564039457584007913129639936"),
			Entry("hex 2^256", "0x10000000000000000000000000000000000000000000000000000000000000000"),
		)

		It("bounds narrower widths", func() {
			_, err := sqltypes.ParseUint[sqltypes.Bits64](two64Hex)
			Expect(err).To(MatchError(sqltypes.ErrOutOfRange))

			u, err := sqltypes.ParseUint[sqltypes.Bits64]("18446744073709551615")
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(Equal(sqltypes.MaxUint[sqltypes.Bits64]()))
		})
	})

	Describe("narrowing", func() {
		var two64 sqltypes.U256

		BeforeEach(func() {
			two64 = sqltypes.MustU256(two64Hex)
		})

		It("fails for 2^64 into 64 bits", func() {
			_, err := two64.Uint64()
			Expect(err).To(MatchError(sqltypes.ErrOutOfRange))

			var re *sqltypes.RangeError
			Expect(errors.As(err, &re)).To(BeTrue())
			Expect(re.Bits).To(Equal(64))
		})

		It("succeeds for 2^64-1 into 64 bits", func() {
			v, err := two64.Sub(sqltypes.NewU256(1)).Uint64()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint64(18446744073709551615)))
		})

		It("names the target width", func() {
			_, err := sqltypes.NewU256(256).Uint8()
			Expect(err).To(MatchError("value too large for uint8"))

			_, err = sqltypes.NewU256(1 << 16).Uint16()
			Expect(err).To(MatchError("value too large for uint16"))

			_, err = sqltypes.NewU256(1 << 32).Uint32()
			Expect(err).To(MatchError("value too large for uint32"))

			v, err := sqltypes.NewU256(255).Uint8()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint8(255)))
		})

		It("narrows to 128 bits", func() {
			v, err := two64.U128()
			Expect(err).NotTo(HaveOccurred())
			Expect(v.String()).To(Equal(two64Hex))

			_, err = sqltypes.MaxUint[sqltypes.Bits256]().U128()
			Expect(err).To(MatchError(sqltypes.ErrOutOfRange))
		})

		It("keeps the low-order bits when truncating", func() {
			Expect(sqltypes.Truncate[uint8](sqltypes.NewU256(0x1ff))).To(Equal(uint8(0xff)))
			Expect(sqltypes.Truncate[uint64](two64)).To(Equal(uint64(0)))
		})
	})

	Describe("widening", func() {
		It("converts native values", func() {
			u, err := sqltypes.FromUint[sqltypes.Bits256](uint16(500))
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(Equal(sqltypes.NewU256(500)))
		})

		It("rejects negative signed values", func() {
			_, err := sqltypes.FromInt[sqltypes.Bits256](-1)
			Expect(err).To(MatchError(sqltypes.ErrOutOfRange))

			u, err := sqltypes.FromInt[sqltypes.Bits256](int32(42))
			Expect(err).NotTo(HaveOccurred())
			Expect(u).To(Equal(sqltypes.NewU256(42)))
		})

		It("converts big integers", func() {
			b, ok := new(big.Int).SetString(maxU256Dec, 10)
			Expect(ok).To(BeTrue())
			u, err := sqltypes.FromBig[sqltypes.Bits256](b)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.String()).To(Equal(maxU256Hex))
			Expect(u.Big().Cmp(b)).To(Equal(0))

			_, err = sqltypes.FromBig[sqltypes.Bits256](new(big.Int).Add(b, big.NewInt(1)))
			Expect(err).To(MatchError(sqltypes.ErrOutOfRange))

			_, err = sqltypes.FromBig[sqltypes.Bits256](big.NewInt(-5))
			Expect(err).To(MatchError(sqltypes.ErrOutOfRange))
		})
	})

	Describe("ordering", func() {
		It("sorts by magnitude", func() {
			values := make([]sqltypes.U256, 0, 3)
			for _, s := range []string{"100", "50", "0x64"} {
				values = append(values, sqltypes.MustU256(s))
			}

			slices.SortFunc(values, sqltypes.Compare[sqltypes.Bits256])

			Expect(values).To(Equal([]sqltypes.U256{
				sqltypes.NewU256(50),
				sqltypes.NewU256(100),
				sqltypes.NewU256(100),
			}))
		})

		It("compares and picks extremes", func() {
			a, b := sqltypes.NewU256(3), sqltypes.NewU256(9)
			Expect(a.Cmp(b)).To(Equal(-1))
			Expect(b.Cmp(a)).To(Equal(1))
			Expect(a.Cmp(a)).To(Equal(0))
			Expect(a.Lt(b)).To(BeTrue())
			Expect(b.Gt(a)).To(BeTrue())
			Expect(a.Min(b)).To(Equal(a))
			Expect(a.Max(b)).To(Equal(b))
		})
	})
})
