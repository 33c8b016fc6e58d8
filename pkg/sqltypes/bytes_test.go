package sqltypes_test

import (
	"strings"

	"ethsql/pkg/sqltypes"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type w5 struct{}

func (w5) Size() int { return 5 }

const (
	usdc      = "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
	usdcMixed = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	txHash    = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
)

var _ = Describe("Address", func() {
	It("decodes either case and encodes lowercase", func() {
		a, err := sqltypes.ParseAddress(usdcMixed)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.String()).To(Equal(usdc))
		Expect(a.Common()).To(Equal(common.HexToAddress(usdc)))

		b, err := sqltypes.ParseAddress(strings.ToUpper(usdc[2:]))
		Expect(err).To(MatchError(sqltypes.ErrMalformed))
		Expect(b).To(Equal(sqltypes.ZeroAddress))
	})

	It("round trips", func() {
		a := sqltypes.MustAddress(usdc)
		again, err := sqltypes.ParseAddress(a.String())
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(a))
		Expect(sqltypes.AddressFromCommon(a.Common())).To(Equal(a))
	})

	DescribeTable("rejects bad input",
		func(input string, kind error) {
			_, err := sqltypes.ParseAddress(input)
			Expect(err).To(MatchError(kind))
		},
		Entry("empty", "", sqltypes.ErrMalformed),
		Entry("no prefix", usdc[2:], sqltypes.ErrMalformed),
		Entry("bad digit", "0xz0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", sqltypes.ErrMalformed),
		Entry("too short", usdc[:40], sqltypes.ErrLengthMismatch),
		Entry("too long", usdc+"00", sqltypes.ErrLengthMismatch),
		Entry("hash sized", txHash, sqltypes.ErrLengthMismatch),
	)

	It("exposes a zero constant", func() {
		Expect(sqltypes.ZeroAddress.IsZero()).To(BeTrue())
		Expect(sqltypes.ZeroAddress.String()).To(Equal("0x0000000000000000000000000000000000000000"))
		Expect(sqltypes.MustAddress(usdc).IsZero()).To(BeFalse())
	})

	It("orders bytewise", func() {
		token0 := sqltypes.MustAddress("0x1000000000000000000000000000000000000000")
		token1 := sqltypes.MustAddress("0x2000000000000000000000000000000000000000")
		Expect(token0.Cmp(token1)).To(Equal(-1))
		Expect(token1.Cmp(token0)).To(Equal(1))
	})
})

var _ = Describe("Hash", func() {
	It("round trips", func() {
		h, err := sqltypes.ParseHash(strings.ToUpper("0x" + txHash[2:]))
		Expect(err).NotTo(HaveOccurred())
		Expect(h.String()).To(Equal(txHash))
		Expect(h.Common()).To(Equal(common.HexToHash(txHash)))
		Expect(sqltypes.HashFromCommon(h.Common())).To(Equal(h))
	})

	It("rejects the address length", func() {
		_, err := sqltypes.ParseHash(usdc)
		Expect(err).To(MatchError(sqltypes.ErrLengthMismatch))
	})

	It("extracts an address padded into a topic", func() {
		topic := sqltypes.MustHash("0x000000000000000000000000a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
		addr, ok := topic.Address()
		Expect(ok).To(BeTrue())
		Expect(addr).To(Equal(sqltypes.MustAddress(usdc)))

		_, ok = sqltypes.TransferTopic.Address()
		Expect(ok).To(BeFalse())
	})

	It("reads as a big-endian integer", func() {
		h := sqltypes.MustHash("0x0000000000000000000000000000000000000000000000000000000000000064")
		Expect(h.U256()).To(Equal(sqltypes.NewU256(100)))
	})
})

var _ = Describe("FixedBytes", func() {
	It("decodes a custom width", func() {
		f, err := sqltypes.ParseFixedBytes[w5]("0x68656c6c6f")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(f.Bytes())).To(Equal("hello"))
		Expect(f.Len()).To(Equal(5))
		Expect(f.String()).To(Equal("0x68656c6c6f"))
	})

	It("rejects an invalid digit", func() {
		_, err := sqltypes.ParseFixedBytes[sqltypes.W1]("0xg1")
		Expect(err).To(MatchError(sqltypes.ErrMalformed))
	})

	It("rejects a short body", func() {
		_, err := sqltypes.ParseFixedBytes[sqltypes.W2]("0x01")
		Expect(err).To(MatchError(sqltypes.ErrLengthMismatch))
	})

	It("treats the zero value as all zero bytes", func() {
		parsed := sqltypes.MustFixedBytes[sqltypes.W4]("0x00000000")
		Expect(parsed).To(Equal(sqltypes.FixedBytes[sqltypes.W4]{}))
		Expect(parsed.IsZero()).To(BeTrue())
		Expect(sqltypes.FixedBytes[sqltypes.W4]{}.String()).To(Equal("0x00000000"))
	})

	It("converts from a byte slice of the right length", func() {
		f, err := sqltypes.BytesToFixed[sqltypes.W4]([]byte{0xa9, 0x05, 0x9c, 0xbb})
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(Equal(sqltypes.TransferSelector))

		_, err = sqltypes.BytesToFixed[sqltypes.W4]([]byte{0xa9})
		Expect(err).To(MatchError(sqltypes.ErrLengthMismatch))
	})

	It("orders and converts to an integer", func() {
		a := sqltypes.MustFixedBytes[sqltypes.W2]("0x0001")
		b := sqltypes.MustFixedBytes[sqltypes.W2]("0x0100")
		Expect(a.Cmp(b)).To(Equal(-1))

		u, err := b.U256()
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(Equal(sqltypes.NewU256(256)))
	})
})

var _ = Describe("Bytes", func() {
	It("round trips any even length", func() {
		for _, s := range []string{"0x", "0x00", "0xa9059cbb", "0xdeadbeefcafe"} {
			b, err := sqltypes.ParseBytes(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.String()).To(Equal(s))
			Expect(b.Len()).To(Equal(len(s)/2 - 1))
		}
	})

	It("normalises case", func() {
		b, err := sqltypes.ParseBytes("0XDEADBEEF")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.String()).To(Equal("0xdeadbeef"))
	})

	DescribeTable("rejects malformed input",
		func(input string) {
			_, err := sqltypes.ParseBytes(input)
			Expect(err).To(MatchError(sqltypes.ErrMalformed))
		},
		Entry("empty", ""),
		Entry("no prefix", "dead"),
		Entry("odd digits", "0xabc"),
		Entry("bad digit", "0xzz"),
	)

	It("copies its input", func() {
		raw := []byte{1, 2, 3}
		b := sqltypes.CopyBytes(raw)
		raw[0] = 9
		Expect(b.Equal(sqltypes.Bytes{1, 2, 3})).To(BeTrue())
	})

	It("converts to an integer", func() {
		u, err := sqltypes.MustBytes("0x0000000000000000000000000000000000000000000000000000000000000000000001ff").U256()
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(Equal(sqltypes.NewU256(511)))

		_, err = sqltypes.MustBytes("0x01" + strings.Repeat("00", 32)).U256()
		Expect(err).To(MatchError(sqltypes.ErrOutOfRange))
	})
})
