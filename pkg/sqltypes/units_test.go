package sqltypes_test

import (
	"ethsql/pkg/sqltypes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Units", func() {
	DescribeTable("ParseUnits",
		func(input string, decimals uint8, want string) {
			u, err := sqltypes.ParseUnits(input, decimals)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Dec()).To(Equal(want))
		},
		Entry("whole", "2", uint8(6), "2000000"),
		Entry("fraction", "1.23", uint8(6), "1230000"),
		Entry("full precision", "0.000001", uint8(6), "1"),
		Entry("no decimals", "42", uint8(0), "42"),
		Entry("one ether", "1", uint8(18), "1000000000000000000"),
	)

	DescribeTable("ParseUnits rejects",
		func(input string, decimals uint8, kind error) {
			_, err := sqltypes.ParseUnits(input, decimals)
			Expect(err).To(MatchError(kind))
		},
		Entry("empty", "", uint8(6), sqltypes.ErrMalformed),
		Entry("trailing dot", "1.", uint8(6), sqltypes.ErrMalformed),
		Entry("leading dot", ".5", uint8(6), sqltypes.ErrMalformed),
		Entry("hex", "0x10", uint8(6), sqltypes.ErrMalformed),
		Entry("negative", "-1", uint8(6), sqltypes.ErrMalformed),
		Entry("too precise", "1.0000001", uint8(6), sqltypes.ErrOutOfRange),
		Entry("too large", "1"+"000000000000000000000000000000000000000000000000000000000000000000000000000000", uint8(18), sqltypes.ErrOutOfRange),
	)

	DescribeTable("FormatUnits",
		func(value uint64, decimals uint8, want string) {
			Expect(sqltypes.FormatUnits(sqltypes.NewU256(value), decimals)).To(Equal(want))
		},
		Entry("pads the fraction", uint64(1230000), uint8(6), "1.230000"),
		Entry("below one", uint64(1), uint8(6), "0.000001"),
		Entry("zero", uint64(0), uint8(6), "0.000000"),
		Entry("no decimals", uint64(42), uint8(0), "42"),
	)

	It("round trips ether amounts", func() {
		wei, err := sqltypes.ParseEther("1.5")
		Expect(err).NotTo(HaveOccurred())
		Expect(wei).To(Equal(sqltypes.NewU256(1500000000000000000)))
		Expect(sqltypes.FormatEther(wei)).To(Equal("1.500000000000000000"))
	})
})
