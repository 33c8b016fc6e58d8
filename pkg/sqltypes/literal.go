package sqltypes

// The Must constructors are meant for package-level literals. An invalid
// literal panics while the package initialises, so a typo stops the process
// at startup instead of surfacing at first use.

func MustU256(s string) U256 {
	return must(ParseU256(s))
}

func MustUint[B Bits](s string) Uint[B] {
	return must(ParseUint[B](s))
}

func MustAddress(s string) Address {
	return must(ParseAddress(s))
}

func MustHash(s string) Hash {
	return must(ParseHash(s))
}

func MustFixedBytes[W Width](s string) FixedBytes[W] {
	return must(ParseFixedBytes[W](s))
}

func MustBytes(s string) Bytes {
	return must(ParseBytes(s))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var (
	// TransferTopic is the ERC-20 Transfer(address,address,uint256) event topic.
	TransferTopic = MustHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

	// TransferSelector is the ERC-20 transfer(address,uint256) selector.
	TransferSelector = MustFixedBytes[W4]("0xa9059cbb")
)
