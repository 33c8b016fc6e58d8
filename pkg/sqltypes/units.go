package sqltypes

import (
	"errors"
	"strings"
)

// EtherDecimals is the number of wei decimals in one ether.
const EtherDecimals = 18

// ParseUnits converts a decimal amount such as "1.5" into base units with
// the given number of decimals. More fraction digits than decimals is out of
// range rather than silently rounded.
func ParseUnits(s string, decimals uint8) (U256, error) {
	whole, frac, hasDot := strings.Cut(s, ".")
	if !isDecimal(whole) || hasDot && !isDecimal(frac) {
		return U256{}, parseErr("units", s, ErrMalformed)
	}
	if len(frac) > int(decimals) {
		return U256{}, parseErr("units", s, ErrOutOfRange)
	}

	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	u, err := ParseU256(digits)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return U256{}, parseErr("units", s, pe.Err)
		}
		return U256{}, err
	}
	return u, nil
}

// FormatUnits renders u with exactly decimals fraction digits, so
// FormatUnits(1230000, 6) is "1.230000".
func FormatUnits(u U256, decimals uint8) string {
	d := u.Dec()
	if decimals == 0 {
		return d
	}
	n := int(decimals)
	if len(d) <= n {
		d = strings.Repeat("0", n-len(d)+1) + d
	}
	return d[:len(d)-n] + "." + d[len(d)-n:]
}

func ParseEther(s string) (U256, error) {
	return ParseUnits(s, EtherDecimals)
}

func FormatEther(u U256) string {
	return FormatUnits(u, EtherDecimals)
}
