package sqltypes

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func cutHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return s, false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// decodeFixed decodes a prefixed hex string holding exactly n bytes.
func decodeFixed(typ, s string, n int) ([]byte, error) {
	body, ok := cutHexPrefix(s)
	if !ok || !isHex(body) {
		return nil, parseErr(typ, s, ErrMalformed)
	}
	if len(body) != 2*n {
		return nil, parseErr(typ, s, ErrLengthMismatch)
	}
	if n == 0 {
		return []byte{}, nil
	}
	b, err := hexutil.Decode("0x" + body)
	if err != nil {
		return nil, parseErr(typ, s, ErrMalformed)
	}
	return b, nil
}

func encodeHex(b []byte) string {
	return hexutil.Encode(b)
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
