package util

import (
	"math/big"
	"strconv"
	"strings"
)

var weiPerETH = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// WeiToETH converts a wei amount given as a decimal or 0x-hex string
// to ETH. Values are parsed as big integers first so amounts above
// 2^53 wei do not lose precision before the division. Malformed input
// returns 0.
func WeiToETH(s string) float64 {
	i, ok := ParseBigInt(s)
	if !ok {
		return 0
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(i), weiPerETH).Float64()
	return f
}

// ParseBigInt parses a decimal or 0x-prefixed hex integer string.
func ParseBigInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		i, ok := new(big.Int).SetString(s[2:], 16)
		return i, ok
	}
	i, ok := new(big.Int).SetString(s, 10)
	return i, ok
}

// ParseInt64 parses a decimal or 0x-hex string into int64, returning 0
// for malformed or out-of-range input.
func ParseInt64(s string) int64 {
	i, ok := ParseBigInt(s)
	if !ok || !i.IsInt64() {
		return 0
	}
	return i.Int64()
}

// ParseUnixSeconds parses a unix-seconds timestamp string; invalid or
// non-positive values return 0.
func ParseUnixSeconds(s string) int64 {
	ts, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || ts <= 0 {
		return 0
	}
	return ts
}
