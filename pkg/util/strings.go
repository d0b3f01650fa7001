package util

import (
	"regexp"
	"strconv"
	"strings"
)

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// NormalizeAddress lowercases and trims an address for comparisons.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// IsHexAddress reports whether s looks like a valid Ethereum address.
func IsHexAddress(s string) bool {
	return addressPattern.MatchString(strings.TrimSpace(s))
}

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
