package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the lowercase hex SHA-256 digest of the UTF-8 bytes of value.
// Callers normalize before hashing; Hash itself never fails.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// NormalizeEmail lowercases the address. No other transformation is applied.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// NormalizePhone strips every non-digit character, so "(11) 99999-9999"
// and "11999999999" hash to the same value.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeName lowercases a first or last name.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}
