package token

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var deleteTokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NewDeleteToken returns a fresh delete token: 16 random bytes from the
// crypto source, hex encoded to 32 lowercase characters. Collisions are not
// deduplicated; the keyspace makes them negligible.
func NewDeleteToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// ValidDeleteToken reports whether s has the shape of a token this service
// mints. Every issued token passes this check, so anything that fails it
// cannot name a record.
func ValidDeleteToken(s string) bool {
	return deleteTokenPattern.MatchString(s)
}
