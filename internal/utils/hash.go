package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashToken returns the hex-encoded BLAKE2b-256 digest of a bearer token.
//
// Only the digest is persisted. Tokens are random 122-bit values, so no
// salt is applied.
//
// Example usage:
//
//	digest := utils.HashToken(token) // 64 hex characters
func HashToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
