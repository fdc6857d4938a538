package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashOpaqueToken generates a SHA256 hash of an opaque token (refresh or
// password-reset token). Only the hash is stored server-side.
func HashOpaqueToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareOpaqueTokenHash compares a plain token with its stored SHA256 hash.
// The `token` parameter here is the raw token string, not a hash.
func CompareOpaqueTokenHash(token string, storedHash string) bool {
	return HashOpaqueToken(token) == storedHash
}
