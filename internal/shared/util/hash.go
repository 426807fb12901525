package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashUserKey returns a filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashCanonical returns the hex sha256 of the canonical JSON encoding of v.
// Struct fields encode in declaration order, so equal values hash equal;
// used for cache keys derived from request payloads.
func HashCanonical(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
