package datastore

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHasher fingerprints document contents for the history table.
type ContentHasher struct {
	hashLength int
}

// NewContentHasher creates a hasher producing hex digests of hashLength characters.
func NewContentHasher(hashLength int) *ContentHasher {
	if hashLength <= 0 || hashLength > 64 {
		hashLength = 16
	}
	return &ContentHasher{
		hashLength: hashLength,
	}
}

// Hash returns the truncated sha256 hex digest of content.
func (h *ContentHasher) Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])[:h.hashLength]
}
