package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"hash"
)

// Hasher is a streaming HMAC-SHA256 hash sum calculator.
//
// A Hasher absorbs payload bytes incrementally via Write and produces the
// final hash sum via Sum. Each Hasher holds its own private state, so
// independent Hashers may be used concurrently without coordination.
type Hasher struct {
	mac hash.Hash
}

// NewHasher creates a new Hasher keyed with the given key.
func NewHasher(key []byte) *Hasher {
	return &Hasher{
		mac: hmac.New(sha256.New, key),
	}
}

// Write absorbs the next chunk of the payload. Implements io.Writer.
func (h *Hasher) Write(p []byte) (int, error) {
	n, err := h.mac.Write(p)
	if err != nil {
		return n, fmt.Errorf("hmac.Write: %w", err)
	}

	return n, nil
}

// Sum finalizes the calculation and returns the hash sum.
//
// The hasher state is not consumed: Sum may be called again after further
// writes to get the hash sum of the longer payload.
func (h *Hasher) Sum() []byte {
	return h.mac.Sum(nil)
}
