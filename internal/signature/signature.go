// Package signature provides functions to calculate and validate
// HMAC-SHA256 hash sums with a key.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/andymarkow/go-hmac-signer/internal/errormsg"
)

// Size is the size of a hash sum in bytes.
const Size = sha256.Size

// CalculateHashSum calculates HMAC-SHA256 hash sum of the payload with a key.
//
// The key and the payload may be of any length, including empty. On success
// the returned hash sum is always exactly Size bytes long.
func CalculateHashSum(key, payload []byte) ([]byte, error) {
	h := hmac.New(sha256.New, key)

	if _, err := h.Write(payload); err != nil {
		return nil, fmt.Errorf("hmac.Write: %w", err)
	}

	return h.Sum(nil), nil
}

// CalculateHashSumHex calculates HMAC-SHA256 hash sum of the payload with a key
// and returns it as a hex-encoded string.
func CalculateHashSumHex(key, payload []byte) (string, error) {
	sum, err := CalculateHashSum(key, payload)
	if err != nil {
		return "", fmt.Errorf("CalculateHashSum: %w", err)
	}

	return hex.EncodeToString(sum), nil
}

// ValidateHashSum calculates the hash sum of the payload with a key and
// compares it with the given hash sum in constant time.
//
// Returns errormsg.ErrHashSumValueMismatch if the hash sums do not match.
func ValidateHashSum(key, payload, sum []byte) error {
	calcSum, err := CalculateHashSum(key, payload)
	if err != nil {
		return fmt.Errorf("CalculateHashSum: %w", err)
	}

	if !hmac.Equal(calcSum, sum) {
		return errormsg.ErrHashSumValueMismatch
	}

	return nil
}

// DecodeHashSum decodes a hex-encoded hash sum and validates its length.
func DecodeHashSum(sumHex string) ([]byte, error) {
	sum, err := hex.DecodeString(sumHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errormsg.ErrHashSumInvalidEncoding, err)
	}

	if len(sum) != Size {
		return nil, errormsg.ErrHashSumInvalidLength
	}

	return sum, nil
}
