package errormsg

import "errors"

var (
	ErrHashSumValueMismatch   = errors.New("hash sum value mismatch")
	ErrHashSumHeaderMissing   = errors.New("hash sum header is missing")
	ErrHashSumInvalidLength   = errors.New("invalid hash sum length")
	ErrHashSumInvalidEncoding = errors.New("hash sum is not a valid hex string")
)
