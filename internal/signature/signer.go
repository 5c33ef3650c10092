package signature

import (
	"fmt"

	"go.uber.org/zap"
)

// Signer is a key-bound hash sum calculator with optional debug logging.
//
// Diagnostics are observability-only: they report input sizes and
// success/failure and never affect the calculated hash sums.
type Signer struct {
	log *zap.Logger
	key []byte
}

// NewSigner creates a new Signer with the given sign key.
func NewSigner(key []byte, opts ...SignerOption) *Signer {
	s := &Signer{
		log: zap.NewNop(),
		key: key,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SignerOption is a Signer option.
type SignerOption func(s *Signer)

// WithSignerLogger is a Signer option that sets logger.
func WithSignerLogger(log *zap.Logger) SignerOption {
	return func(s *Signer) {
		s.log = log
	}
}

// Sum calculates the hash sum of the payload with the signer key.
func (s *Signer) Sum(payload []byte) ([]byte, error) {
	s.log.Debug("calculating hash sum",
		zap.Int("key_size", len(s.key)),
		zap.Int("payload_size", len(payload)),
	)

	sum, err := CalculateHashSum(s.key, payload)
	if err != nil {
		s.log.Debug("hash sum calculation failed", zap.Error(err))

		return nil, fmt.Errorf("CalculateHashSum: %w", err)
	}

	s.log.Debug("hash sum calculated", zap.Int("sum_size", len(sum)))

	return sum, nil
}

// SumHex calculates the hash sum of the payload and returns it hex-encoded.
func (s *Signer) SumHex(payload []byte) (string, error) {
	sum, err := s.Sum(payload)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", sum), nil
}

// Validate compares the given hash sum with the calculated hash sum of the
// payload in constant time.
func (s *Signer) Validate(payload, sum []byte) error {
	return ValidateHashSum(s.key, payload, sum)
}
