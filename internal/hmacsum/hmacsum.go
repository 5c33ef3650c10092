// Package hmacsum provides a one-shot HMAC-SHA256 hash sum calculator app.
package hmacsum

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/andymarkow/go-hmac-signer/internal/errormsg"
	"github.com/andymarkow/go-hmac-signer/internal/logger"
	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

// App is the hmacsum command line application.
type App struct {
	log *zap.Logger
	cfg config
}

// NewApp creates a new hmacsum app instance.
func NewApp() (*App, error) {
	cfg, err := newConfig()
	if err != nil {
		return nil, fmt.Errorf("newConfig: %w", err)
	}

	log, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger.NewZapLogger: %w", err)
	}

	return &App{
		log: log,
		cfg: cfg,
	}, nil
}

// Run calculates the hash sum of the input and prints it to stdout.
//
// If a verify hash sum is configured, it is compared with the calculated one
// instead and errormsg.ErrHashSumValueMismatch is returned on mismatch.
func (a *App) Run() error {
	input := os.Stdin

	if a.cfg.InputFile != "" {
		f, err := os.Open(a.cfg.InputFile)
		if err != nil {
			return fmt.Errorf("os.Open: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				a.log.Error("failed to close input file", zap.Error(err))
			}
		}()

		input = f
	}

	sum, err := a.sumReader(input)
	if err != nil {
		return fmt.Errorf("sumReader: %w", err)
	}

	sumHex := hex.EncodeToString(sum)

	if a.cfg.VerifySum != "" {
		verifySum, err := signature.DecodeHashSum(a.cfg.VerifySum)
		if err != nil {
			return fmt.Errorf("signature.DecodeHashSum: %w", err)
		}

		if !hmac.Equal(sum, verifySum) {
			a.log.Error("hash sum mismatch",
				zap.String("calculated", sumHex),
				zap.String("expected", a.cfg.VerifySum),
			)

			return errormsg.ErrHashSumValueMismatch
		}

		fmt.Fprintln(os.Stdout, "OK")

		return nil
	}

	fmt.Fprintln(os.Stdout, sumHex)

	return nil
}

// sumReader streams the reader contents through a keyed hasher.
func (a *App) sumReader(r io.Reader) ([]byte, error) {
	h := signature.NewHasher([]byte(a.cfg.SignKey))

	n, err := io.Copy(h, r)
	if err != nil {
		return nil, fmt.Errorf("io.Copy: %w", err)
	}

	a.log.Debug("payload absorbed",
		zap.Int("key_size", len(a.cfg.SignKey)),
		zap.Int64("payload_size", n),
	)

	return h.Sum(), nil
}
