// Package signclient provides a client for the payload signing service.
package signclient

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/andymarkow/go-hmac-signer/internal/errormsg"
	"github.com/andymarkow/go-hmac-signer/internal/httpclient"
	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

// SignClient is a client of the payload signing service.
type SignClient struct {
	log         *zap.Logger
	client      *httpclient.HTTPClient
	rateLimiter *rate.Limiter
}

// NewSignClient returns a new sign client.
func NewSignClient(opts ...Option) *SignClient {
	sc := &SignClient{
		log:         zap.NewNop(),
		client:      httpclient.NewHTTPClient(),
		rateLimiter: rate.NewLimiter(rate.Limit(10), 10),
	}

	for _, opt := range opts {
		opt(sc)
	}

	return sc
}

// Option represents a sign client option.
type Option func(c *SignClient)

// WithLogger sets the logger for the sign client.
func WithLogger(log *zap.Logger) Option {
	return func(c *SignClient) {
		c.log = log
	}
}

// WithServerAddr sets the server address for the sign client.
func WithServerAddr(addr string) Option {
	return func(c *SignClient) {
		c.client.SetBaseURL(addr)
	}
}

// WithRateLimiter sets the rate limiter for the sign client.
func WithRateLimiter(rateLimiter *rate.Limiter) Option {
	return func(c *SignClient) {
		c.rateLimiter = rateLimiter
	}
}

// Sign sends the payload to the signing service and returns the hex-encoded
// hash sum calculated by the service.
func (c *SignClient) Sign(ctx context.Context, payload []byte) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rateLimiter.Wait: %w", err)
	}

	// Compress payload data with gzip compression method.
	body, err := compressDataGzip(payload)
	if err != nil {
		return "", fmt.Errorf("failed to compress payload data with gzip: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Content-Encoding", "gzip").
		SetBody(body).
		Post("/api/v1/sign")
	if err != nil {
		return "", fmt.Errorf("client.PostRequest: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("failed to sign payload: %d - %s", resp.StatusCode(), resp.String())
	}

	sumHex := resp.String()

	if _, err := signature.DecodeHashSum(sumHex); err != nil {
		return "", fmt.Errorf("signature.DecodeHashSum: %w", err)
	}

	c.log.Debug("payload signed",
		zap.Int("payload_size", len(payload)),
		zap.String("hashsum", sumHex),
	)

	return sumHex, nil
}

// Verify asks the signing service to authenticate the payload against the
// given hex-encoded hash sum.
//
// Returns errormsg.ErrHashSumValueMismatch if the service rejects the hash sum.
func (c *SignClient) Verify(ctx context.Context, payload []byte, sumHex string) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rateLimiter.Wait: %w", err)
	}

	body, err := compressDataGzip(payload)
	if err != nil {
		return fmt.Errorf("failed to compress payload data with gzip: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Content-Encoding", "gzip").
		SetHeader("HashSHA256", sumHex).
		SetBody(body).
		Post("/api/v1/verify")
	if err != nil {
		return fmt.Errorf("client.PostRequest: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return nil

	case http.StatusBadRequest:
		return errormsg.ErrHashSumValueMismatch

	default:
		return fmt.Errorf("failed to verify payload: %d - %s", resp.StatusCode(), resp.String())
	}
}

// compressDataGzip compresses the given data using gzip.
func compressDataGzip(data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	zbuf := gzip.NewWriter(buf)

	if _, err := zbuf.Write(data); err != nil {
		return nil, fmt.Errorf("zbuf.Write: %w", err)
	}

	if err := zbuf.Close(); err != nil {
		return nil, fmt.Errorf("zbuf.Close: %w", err)
	}

	return buf.Bytes(), nil
}
