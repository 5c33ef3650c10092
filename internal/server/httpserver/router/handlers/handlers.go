// Package handlers provides HTTP handlers.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

// Handlers is a collection of router handlers.
type Handlers struct {
	log    *zap.Logger
	signer *signature.Signer
}

// NewHandlers returns a new Handlers instance.
func NewHandlers(signer *signature.Signer, opts ...Option) *Handlers {
	handlers := &Handlers{
		signer: signer,
		log:    zap.NewNop(),
	}

	// Apply options
	for _, opt := range opts {
		opt(handlers)
	}

	return handlers
}

// Option is a functional option type for Handlers.
type Option func(h *Handlers)

// WithLogger is an option for Handlers instance that sets logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handlers) {
		h.log = logger
	}
}

// Ping handles ping request.
func (h *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	h.checkRespError(w.Write([]byte("OK")))
}

// Sign handles payload sign request.
//
// The request body is the raw payload. The response body is the hex-encoded
// HMAC-SHA256 hash sum of the payload, which is also set in the "HashSHA256"
// response header. An empty body is a valid payload.
func (h *Handlers) Sign(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		h.handleError(w, err, http.StatusInternalServerError)

		return
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			h.log.Error("failed to close request body", zap.Error(err))
		}
	}()

	sumHex, err := h.signer.SumHex(payload)
	if err != nil {
		h.handleError(w, err, http.StatusInternalServerError)

		return
	}

	h.log.Debug("payload signed",
		zap.Int("payload_size", len(payload)),
		zap.String("hashsum", sumHex),
	)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("HashSHA256", sumHex) //nolint:canonicalheader,nolintlint
	w.WriteHeader(http.StatusOK)
	h.checkRespError(w.Write([]byte(sumHex)))
}

// Verify handles payload verify request.
//
// The hash sum validation is performed by the HashSumValidator middleware:
// requests reaching this handler carry a valid hash sum.
func (h *Handlers) Verify(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	h.checkRespError(w.Write([]byte("OK")))
}

func (h *Handlers) checkRespError(_ int, err error) {
	if err != nil {
		h.log.Error("failed to write response", zap.Error(err))
	}
}

// handleError handles error response.
func (h *Handlers) handleError(
	w http.ResponseWriter, err error, statusCode int,
) {
	h.log.Error(err.Error())
	http.Error(w, err.Error(), statusCode)
}
