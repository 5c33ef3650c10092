package middlewares

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/andymarkow/go-hmac-signer/internal/errormsg"
	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

// HashSumValidator is a router middleware that validates the hash sum of the request body.
//
// The middleware expects the hash sum to be passed in the "HashSHA256" header
// as a hex-encoded string. The hash sum is calculated with the HMAC-SHA256
// algorithm and the configured sign key.
//
// If the header is missing, undecodable or the hash sum does not match, the
// middleware returns a 400 status code.
func (m *Middlewares) HashSumValidator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			m.log.Error("read body", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
		defer func() {
			if err := r.Body.Close(); err != nil {
				m.log.Error("failed to close request body", zap.Error(err))
			}
		}()

		r.Body = io.NopCloser(bytes.NewBuffer(body))

		headerHashSum := r.Header.Get("HashSHA256") //nolint:canonicalheader,nolintlint
		if headerHashSum == "" {
			m.log.Debug("hash sum header is missing")
			http.Error(w, errormsg.ErrHashSumHeaderMissing.Error(), http.StatusBadRequest)

			return
		}

		signHeader, err := signature.DecodeHashSum(headerHashSum)
		if err != nil {
			m.log.Error("decode signature", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		m.log.Debug("body payload provided signature", zap.String("hashsum", headerHashSum))

		if err := signature.ValidateHashSum(m.signKey, body, signHeader); err != nil {
			if errors.Is(err, errormsg.ErrHashSumValueMismatch) {
				m.log.Error("signature mismatch", zap.Error(err))
				http.Error(w, err.Error(), http.StatusBadRequest)

				return
			}

			m.log.Error("validate signature", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		next.ServeHTTP(w, r)
	})
}
