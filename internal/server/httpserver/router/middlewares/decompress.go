package middlewares

import (
	"compress/gzip"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Decompress is a router middleware that transparently decompresses request
// bodies sent with "Content-Encoding: gzip".
func (m *Middlewares) Decompress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)

			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			m.log.Error("gzip.NewReader", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		defer func() {
			if err := zr.Close(); err != nil {
				m.log.Error("failed to close gzip reader", zap.Error(err))
			}
		}()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}
