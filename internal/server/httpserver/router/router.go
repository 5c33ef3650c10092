// Package router provides HTTP server router.
package router

import (
	"net"
	_ "net/http/pprof" //nolint:gosec // Enable pprof debugger

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andymarkow/go-hmac-signer/internal/server/httpserver/router/handlers"
	"github.com/andymarkow/go-hmac-signer/internal/server/httpserver/router/middlewares"
	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

type config struct {
	logger        *zap.Logger
	trustedSubnet *net.IPNet
	signKey       []byte
}

// NewRouter creates a new router for the payload signing service.
func NewRouter(opts ...Option) *chi.Mux {
	cfg := &config{
		logger:  zap.NewNop(),
		signKey: make([]byte, 0),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	signer := signature.NewSigner(cfg.signKey, signature.WithSignerLogger(cfg.logger))

	h := handlers.NewHandlers(signer, handlers.WithLogger(cfg.logger))

	r := chi.NewRouter()

	mw := middlewares.New(
		middlewares.WithLogger(cfg.logger),
		middlewares.WithSignKey(cfg.signKey),
		middlewares.WithTrustedSubnet(cfg.trustedSubnet),
	)

	r.Use(
		middleware.Recoverer,
		middleware.StripSlashes,
		mw.Logger,
		mw.Whitelist,
	)

	r.Mount("/debug", middleware.Profiler())

	r.Get("/ping", h.Ping)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Decompress)

		r.Post("/sign", h.Sign)
		r.With(mw.HashSumValidator).Post("/verify", h.Verify)
	})

	return r
}

// Option is a router option.
type Option func(c *config)

// WithLogger is a router option that sets logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSignKey is a router option that sets sign key.
func WithSignKey(signKey []byte) Option {
	return func(c *config) {
		c.signKey = signKey
	}
}

// WithTrustedSubnet is a router option that sets trusted subnet.
func WithTrustedSubnet(subnet *net.IPNet) Option {
	return func(c *config) {
		c.trustedSubnet = subnet
	}
}
