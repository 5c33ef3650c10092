// Package server provides the payload signing service assembly.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andymarkow/go-hmac-signer/internal/logger"
	"github.com/andymarkow/go-hmac-signer/internal/server/httpserver"
	"github.com/andymarkow/go-hmac-signer/internal/server/httpserver/router"
)

const shutdownTimeout = 10 * time.Second

// Server is the payload signing service.
type Server struct {
	log *zap.Logger
	srv *httpserver.HTTPServer
}

// NewServer creates a new payload signing service instance.
func NewServer() (*Server, error) {
	cfg, err := newConfig()
	if err != nil {
		return nil, fmt.Errorf("newConfig: %w", err)
	}

	log, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger.NewZapLogger: %w", err)
	}

	trustedSubnet, err := parseTrustedSubnet(cfg.TrustedSubnet)
	if err != nil {
		return nil, fmt.Errorf("parseTrustedSubnet: %w", err)
	}

	if cfg.SignKey == "" {
		log.Warn("Sign key is not set, signing with an empty key")
	}

	r := router.NewRouter(
		router.WithLogger(log),
		router.WithSignKey([]byte(cfg.SignKey)),
		router.WithTrustedSubnet(trustedSubnet),
	)

	srv := httpserver.NewHTTPServer(r,
		httpserver.WithServerAddr(cfg.ServerAddr),
		httpserver.WithLogger(log),
	)

	return &Server{
		log: log,
		srv: srv,
	}, nil
}

// Start starts the payload signing service and blocks until it is stopped by
// a SIGINT/SIGTERM signal or a server failure.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errgrp, grpCtx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		if err := s.srv.Start(); err != nil {
			return fmt.Errorf("srv.Start: %w", err)
		}

		return nil
	})

	errgrp.Go(func() error {
		<-grpCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck
			return fmt.Errorf("srv.Shutdown: %w", err)
		}

		return nil
	})

	if err := errgrp.Wait(); err != nil {
		return fmt.Errorf("errgrp.Wait: %w", err)
	}

	s.log.Info("Server stopped")

	return nil
}
