package server

import (
	"flag"
	"fmt"
	"net"

	"github.com/caarlos0/env"
)

type config struct {
	ServerAddr    string `env:"ADDRESS"`
	LogLevel      string `env:"LOG_LEVEL"`
	SignKey       string `env:"KEY"`
	TrustedSubnet string `env:"TRUSTED_SUBNET"`
}

func newConfig() (config, error) {
	cfg := config{}

	flag.StringVar(&cfg.ServerAddr, "a", "localhost:8080", "server listening address [env:ADDRESS]")
	flag.StringVar(&cfg.LogLevel, "l", "info", "log output level [env:LOG_LEVEL]")
	flag.StringVar(&cfg.SignKey, "k", "", "payload sign key [env:KEY]")
	flag.StringVar(&cfg.TrustedSubnet, "t", "", "trusted subnet in CIDR notation [env:TRUSTED_SUBNET]")
	flag.Parse()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("env.Parse: %w", err)
	}

	return cfg, nil
}

// parseTrustedSubnet parses the trusted subnet CIDR. Empty input means no
// whitelist and returns nil.
func parseTrustedSubnet(cidr string) (*net.IPNet, error) {
	if cidr == "" {
		return nil, nil //nolint:nilnil
	}

	_, subnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("net.ParseCIDR: %w", err)
	}

	return subnet, nil
}
