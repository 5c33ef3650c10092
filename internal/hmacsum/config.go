package hmacsum

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env"
)

type config struct {
	SignKey   string `env:"KEY"`
	LogLevel  string `env:"LOG_LEVEL"`
	InputFile string `env:"INPUT_FILE"`
	VerifySum string `env:"VERIFY_SUM"`
}

func newConfig() (config, error) {
	cfg := config{}

	flag.StringVar(&cfg.SignKey, "k", "", "payload sign key [env:KEY]")
	flag.StringVar(&cfg.LogLevel, "l", "error", "log output level [env:LOG_LEVEL]")
	flag.StringVar(&cfg.InputFile, "f", "", "input file, reads stdin if not set [env:INPUT_FILE]")
	flag.StringVar(&cfg.VerifySum, "v", "", "hex-encoded hash sum to verify against [env:VERIFY_SUM]")
	flag.Parse()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("env.Parse: %w", err)
	}

	return cfg, nil
}
