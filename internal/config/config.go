// Package config содержит логику чтения конфигурации системы бронирования.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultUPIAddress — адрес получателя платежа по умолчанию.
const DefaultUPIAddress = "abc@hdfcbank"

// Config содержит параметры конфигурации системы бронирования.
type Config struct {
	UPIAddress string `env:"UPI_ADDRESS"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения; переменные окружения имеют приоритет.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envUPIAddress := cfg.UPIAddress

	flag.StringVar(&cfg.UPIAddress, "u", DefaultUPIAddress, "UPI address for payment instructions")

	flag.Parse()

	if envUPIAddress != "" {
		cfg.UPIAddress = envUPIAddress
	}

	if cfg.UPIAddress == "" {
		cfg.UPIAddress = DefaultUPIAddress
	}

	return cfg, nil
}
