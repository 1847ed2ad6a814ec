// Package config содержит логику чтения конфигурации сервиса дашборда.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса дашборда.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	StoreFile   string `env:"STORE_FILE"`
	UnreadClamp bool   `env:"UNREAD_CLAMP"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envStoreFile := cfg.StoreFile
	envUnreadClamp := cfg.UnreadClamp
	envUnreadClampSet := os.Getenv("UNREAD_CLAMP") != ""

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.StoreFile, "f", "dashboard-store.json", "path to the snapshot file")
	flag.BoolVar(&cfg.UnreadClamp, "c", false, "clamp unread counters at zero")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envStoreFile != "" {
		cfg.StoreFile = envStoreFile
	}
	if envUnreadClampSet {
		cfg.UnreadClamp = envUnreadClamp
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.StoreFile == "" {
		cfg.StoreFile = "dashboard-store.json"
	}

	return cfg, nil
}
