package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultStoreName = "The Home of Original"
	defaultCurrency  = "P"
)

type Config struct {
	AppEnv    string
	StoreName string
	Currency  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    os.Getenv("APP_ENV"),
		StoreName: os.Getenv("STORE_NAME"),
		Currency:  os.Getenv("CURRENCY"),
	}

	// Nothing here is required; fall back to the shop's defaults.
	if cfg.StoreName == "" {
		cfg.StoreName = defaultStoreName
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}

	return cfg
}
