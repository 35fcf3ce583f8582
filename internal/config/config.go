// Package config содержит логику чтения конфигурации сервиса витрины.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config содержит параметры конфигурации сервиса витрины.
type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseURI   string        `env:"DATABASE_URI"`
	RedisURL      string        `env:"REDIS_URL"`
	ExchangeRate  string        `env:"EXCHANGE_RATE"`
	WhatsAppPhone string        `env:"WHATSAPP_PHONE"`
	SessionSecret string        `env:"SESSION_SECRET"`
	CartTTL       time.Duration `env:"CART_TTL" envDefault:"168h"`

	// Rate содержит разобранный курс доллара к боливару. Курс задаётся только
	// конфигурацией, пути обновления в рантайме нет.
	Rate decimal.Decimal
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envRedisURL := cfg.RedisURL
	envExchangeRate := cfg.ExchangeRate
	envWhatsAppPhone := cfg.WhatsAppPhone
	envSessionSecret := cfg.SessionSecret

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI for the product catalog")
	flag.StringVar(&cfg.RedisURL, "c", "", "redis URL for the session cart store")
	flag.StringVar(&cfg.ExchangeRate, "e", "36.50", "USD to Bs exchange rate")
	flag.StringVar(&cfg.WhatsAppPhone, "w", "14424474116", "WhatsApp recipient phone")
	flag.StringVar(&cfg.SessionSecret, "s", "", "secret key for session cookies")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envRedisURL != "" {
		cfg.RedisURL = envRedisURL
	}
	if envExchangeRate != "" {
		cfg.ExchangeRate = envExchangeRate
	}
	if envWhatsAppPhone != "" {
		cfg.WhatsAppPhone = envWhatsAppPhone
	}
	if envSessionSecret != "" {
		cfg.SessionSecret = envSessionSecret
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	rate, err := decimal.NewFromString(cfg.ExchangeRate)
	if err != nil {
		return nil, fmt.Errorf("parse exchange rate: %w", err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("exchange rate must be positive, got %s", cfg.ExchangeRate)
	}
	cfg.Rate = rate

	return cfg, nil
}
