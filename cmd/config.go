package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// MinimumTariff floors every final tariff.
	MinimumTariff string `env:"MINIMUM_TARIFF" envDefault:"10000"`
	// ReconcileSchedule is a six-field cron expression, seconds first.
	ReconcileSchedule string `env:"RECONCILE_SCHEDULE" envDefault:"*/30 * * * * *"`
}

// LoadConfig reads the given .env files into the process environment, then
// parses Config from it. Missing files are skipped; variables already set in
// the environment win over file values.
func LoadConfig(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.Minimum(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Minimum parses MinimumTariff as money.
func (c Config) Minimum() (kernel.Money, error) {
	amount, err := decimal.NewFromString(c.MinimumTariff)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("MINIMUM_TARIFF", err)
	}
	return kernel.NewMoney(amount)
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
