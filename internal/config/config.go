// Package config loads runtime configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the server needs at startup. Defaults match the
// original deployment: port 5000, a single database file, a 24h session.
type Config struct {
	Port       int           `env:"PORT, default=5000"`
	DBPath     string        `env:"DB_PATH, default=data/faculties.db"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// Seeded administrator account. The admin flag on this account is the
	// only way an account becomes an admin — registration never grants it.
	AdminEmail    string `env:"ADMIN_EMAIL, default=admin@luanda.ao"`
	AdminUsername string `env:"ADMIN_USERNAME, default=Administrador"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=Luanda2026"`
}

// Load reads the configuration from process environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// load with a custom lookuper, for tests.
func loadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
