package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Shipped fallbacks. Convenient for local development, dangerous anywhere
// else; Validate refuses to run production with any of them in place.
const (
	DefaultSecretKey     = "labsite_dev_secret_change_me"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Config is built once at process start and passed into the handler layer.
// Nothing reads the environment after Load returns.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBPath      string `env:"DB_PATH" envDefault:"data/labsite.db"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// SecretKey signs session tokens.
	SecretKey string `env:"SECRET_KEY" envDefault:"labsite_dev_secret_change_me"`

	// AdminUsername and AdminPassword form the super-admin pair. The
	// super-admin identity is never stored in the database.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (cfg Config) Production() bool {
	return strings.EqualFold(strings.TrimSpace(cfg.Environment), "production")
}

// InsecureDefaults lists every secret still set to its shipped fallback.
func (cfg Config) InsecureDefaults() []string {
	var warnings []string
	if cfg.SecretKey == DefaultSecretKey {
		warnings = append(warnings, "SECRET_KEY is the built-in development value; session tokens are forgeable")
	}
	if cfg.AdminPassword == DefaultAdminPassword {
		warnings = append(warnings, "ADMIN_PASSWORD is the built-in default; the super-admin account is open")
	}
	return warnings
}

// Validate fails fast when a production process still carries default
// secrets. Development keeps running so the warnings can be logged instead.
func (cfg Config) Validate() error {
	if !cfg.Production() {
		return nil
	}
	if warnings := cfg.InsecureDefaults(); len(warnings) > 0 {
		return fmt.Errorf("refusing to start in production: %s", strings.Join(warnings, "; "))
	}
	return nil
}
