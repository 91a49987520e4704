package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port          string `envconfig:"PORT" default:"3000"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD"`
	DBName        string `envconfig:"DB_NAME" default:"ops_erp"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	SessionCookie string `envconfig:"SESSION_COOKIE" default:"session_token"`
	SignInPath    string `envconfig:"SIGNIN_PATH" default:"/signin"`
	LogJSON       bool   `envconfig:"LOG_JSON" default:"false"`
}

// Load parses the environment into a Config. Call godotenv.Load first if a
// .env file should be honored.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
