package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBDSN     string
	JWTSecret string
	TokenTTL  time.Duration
	Seed      bool
}

// Load reads the process configuration. A missing .env file is fine; a
// missing JWT_SECRET is not, since every issued token depends on it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:      getenv("PORT", "8080"),
		DBDriver:  getenv("DB_DRIVER", "sqlite"),
		DBDSN:     getenv("DB_DSN", "store.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Hour,
		Seed:      os.Getenv("SEED") == "true",
	}

	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
