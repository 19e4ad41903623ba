package config

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	Addr            string
	LogLevel        string
	TokenTTLSeconds int
	SeedDays        int
	SeedUsers       int
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:             getEnv("APP_ENV", "development"),
			Addr:            getEnv("LISTEN_ADDR", ":8080"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			TokenTTLSeconds: getEnvInt("TOKEN_TTL_SECONDS", 3600),
			SeedDays:        getEnvInt("SEED_DAYS", 90),
			SeedUsers:       getEnvInt("SEED_USERS", 4),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.TokenTTLSeconds < 0 {
		return errors.New("TOKEN_TTL_SECONDS must not be negative")
	}
	if c.SeedDays < 1 {
		return errors.New("SEED_DAYS must be at least 1")
	}
	if c.SeedUsers < 1 {
		return errors.New("SEED_USERS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
