package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL string
	MongoURL    string
	DBType      string
	Port        string
	JWTSecret   string
	SeedData    bool

	// Token lifetimes; the extended one applies when a login sets rememberMe.
	TokenLifetime         time.Duration
	ExtendedTokenLifetime time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		MongoURL:    os.Getenv("MONGO_URL"),
		DBType:      os.Getenv("DB_TYPE"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SeedData:    os.Getenv("SEED_DATA") == "true",

		TokenLifetime:         daysFromEnv("TOKEN_LIFETIME_DAYS", 7),
		ExtendedTokenLifetime: daysFromEnv("REMEMBER_ME_LIFETIME_DAYS", 30),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	return cfg
}

func daysFromEnv(key string, fallback int) time.Duration {
	days := fallback
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			log.Fatalf("invalid %s: %q", key, v)
		}
		days = parsed
	}
	return time.Duration(days) * 24 * time.Hour
}
