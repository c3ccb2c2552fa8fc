package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the server.
type Config struct {
	Env       string // "development" or "production"
	Port      string // HTTP port (default: 5000)
	MongoURL  string // MongoDB connection string
	MongoDB   string // Database name (default: captake)
	JWTSecret string // Session token signing secret
	RedisURL  string // Optional redis URL for the catalog cache
}

// LoadConfig loads environment variables into a Config and validates them.
// A .env file is honored when present, falling back to the system env.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:       os.Getenv("ENV"),
		Port:      os.Getenv("PORT"),
		MongoURL:  os.Getenv("MONGO_URL"),
		MongoDB:   os.Getenv("MONGO_DB"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisURL:  os.Getenv("REDIS_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "captake"
	}
	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
