package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Secret        string
	DatabaseDSN   string
	HTTPPort      string
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables with reasonable defaults.
// The session-signing secret must be overridden outside of development.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "Lamphouse.db"
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	return Config{
		Secret:        secret,
		DatabaseDSN:   dsn,
		HTTPPort:      port,
		AdminUsername: adminUser,
		AdminPassword: adminPassword,
	}
}
