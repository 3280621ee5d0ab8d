// Package config loads application configuration from environment
// variables. A .env file is honored when present (loaded by main via
// godotenv); everything except the JWT secret has a sensible default
// so the server runs out of the box against the embedded database.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing

	// Fixed store-owner credential. The default mirrors the
	// account the store has always shipped with.
	OwnerUsername string
	OwnerPassword string

	// Persistence adapter selection: "sqlite" (default), "mysql",
	// "redis" or "memory".
	KVDriver   string
	SQLitePath string
	DBUser     string
	DBPass     string
	DBHost     string
	DBPort     string
	DBName     string

	// RabbitMQ purchase events; empty QueueURL disables them.
	QueueURL string
}

// Load reads configuration values from environment variables and
// returns a Config. JWT_SECRET is required; a missing value causes
// the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:    getenvInt("BCRYPT_COST", 10),
		OwnerUsername: getenv("OWNER_USERNAME", "admin"),
		OwnerPassword: getenv("OWNER_PASSWORD", "admin"),
		KVDriver:      getenv("KV_DRIVER", "sqlite"),
		SQLitePath:    getenv("SQLITE_PATH", "bookstore.db"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        getenv("DB_NAME", "bookstore"),
		QueueURL:      queueURL(),
	}
}

func queueURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
