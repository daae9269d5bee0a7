package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultDatabaseURI = "restaurants.db"
	DefaultPort        = "8080"
)

type Config struct {
	DatabaseURI    string
	AppEnv         string
	Port           string
	EchoSQL        bool
	AllowedOrigins []string
}

// Load reads .env (if present) and then the process environment. Missing
// values fall back to defaults with a warning.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded. Using environment variables.")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	cfg := Config{
		DatabaseURI: os.Getenv("DATABASE_URI"),
		AppEnv:      os.Getenv("APP_ENV"),
		Port:        os.Getenv("PORT"),
		EchoSQL:     parseBool(os.Getenv("DB_ECHO")),
	}

	if cfg.DatabaseURI == "" {
		cfg.DatabaseURI = DefaultDatabaseURI
		log.Println("Warning: DATABASE_URI not found in environment variables. Using default: " + cfg.DatabaseURI)
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg
}

// IsDevelopment reports whether the app runs in a local/debug environment.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "debug" || c.AppEnv == "development"
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
