// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Commands
const (
	CommandServe  = "serve"
	CommandInitDB = "init-db"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMySQL    = "mysql"
)

// DefaultSecretKey is used when SECRET_KEY is unset. Development only.
const DefaultSecretKey = "dev-key"

var ErrUnknownCommand = errors.New("unknown command")

type Config struct {
	Command      string
	Port         int
	DatabaseURL  string
	DatabaseType string
	SecretKey    string
}

// InsecureSecret reports whether the signing key is the development default
func (c Config) InsecureSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadEnv reads a .env file into the process environment if one exists.
// Variables already set are left untouched.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// ParseFlags reads flags, falls back to environment variables, and picks the command
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("explore-registration", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mysql)")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.SecretKey, "secret-key", "", "Notice signing key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch cmd := fs.Arg(0); cmd {
	case "", CommandServe:
		cfg.Command = CommandServe
	case CommandInitDB:
		cfg.Command = CommandInitDB
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "registrations.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMySQL:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("SECRET_KEY")
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = DefaultSecretKey
	}

	return cfg, nil
}
