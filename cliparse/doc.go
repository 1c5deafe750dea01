// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads an optional .env file (joho/godotenv), then ParseFlags
returns a Config struct with all settings:

	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Command: "serve" (default) or "init-db", the first positional argument
  - Port: Server listen port (default: 5000)
  - DatabaseURL: DSN or SQLite file path (default: registrations.db)
  - DatabaseType: sqlite, postgres or mysql (default: sqlite)
  - SecretKey: Notice cookie signing key (default: "dev-key")

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--secret-key  Signing key

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SECRET_KEY    → --secret-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for an invalid PORT, an unsupported database
type, or an unknown command (ErrUnknownCommand). A missing SECRET_KEY is
not an error; InsecureSecret reports it so the server can warn.
*/
package cliparse
