// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Explore Engineering
registration site.

Attendees fill in one form at /; each complete submission becomes one row
in the registrations table. /admin lists every row, newest first.

# Commands

Create the schema once:

	go run . init-db

Serve (the default command):

	SECRET_KEY=... go run . -p 5000

# Configuration

Settings come from flags, then environment variables, then a .env file:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_URL (-d): DSN or SQLite file (default: registrations.db)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - SECRET_KEY (--secret-key): signs notice cookies (default: insecure "dev-key")

# Architecture

  - handlers: intake, confirmation and listing handlers
  - router: Route definitions using Go 1.22+ routing
  - views: Embedded HTML templates
  - flash: Signed single-use notices
  - middleware: Logging, error pages
  - models: Registration record and form types
  - db: gorm connection and schema creation
  - cliparse: Configuration parsing

The admin listing is not access controlled.
*/
package main
