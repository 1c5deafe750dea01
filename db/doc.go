// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the gorm connection and creates the schema.

# Connecting

Open picks the database/sql driver and gorm dialector from the config:

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(gdb)

Supported types:

  - sqlite: modernc.org/sqlite (pure Go), DSN is a file path
  - postgres: github.com/lib/pq
  - mysql: github.com/go-sql-driver/mysql

SQLite DSNs get busy_timeout(5000) and WAL journaling so concurrent
inserts wait for the write lock instead of failing with SQLITE_BUSY.
MySQL DSNs always get parseTime=true.

gorm timestamps are taken in UTC.

# Schema Creation

CreateSchema migrates the registrations table:

	if err := db.CreateSchema(gdb); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times. Existing tables and rows are left alone.
*/
package db
