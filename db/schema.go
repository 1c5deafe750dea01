// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/explore-registration/cliparse"
	"github.com/danielhkuo/explore-registration/models"
)

var ErrUnsupportedDatabase = errors.New("unsupported database type")

// Open connects to the configured database and wraps the pool in gorm.
// The database/sql driver owns the pool; gorm reuses it through Conn.
func Open(cfg cliparse.Config) (*gorm.DB, error) {
	var (
		driverName string
		dsn        = cfg.DatabaseURL
		dialect    func(*sql.DB) gorm.Dialector
	)

	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		driverName = "sqlite" // modernc.org/sqlite
		dsn = SQLiteDSN(cfg.DatabaseURL)
		dialect = func(conn *sql.DB) gorm.Dialector {
			return sqlite.New(sqlite.Config{DriverName: driverName, Conn: conn})
		}
	case cliparse.DatabasePostgres:
		driverName = "postgres" // github.com/lib/pq
		dialect = func(conn *sql.DB) gorm.Dialector {
			return postgres.New(postgres.Config{Conn: conn})
		}
	case cliparse.DatabaseMySQL:
		driverName = "mysql" // github.com/go-sql-driver/mysql
		var err error
		if dsn, err = MySQLDSN(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		dialect = func(conn *sql.DB) gorm.Dialector {
			return mysql.New(mysql.Config{Conn: conn})
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, cfg.DatabaseType)
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	gdb, err := gorm.Open(dialect(conn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return gdb, nil
}

// SQLiteDSN adds the pragmas the pool relies on. Without busy_timeout a
// second connection writing at the same moment fails with SQLITE_BUSY
// instead of waiting for the lock. Pragmas already in the DSN are kept.
func SQLiteDSN(dsn string) string {
	pragmas := []string{"busy_timeout(5000)", "journal_mode(WAL)"}

	var params []string
	for _, p := range pragmas {
		name, _, _ := strings.Cut(p, "(")
		if strings.Contains(dsn, name) {
			continue
		}
		params = append(params, "_pragma="+p)
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// MySQLDSN forces parseTime so DATETIME columns scan into time.Time
func MySQLDSN(dsn string) (string, error) {
	mc, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql DSN: %w", err)
	}
	mc.ParseTime = true
	return mc.FormatDSN(), nil
}

// Close releases the underlying connection pool
func Close(gdb *gorm.DB) error {
	conn, err := gdb.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - AutoMigrate only adds what is missing.
func CreateSchema(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Registration{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
