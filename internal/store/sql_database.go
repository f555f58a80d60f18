// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/givesachin/node-api-and-auth/internal/config"
	"github.com/givesachin/node-api-and-auth/internal/logger"

	// database drivers registered by side effect
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database/sql driver names. The driver is chosen from the DSN
// scheme: "postgres://" (or "postgresql://") selects pgx, anything else is
// treated as a SQLite file path.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps *sql.DB together with the pieces that differ between backends:
// the squirrel statement builder (placeholder format) and the constraint
// error classifier.
type DB struct {
	*sql.DB

	driver     string
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger
}

// Connect opens a database connection for the DSN in cfg, pings it, and
// returns a ready *DB. The driver, placeholder format, and error classifier
// are all derived from the DSN scheme.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := DriverForDSN(cfg.DSN)

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "Connect").Str("driver", driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "Connect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "Connect").Str("driver", driver).Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.classifier = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.classifier = NewSQLiteErrorClassifier()
	}

	return db, nil
}

// Driver returns the database/sql driver name the connection was opened with.
// It doubles as the goose dialect identifier.
func (db *DB) Driver() string {
	return db.driver
}

// DriverForDSN maps a data source name to the database/sql driver name.
func DriverForDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
