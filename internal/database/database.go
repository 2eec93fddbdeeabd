package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"reel/internal/config"
	"reel/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

type DB struct {
	*sqlx.DB
	Driver string
}

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

func ConnectDB(ctx context.Context, cfg *config.Config) (*DB, error) {
	driver := cfg.DB.Driver

	logging.Info().
		Str("driver", driver).
		Str("host", cfg.DB.DbHOST).
		Str("dbname", cfg.DB.DbNAME).
		Msg("connecting to database")

	db, err := sqlx.Open(driver, cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	dbStruct := &DB{DB: db, Driver: driver}

	if cfg.DB.AutoSchema {
		if err := dbStruct.ApplySchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	logging.Info().Str("driver", driver).Msg("database connection established")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// ApplySchema creates missing tables and indexes. Every statement is idempotent.
func (db *DB) ApplySchema(ctx context.Context) error {
	schema, err := SchemaFor(db.Driver)
	if err != nil {
		return err
	}

	for _, stmt := range splitStatements(schema) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	logging.Info().Str("driver", db.Driver).Msg("schema is up to date")
	return nil
}

// SchemaFor returns the embedded DDL for a driver name.
func SchemaFor(driver string) (string, error) {
	name := "schema/postgres.sql"
	switch driver {
	case config.DriverPostgres, config.DriverPgx:
	case config.DriverSQLite:
		name = "schema/sqlite.sql"
	default:
		return "", fmt.Errorf("no schema for driver %q", driver)
	}

	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

func splitStatements(schema string) []string {
	var stmts []string
	for _, part := range strings.Split(schema, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, "--") {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			stmts = append(stmts, strings.Join(lines, "\n"))
		}
	}
	return stmts
}

