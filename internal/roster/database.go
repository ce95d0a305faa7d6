package roster

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS professors (
	name            TEXT PRIMARY KEY,
	available_start INTEGER NOT NULL,
	available_end   INTEGER NOT NULL,
	position        BIGINT NOT NULL
);
CREATE TABLE IF NOT EXISTS teams (
	id         BIGINT PRIMARY KEY,
	professor1 TEXT NOT NULL,
	professor2 TEXT NOT NULL,
	professor3 TEXT NOT NULL
);`

// OpenDatabase connects to a "sqlite" (file path or ":memory:") or "postgres" (connection URL) database
func OpenDatabase(driver, dsn string, maxOpenConns int) (*sqlx.DB, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	// Every connection to ":memory:" would see its own empty database
	if driver == "sqlite" {
		maxOpenConns = 1
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates the roster tables when missing
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate roster schema: %w", err)
	}
	return nil
}
