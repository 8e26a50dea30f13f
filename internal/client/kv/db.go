package kv

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`

// InitDatabase opens (or creates) the local SQLite database and ensures the
// slot table exists. The caller owns the returned handle.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
