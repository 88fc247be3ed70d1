package postgres

import (
	"context"
	"database/sql"
	"fmt"

	// Import the PostgreSQL driver.
	_ "github.com/lib/pq"

	"github.com/hrygo/habitkeeper/internal/profile"
	"github.com/hrygo/habitkeeper/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens a PostgreSQL connection with the DSN from the profile.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile.DSN == "" {
		return nil, fmt.Errorf("dsn required")
	}

	pgDB, err := sql.Open("postgres", profile.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open db with dsn %s: %w", profile.DSN, err)
	}
	if err := pgDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	driver := DB{db: pgDB, profile: profile}

	return &driver, nil
}

func (db *DB) GetDB() *sql.DB {
	return db.db
}

func (db *DB) Close() error {
	return db.db.Close()
}

func (db *DB) IsInitialized(ctx context.Context) (bool, error) {
	var exists bool
	err := db.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = 'habits')").Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if database is initialized: %w", err)
	}
	return exists, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS habits (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			periodicity TEXT NOT NULL,
			created_ts BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS completions (
			id SERIAL PRIMARY KEY,
			habit_id INTEGER NOT NULL REFERENCES habits (id) ON DELETE CASCADE,
			completed_ts BIGINT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions (habit_id, completed_ts);
	`
	if _, err := db.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
