package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	// Import the SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/hrygo/habitkeeper/internal/profile"
	"github.com/hrygo/habitkeeper/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens the sqlite database file named by the profile DSN.
//
// Connection settings:
// - Foreign keys enabled: completions are deleted with their habit (ON DELETE CASCADE).
// - Journal mode set to WAL: the recommended journal mode, prevents locking issues.
// - busy_timeout guards against transient SQLITE_BUSY on concurrent opens.
//
// Note: with the `modernc.org/sqlite` driver each pragma must be prefixed
// with `_pragma=`. See https://pkg.go.dev/modernc.org/sqlite#Driver.Open
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile.DSN == "" {
		return nil, errors.New("dsn required")
	}

	sqliteDB, err := sql.Open("sqlite", profile.DSN+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open db with dsn: %s", profile.DSN)
	}

	// Single connection is optimal for a single-user local file with WAL.
	sqliteDB.SetMaxOpenConns(1)
	sqliteDB.SetMaxIdleConns(1)
	sqliteDB.SetConnMaxLifetime(0)
	sqliteDB.SetConnMaxIdleTime(0)

	driver := DB{db: sqliteDB, profile: profile}

	return &driver, nil
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) IsInitialized(ctx context.Context) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type='table' AND name='habits')").Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "failed to check if database is initialized")
	}
	return exists, nil
}

func (d *DB) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS habits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			periodicity TEXT NOT NULL,
			created_ts BIGINT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			habit_id INTEGER NOT NULL,
			completed_ts BIGINT NOT NULL,
			FOREIGN KEY (habit_id) REFERENCES habits (id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions (habit_id, completed_ts);
	`
	if _, err := d.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	return nil
}
