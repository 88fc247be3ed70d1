package db

import (
	"github.com/pkg/errors"

	"github.com/hrygo/habitkeeper/internal/profile"
	"github.com/hrygo/habitkeeper/store"
	"github.com/hrygo/habitkeeper/store/db/postgres"
	"github.com/hrygo/habitkeeper/store/db/sqlite"
)

// NewDBDriver creates a new database driver based on the profile.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	switch profile.Driver {
	case "sqlite":
		return sqlite.NewDB(profile)
	case "postgres":
		return postgres.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver %q", profile.Driver)
	}
}
