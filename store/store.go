package store

import (
	"context"
	"time"

	"github.com/hrygo/habitkeeper/internal/profile"
	"github.com/hrygo/habitkeeper/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// habitCache caches habits by id; invalidated on any write touching them.
	habitCache *cache.Cache[int32, *Habit]
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
		habitCache: cache.New(cache.Config[int32, *Habit]{
			DefaultTTL:      10 * time.Minute,
			CleanupInterval: 5 * time.Minute,
			MaxItems:        1000,
		}),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

// Migrate creates the schema if it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	return s.driver.Migrate(ctx)
}

func (s *Store) Close() error {
	s.habitCache.Close()
	return s.driver.Close()
}
