package store

import (
	"context"
	"time"
)

// Completion represents a single recorded completion of a habit.
type Completion struct {
	ID          int32
	HabitID     int32
	CompletedTs int64
}

// CompletedAt returns the completion timestamp as time.Time.
func (c *Completion) CompletedAt() time.Time {
	return time.Unix(c.CompletedTs, 0).UTC()
}

// FindCompletion is the find condition for completions.
type FindCompletion struct {
	HabitID *int32
}

// CompletionRecord is a completion joined with its habit name, used by the
// admin console listing.
type CompletionRecord struct {
	HabitID     int32
	HabitName   string
	CompletedAt time.Time
}

// CreateCompletion records a completion for a habit.
func (s *Store) CreateCompletion(ctx context.Context, create *Completion) (*Completion, error) {
	if create.CompletedTs == 0 {
		create.CompletedTs = time.Now().UTC().Unix()
	}
	completion, err := s.driver.CreateCompletion(ctx, create)
	if err != nil {
		return nil, err
	}
	// Completions are denormalized onto the cached habit.
	s.habitCache.Delete(create.HabitID)
	return completion, nil
}

// ListCompletions lists completions ascending by timestamp.
func (s *Store) ListCompletions(ctx context.Context, find *FindCompletion) ([]*Completion, error) {
	return s.driver.ListCompletions(ctx, find)
}

// ListCompletionRecords lists all completions joined with habit names,
// most recent first.
func (s *Store) ListCompletionRecords(ctx context.Context) ([]*CompletionRecord, error) {
	return s.driver.ListCompletionRecords(ctx)
}
