package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for database drivers.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)
	Migrate(ctx context.Context) error

	// Habit model related methods.
	CreateHabit(ctx context.Context, create *Habit) (*Habit, error)
	ListHabits(ctx context.Context, find *FindHabit) ([]*Habit, error)
	UpdateHabit(ctx context.Context, update *UpdateHabit) (*Habit, error)
	DeleteHabit(ctx context.Context, delete *DeleteHabit) error
	CountHabits(ctx context.Context) (int, error)

	// Completion model related methods.
	CreateCompletion(ctx context.Context, create *Completion) (*Completion, error)
	ListCompletions(ctx context.Context, find *FindCompletion) ([]*Completion, error)
	ListCompletionRecords(ctx context.Context) ([]*CompletionRecord, error)
}
