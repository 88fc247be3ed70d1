package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Periodicity represents the recurrence cadence of a habit.
type Periodicity string

const (
	// PeriodicityDaily is a habit expected once every day.
	PeriodicityDaily Periodicity = "daily"
	// PeriodicityWeekly is a habit expected once every week.
	PeriodicityWeekly Periodicity = "weekly"
	// PeriodicityMonthly is a habit expected once every 30 days.
	PeriodicityMonthly Periodicity = "monthly"
)

// Periodicities lists all recognized values in display order.
var Periodicities = []Periodicity{PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly}

// IsValid reports whether p is one of the recognized periodicities.
func (p Periodicity) IsValid() bool {
	switch p {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityMonthly:
		return true
	}
	return false
}

// Habit represents a tracked habit together with its completion timestamps.
type Habit struct {
	ID          int32
	Name        string
	Periodicity Periodicity
	CreatedTs   int64
	// Completions holds the completion timestamps in ascending order.
	Completions []time.Time
}

// CreatedAt returns the creation timestamp as time.Time.
func (h *Habit) CreatedAt() time.Time {
	return time.Unix(h.CreatedTs, 0).UTC()
}

// LastCompletion returns the most recent completion, or zero time if none.
func (h *Habit) LastCompletion() time.Time {
	if len(h.Completions) == 0 {
		return time.Time{}
	}
	last := h.Completions[0]
	for _, c := range h.Completions[1:] {
		if c.After(last) {
			last = c
		}
	}
	return last
}

// FindHabit is the find condition for habits.
type FindHabit struct {
	ID          *int32
	Name        *string
	Periodicity *Periodicity
}

// UpdateHabit is the update condition for a habit.
type UpdateHabit struct {
	ID          int32
	Name        *string
	Periodicity *Periodicity
}

// DeleteHabit is the delete condition for a habit.
type DeleteHabit struct {
	ID int32
}

// CreateHabit creates and persists a new habit.
func (s *Store) CreateHabit(ctx context.Context, create *Habit) (*Habit, error) {
	if create.Name == "" {
		return nil, errors.New("habit name cannot be empty")
	}
	if !create.Periodicity.IsValid() {
		return nil, errors.Errorf("invalid periodicity %q", create.Periodicity)
	}
	if create.CreatedTs == 0 {
		create.CreatedTs = time.Now().UTC().Unix()
	}
	habit, err := s.driver.CreateHabit(ctx, create)
	if err != nil {
		return nil, err
	}
	s.habitCache.Set(habit.ID, habit)
	return habit, nil
}

// ListHabits lists habits with their completions.
func (s *Store) ListHabits(ctx context.Context, find *FindHabit) ([]*Habit, error) {
	return s.driver.ListHabits(ctx, find)
}

// GetHabit returns the first habit matching the find condition, or nil.
func (s *Store) GetHabit(ctx context.Context, find *FindHabit) (*Habit, error) {
	if find.ID != nil {
		if habit, ok := s.habitCache.Get(*find.ID); ok {
			return habit, nil
		}
	}
	habits, err := s.driver.ListHabits(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, nil
	}
	habit := habits[0]
	s.habitCache.Set(habit.ID, habit)
	return habit, nil
}

// UpdateHabit updates habit fields (name, periodicity).
func (s *Store) UpdateHabit(ctx context.Context, update *UpdateHabit) (*Habit, error) {
	if update.Name == nil && update.Periodicity == nil {
		return nil, errors.New("nothing to update")
	}
	if update.Periodicity != nil && !update.Periodicity.IsValid() {
		return nil, errors.Errorf("invalid periodicity %q", *update.Periodicity)
	}
	habit, err := s.driver.UpdateHabit(ctx, update)
	if err != nil {
		return nil, err
	}
	s.habitCache.Delete(update.ID)
	return habit, nil
}

// DeleteHabit deletes a habit and its completions.
func (s *Store) DeleteHabit(ctx context.Context, delete *DeleteHabit) error {
	if err := s.driver.DeleteHabit(ctx, delete); err != nil {
		return err
	}
	s.habitCache.Delete(delete.ID)
	return nil
}

// CountHabits returns the number of stored habits.
func (s *Store) CountHabits(ctx context.Context) (int, error) {
	return s.driver.CountHabits(ctx)
}
