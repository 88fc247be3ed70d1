package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrygo/habitkeeper/store"
)

func (db *DB) CreateHabit(ctx context.Context, create *store.Habit) (*store.Habit, error) {
	query := `
		INSERT INTO habits (name, periodicity, created_ts)
		VALUES ($1, $2, $3)
		RETURNING id, name, periodicity, created_ts
	`
	var habit store.Habit
	err := db.db.QueryRowContext(ctx, query,
		create.Name,
		create.Periodicity,
		create.CreatedTs,
	).Scan(
		&habit.ID,
		&habit.Name,
		&habit.Periodicity,
		&habit.CreatedTs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return &habit, nil
}

func (db *DB) ListHabits(ctx context.Context, find *store.FindHabit) ([]*store.Habit, error) {
	where, args := []string{"TRUE"}, []any{}

	if find.ID != nil {
		args = append(args, *find.ID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	if find.Name != nil {
		args = append(args, *find.Name)
		where = append(where, fmt.Sprintf("LOWER(name) = LOWER($%d)", len(args)))
	}
	if find.Periodicity != nil {
		args = append(args, *find.Periodicity)
		where = append(where, fmt.Sprintf("periodicity = $%d", len(args)))
	}

	query := `SELECT id, name, periodicity, created_ts FROM habits
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := []*store.Habit{}
	for rows.Next() {
		var habit store.Habit
		if err := rows.Scan(&habit.ID, &habit.Name, &habit.Periodicity, &habit.CreatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, &habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	for _, habit := range habits {
		completions, err := db.ListCompletions(ctx, &store.FindCompletion{HabitID: &habit.ID})
		if err != nil {
			return nil, err
		}
		habit.Completions = make([]time.Time, 0, len(completions))
		for _, c := range completions {
			habit.Completions = append(habit.Completions, c.CompletedAt())
		}
	}

	return habits, nil
}

func (db *DB) UpdateHabit(ctx context.Context, update *store.UpdateHabit) (*store.Habit, error) {
	set, args := []string{}, []any{}
	if update.Name != nil {
		args = append(args, *update.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Periodicity != nil {
		args = append(args, *update.Periodicity)
		set = append(set, fmt.Sprintf("periodicity = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}
	args = append(args, update.ID)

	query := `UPDATE habits SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, name, periodicity, created_ts", len(args))
	var habit store.Habit
	err := db.db.QueryRowContext(ctx, query, args...).Scan(
		&habit.ID,
		&habit.Name,
		&habit.Periodicity,
		&habit.CreatedTs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return &habit, nil
}

func (db *DB) DeleteHabit(ctx context.Context, delete *store.DeleteHabit) error {
	result, err := db.db.ExecContext(ctx, "DELETE FROM habits WHERE id = $1", delete.ID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("habit %d not found", delete.ID)
	}
	return nil
}

func (db *DB) CountHabits(ctx context.Context) (int, error) {
	var count int
	if err := db.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count habits: %w", err)
	}
	return count, nil
}
