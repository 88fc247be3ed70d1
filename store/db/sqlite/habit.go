package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/habitkeeper/store"
)

func (d *DB) CreateHabit(ctx context.Context, create *store.Habit) (*store.Habit, error) {
	stmt := `
		INSERT INTO habits (name, periodicity, created_ts)
		VALUES (?, ?, ?)
		RETURNING id, name, periodicity, created_ts
	`
	var habit store.Habit
	err := d.db.QueryRowContext(ctx, stmt,
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
		return nil, errors.Wrap(err, "failed to create habit")
	}
	return &habit, nil
}

func (d *DB) ListHabits(ctx context.Context, find *store.FindHabit) ([]*store.Habit, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = ?"), append(args, *find.ID)
	}
	if find.Name != nil {
		where, args = append(where, "LOWER(name) = LOWER(?)"), append(args, *find.Name)
	}
	if find.Periodicity != nil {
		where, args = append(where, "periodicity = ?"), append(args, *find.Periodicity)
	}

	query := `SELECT id, name, periodicity, created_ts FROM habits
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}
	defer rows.Close()

	habits := []*store.Habit{}
	for rows.Next() {
		var habit store.Habit
		if err := rows.Scan(&habit.ID, &habit.Name, &habit.Periodicity, &habit.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan habit")
		}
		habits = append(habits, &habit)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate habits")
	}

	for _, habit := range habits {
		completions, err := d.ListCompletions(ctx, &store.FindCompletion{HabitID: &habit.ID})
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

func (d *DB) UpdateHabit(ctx context.Context, update *store.UpdateHabit) (*store.Habit, error) {
	set, args := []string{}, []any{}
	if update.Name != nil {
		set, args = append(set, "name = ?"), append(args, *update.Name)
	}
	if update.Periodicity != nil {
		set, args = append(set, "periodicity = ?"), append(args, *update.Periodicity)
	}
	if len(set) == 0 {
		return nil, errors.New("nothing to update")
	}
	args = append(args, update.ID)

	stmt := `UPDATE habits SET ` + strings.Join(set, ", ") + ` WHERE id = ?
		RETURNING id, name, periodicity, created_ts`
	var habit store.Habit
	err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&habit.ID,
		&habit.Name,
		&habit.Periodicity,
		&habit.CreatedTs,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update habit")
	}
	return &habit, nil
}

func (d *DB) DeleteHabit(ctx context.Context, delete *store.DeleteHabit) error {
	result, err := d.db.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", delete.ID)
	if err != nil {
		return errors.Wrap(err, "failed to delete habit")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if rows == 0 {
		return errors.Errorf("habit %d not found", delete.ID)
	}
	return nil
}

func (d *DB) CountHabits(ctx context.Context) (int, error) {
	var count int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count habits")
	}
	return count, nil
}
