package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/habitkeeper/store"
)

func (d *DB) CreateCompletion(ctx context.Context, create *store.Completion) (*store.Completion, error) {
	stmt := `
		INSERT INTO completions (habit_id, completed_ts)
		VALUES (?, ?)
		RETURNING id, habit_id, completed_ts
	`
	var completion store.Completion
	err := d.db.QueryRowContext(ctx, stmt,
		create.HabitID,
		create.CompletedTs,
	).Scan(
		&completion.ID,
		&completion.HabitID,
		&completion.CompletedTs,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create completion")
	}
	return &completion, nil
}

func (d *DB) ListCompletions(ctx context.Context, find *store.FindCompletion) ([]*store.Completion, error) {
	where, args := []string{"1 = 1"}, []any{}
	if find.HabitID != nil {
		where, args = append(where, "habit_id = ?"), append(args, *find.HabitID)
	}

	query := `SELECT id, habit_id, completed_ts FROM completions
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY completed_ts ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completions")
	}
	defer rows.Close()

	completions := []*store.Completion{}
	for rows.Next() {
		var completion store.Completion
		if err := rows.Scan(&completion.ID, &completion.HabitID, &completion.CompletedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan completion")
		}
		completions = append(completions, &completion)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate completions")
	}
	return completions, nil
}

func (d *DB) ListCompletionRecords(ctx context.Context) ([]*store.CompletionRecord, error) {
	query := `
		SELECT c.habit_id, h.name, c.completed_ts
		FROM completions AS c
		JOIN habits AS h ON c.habit_id = h.id
		ORDER BY c.completed_ts DESC
	`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completion records")
	}
	defer rows.Close()

	records := []*store.CompletionRecord{}
	for rows.Next() {
		var record store.CompletionRecord
		var completedTs int64
		if err := rows.Scan(&record.HabitID, &record.HabitName, &completedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan completion record")
		}
		record.CompletedAt = time.Unix(completedTs, 0).UTC()
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate completion records")
	}
	return records, nil
}
