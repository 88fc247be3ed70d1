package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrygo/habitkeeper/store"
)

func (db *DB) CreateCompletion(ctx context.Context, create *store.Completion) (*store.Completion, error) {
	query := `
		INSERT INTO completions (habit_id, completed_ts)
		VALUES ($1, $2)
		RETURNING id, habit_id, completed_ts
	`
	var completion store.Completion
	err := db.db.QueryRowContext(ctx, query,
		create.HabitID,
		create.CompletedTs,
	).Scan(
		&completion.ID,
		&completion.HabitID,
		&completion.CompletedTs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}
	return &completion, nil
}

func (db *DB) ListCompletions(ctx context.Context, find *store.FindCompletion) ([]*store.Completion, error) {
	where, args := []string{"TRUE"}, []any{}
	if find.HabitID != nil {
		args = append(args, *find.HabitID)
		where = append(where, fmt.Sprintf("habit_id = $%d", len(args)))
	}

	query := `SELECT id, habit_id, completed_ts FROM completions
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY completed_ts ASC`

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	completions := []*store.Completion{}
	for rows.Next() {
		var completion store.Completion
		if err := rows.Scan(&completion.ID, &completion.HabitID, &completion.CompletedTs); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, &completion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}
	return completions, nil
}

func (db *DB) ListCompletionRecords(ctx context.Context) ([]*store.CompletionRecord, error) {
	query := `
		SELECT c.habit_id, h.name, c.completed_ts
		FROM completions AS c
		JOIN habits AS h ON c.habit_id = h.id
		ORDER BY c.completed_ts DESC
	`
	rows, err := db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list completion records: %w", err)
	}
	defer rows.Close()

	records := []*store.CompletionRecord{}
	for rows.Next() {
		var record store.CompletionRecord
		var completedTs int64
		if err := rows.Scan(&record.HabitID, &record.HabitName, &completedTs); err != nil {
			return nil, fmt.Errorf("failed to scan completion record: %w", err)
		}
		record.CompletedAt = time.Unix(completedTs, 0).UTC()
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completion records: %w", err)
	}
	return records, nil
}
