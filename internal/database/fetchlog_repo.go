package database

import (
	"context"
	"fmt"

	"github.com/kdimtricp/reelmatch/internal/models"
)

const defaultHistoryLimit = 20

type FetchLogRepository struct {
	db *DB
}

func NewFetchLogRepository(db *DB) *FetchLogRepository {
	return &FetchLogRepository{db: db}
}

// RecordFetch inserts one fetch log entry.
func (r *FetchLogRepository) RecordFetch(ctx context.Context, entry *models.FetchLogEntry) error {
	query := r.db.rebind(`
	INSERT INTO fetch_log (id, request_id, language, outcome, record_count, latency_ms, error, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.conn.ExecContext(ctx, query,
		entry.ID, entry.RequestID, entry.Language, entry.Outcome,
		entry.RecordCount, entry.LatencyMS, entry.Error, entry.FetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert fetch log entry: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first.
func (r *FetchLogRepository) ListRecent(ctx context.Context, limit int) ([]models.FetchLogEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := r.db.rebind(`
	SELECT id, request_id, language, outcome, record_count, latency_ms, error, fetched_at
	FROM fetch_log
	ORDER BY fetched_at DESC
	LIMIT ?`)

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch log: %w", err)
	}
	defer rows.Close()

	entries := []models.FetchLogEntry{}
	for rows.Next() {
		var e models.FetchLogEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Language, &e.Outcome,
			&e.RecordCount, &e.LatencyMS, &e.Error, &e.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fetch log entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fetch log: %w", err)
	}
	return entries, nil
}
