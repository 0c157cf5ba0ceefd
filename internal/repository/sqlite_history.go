package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
)

// SQLiteHistory implements SignalHistory on an embedded SQLite database.
// Suitable for single-node deployments; the poller is the only writer.
type SQLiteHistory struct {
	db *sql.DB
}

// NewSQLiteHistory opens (or creates) the history database at path and
// applies the schema. Use ":memory:" for ephemeral storage.
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// Single writer, many readers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS signals (
		id        TEXT PRIMARY KEY,
		asset     TEXT NOT NULL,
		type      TEXT NOT NULL,
		strength  INTEGER NOT NULL,
		level     TEXT NOT NULL,
		status    TEXT NOT NULL,
		ts        INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals (ts)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite index: %w", err)
	}

	return &SQLiteHistory{db: db}, nil
}

func (h *SQLiteHistory) Record(ctx context.Context, s models.Signal) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO signals (id, asset, type, strength, level, status, ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Asset, string(s.Type), s.Strength, string(s.Level), s.Status, s.Timestamp.UTC().Unix())
	if err != nil {
		return fmt.Errorf("record signal: %w", err)
	}
	return nil
}

func (h *SQLiteHistory) Between(ctx context.Context, from, to time.Time) ([]models.Signal, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, asset, type, strength, level, status, ts FROM signals
		 WHERE ts >= ? AND ts <= ? ORDER BY ts ASC`,
		from.UTC().Unix(), to.UTC().Unix())
	if err != nil {
		return nil, fmt.Errorf("query signals: %w", err)
	}
	defer rows.Close()

	var out []models.Signal
	for rows.Next() {
		var s models.Signal
		var typ, level string
		var ts int64
		if err := rows.Scan(&s.ID, &s.Asset, &typ, &s.Strength, &level, &s.Status, &ts); err != nil {
			return nil, err
		}
		s.Type = models.SignalType(typ)
		s.Level = models.SignalLevel(level)
		s.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (h *SQLiteHistory) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM signals WHERE ts >= ?`, since.UTC().Unix(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count signals: %w", err)
	}
	return n, nil
}

func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

var _ repository.SignalHistory = (*SQLiteHistory)(nil)
