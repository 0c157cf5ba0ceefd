package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	pkgch "TrendMatrix/pkg/clickhouse"
)

// ClickHouseSeriesStore implements SeriesStore on a single wide table keyed
// by (kind, asset, ts). The ReplacingMergeTree engine collapses re-ingested
// rows with the same key, so repeated collector cycles never inflate sums.
type ClickHouseSeriesStore struct {
	client *pkgch.Client
	table  string
}

// NewClickHouseSeriesStore creates a ClickHouse-backed series store.
func NewClickHouseSeriesStore(client *pkgch.Client, table string) repository.SeriesStore {
	if table == "" {
		table = "metric_records"
	}
	return &ClickHouseSeriesStore{client: client, table: table}
}

// SchemaStatements returns idempotent DDL for the store's table.
func SchemaStatements(table string) []string {
	if table == "" {
		table = "metric_records"
	}
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			kind  String,
			asset String,
			ts    DateTime,
			value Float64
		) ENGINE = ReplacingMergeTree()
		ORDER BY (kind, asset, ts)`, table),
	}
}

// Init ensures the backing table exists.
func (s *ClickHouseSeriesStore) Init(ctx context.Context) error {
	return s.client.InitSchema(ctx, SchemaStatements(s.table))
}

func (s *ClickHouseSeriesStore) StoreRecords(ctx context.Context, kind repository.SeriesKind, recs []models.RawRecord) error {
	if len(recs) == 0 {
		return nil
	}

	// Multi-row VALUES insert, chunked to bound statement size.
	const chunkSize = 2000
	for start := 0; start < len(recs); start += chunkSize {
		end := start + chunkSize
		if end > len(recs) {
			end = len(recs)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*4)
		for _, r := range recs[start:end] {
			values = append(values, "(?, ?, ?, ?)")
			args = append(args, string(kind), r.Asset, r.Timestamp.UTC(), r.Value)
		}

		q := fmt.Sprintf("INSERT INTO %s (kind, asset, ts, value) VALUES %s", s.table, strings.Join(values, ","))
		if _, err := s.client.DB().ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("store records: %w", err)
		}
	}
	return nil
}

func (s *ClickHouseSeriesStore) RecordsBetween(ctx context.Context, kind repository.SeriesKind, asset string, from, to time.Time) ([]models.RawRecord, error) {
	// FINAL collapses not-yet-merged replaced rows at read time.
	q := fmt.Sprintf("SELECT asset, ts, value FROM %s FINAL WHERE kind = ? AND ts >= ? AND ts <= ?", s.table)
	args := []interface{}{string(kind), from.UTC(), to.UTC()}
	if asset != "" {
		q += " AND asset = ?"
		args = append(args, asset)
	}
	q += " ORDER BY ts ASC, asset ASC"

	rows, err := s.client.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var recs []models.RawRecord
	for rows.Next() {
		var r models.RawRecord
		if err := rows.Scan(&r.Asset, &r.Timestamp, &r.Value); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
