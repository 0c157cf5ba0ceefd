package repository

import (
	"context"
	"time"

	"TrendMatrix/internal/domain/models"
)

// MetricSource fetches raw ecosystem metrics for a lookback window.
// FetchSeries returns exactly windowDays points, oldest first, gap-free.
// A non-positive window yields a models.ValidationError; transport failures
// surface as models.FetchError. The source never retries on its own.
type MetricSource interface {
	FetchSeries(ctx context.Context, kind SeriesKind, windowDays int) ([]models.TimePoint, error)
	TopProjects(ctx context.Context, limit int) ([]models.Project, error)
	TopProtocols(ctx context.Context, limit int) ([]models.DeFiProtocol, error)
	TopCollections(ctx context.Context, limit int) ([]models.NftCollection, error)
	DashboardMetrics(ctx context.Context) (models.DashboardMetrics, error)
}

// SeriesStore provides read/write access to raw time-stamped records.
// Records are keyed by (kind, asset, timestamp); storing a record under an
// existing key replaces it, so re-ingesting a window is idempotent.
// RecordsBetween with an empty asset spans every asset.
type SeriesStore interface {
	StoreRecords(ctx context.Context, kind SeriesKind, recs []models.RawRecord) error
	RecordsBetween(ctx context.Context, kind SeriesKind, asset string, from, to time.Time) ([]models.RawRecord, error)
}

// Catalog is the single consistent record per ecosystem entity. Lookups for
// unknown ids fall back to a documented default record instead of erroring.
type Catalog interface {
	ProjectByID(ctx context.Context, id string) (models.Project, error)
	Projects(ctx context.Context) ([]models.Project, error)
	Protocols(ctx context.Context) ([]models.DeFiProtocol, error)
	Collections(ctx context.Context) ([]models.NftCollection, error)
	UpsertProject(ctx context.Context, p models.Project) error
}

// SignalHistory persists generated signals and serves range queries.
type SignalHistory interface {
	Record(ctx context.Context, s models.Signal) error
	Between(ctx context.Context, from, to time.Time) ([]models.Signal, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	Close() error
}

// SignalNotifier fans generated signals out to downstream consumers.
type SignalNotifier interface {
	Notify(ctx context.Context, s models.Signal) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordFetch(source, kind string)
	RecordError(kind string)
	RecordRenderedChart(chart string)
	RecordLatency(op string, seconds float64)
}
