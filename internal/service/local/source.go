package local

import (
	"context"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/domain/service"
	"TrendMatrix/internal/services/aggregate"
)

const sourceName = "local"

// Source is a MetricSource composed from locally collected data: raw series
// in the series store, entities in the catalog and generated signals in the
// history. Used when the dashboard runs against its own ClickHouse pipeline
// instead of a remote backend.
type Source struct {
	store     repository.SeriesStore
	catalog   repository.Catalog
	history   repository.SignalHistory
	sentiment service.SentimentAnalyzer
	activity  service.ActivityEstimator
	now       func() time.Time
}

// NewSource wires a local composite source.
func NewSource(
	store repository.SeriesStore,
	catalog repository.Catalog,
	history repository.SignalHistory,
	sentiment service.SentimentAnalyzer,
	activity service.ActivityEstimator,
) *Source {
	return &Source{
		store:     store,
		catalog:   catalog,
		history:   history,
		sentiment: sentiment,
		activity:  activity,
		now:       time.Now,
	}
}

func (s *Source) FetchSeries(ctx context.Context, kind repository.SeriesKind, windowDays int) ([]models.TimePoint, error) {
	if windowDays <= 0 {
		return nil, models.NewValidationError("window", "must be positive, got %d", windowDays)
	}
	windowDays = repository.ClampWindow(windowDays)

	w := aggregate.Window{End: s.now().UTC(), Days: windowDays}
	from := w.End.UTC().Truncate(24*time.Hour).AddDate(0, 0, -(windowDays - 1))

	// Signal counts come from the history; everything else from raw records.
	if kind == repository.KindSignals {
		sigs, err := s.history.Between(ctx, from, w.End)
		if err != nil {
			return nil, models.NewFetchError(sourceName, err)
		}
		stamps := make([]time.Time, 0, len(sigs))
		for _, sig := range sigs {
			stamps = append(stamps, sig.Timestamp)
		}
		return aggregate.CountBuckets(stamps, w), nil
	}

	// Empty asset spans every collected symbol: ecosystem-wide series.
	recs, err := s.store.RecordsBetween(ctx, kind, "", from, w.End)
	if err != nil {
		return nil, models.NewFetchError(sourceName, err)
	}
	return aggregate.DailyBuckets(recs, w), nil
}

func (s *Source) TopProjects(ctx context.Context, limit int) ([]models.Project, error) {
	projects, err := s.catalog.Projects(ctx)
	if err != nil {
		return nil, models.NewFetchError(sourceName, err)
	}
	if limit > 0 && limit < len(projects) {
		projects = projects[:limit]
	}
	return projects, nil
}

func (s *Source) TopProtocols(ctx context.Context, limit int) ([]models.DeFiProtocol, error) {
	protocols, err := s.catalog.Protocols(ctx)
	if err != nil {
		return nil, models.NewFetchError(sourceName, err)
	}
	if limit > 0 && limit < len(protocols) {
		protocols = protocols[:limit]
	}
	return protocols, nil
}

func (s *Source) TopCollections(ctx context.Context, limit int) ([]models.NftCollection, error) {
	collections, err := s.catalog.Collections(ctx)
	if err != nil {
		return nil, models.NewFetchError(sourceName, err)
	}
	if limit > 0 && limit < len(collections) {
		collections = collections[:limit]
	}
	return collections, nil
}

func (s *Source) DashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	now := s.now().UTC()

	total, err := s.history.CountSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return models.DashboardMetrics{}, models.NewFetchError(sourceName, err)
	}

	projects, err := s.catalog.Projects(ctx)
	if err != nil {
		return models.DashboardMetrics{}, models.NewFetchError(sourceName, err)
	}

	recent, err := s.history.Between(ctx, now.AddDate(0, 0, -7), now)
	if err != nil {
		return models.DashboardMetrics{}, models.NewFetchError(sourceName, err)
	}

	activitySeries, err := s.FetchSeries(ctx, repository.KindActivity, 7)
	if err != nil {
		return models.DashboardMetrics{}, err
	}

	score, label, err := s.sentiment.Analyze(ctx, recent, activitySeries)
	if err != nil {
		return models.DashboardMetrics{}, models.NewFetchError(sourceName, err)
	}

	return models.DashboardMetrics{
		TotalSignals:    total,
		ActiveProjects:  len(projects),
		MarketSentiment: label,
		SentimentScore:  score,
		SolanaActivity:  aggregate.Round1(s.activity.ActivityPct()),
	}, nil
}

var _ repository.MetricSource = (*Source)(nil)
