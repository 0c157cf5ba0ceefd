package demo

import (
	"context"
	"hash/fnv"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/services/aggregate"
)

const sourceName = "demo"

// Source is a deterministic offline MetricSource. Values are derived from a
// hash of the series kind and calendar day, so the same day always yields
// the same number across restarts and repeated fetches.
type Source struct {
	now func() time.Time
}

// NewSource creates a demo source using wall-clock time.
func NewSource() *Source {
	return &Source{now: time.Now}
}

// NewSourceAt creates a demo source with a fixed clock, for tests.
func NewSourceAt(now func() time.Time) *Source {
	return &Source{now: now}
}

func (s *Source) FetchSeries(_ context.Context, kind repository.SeriesKind, windowDays int) ([]models.TimePoint, error) {
	if windowDays <= 0 {
		return nil, models.NewValidationError("window", "must be positive, got %d", windowDays)
	}
	windowDays = repository.ClampWindow(windowDays)

	w := aggregate.Window{End: s.now().UTC(), Days: windowDays}
	out := aggregate.DailyBuckets(nil, w)
	for i := range out {
		out[i].Value = dayValue(kind, out[i].Date)
	}
	return out, nil
}

// dayValue maps (kind, day) onto a stable value in a kind-appropriate range.
func dayValue(kind repository.SeriesKind, date string) float64 {
	h := fnv.New32a()
	h.Write([]byte(string(kind)))
	h.Write([]byte(date))
	n := h.Sum32()

	switch kind {
	case repository.KindSignals:
		return float64(20 + n%80) // 20..99 signals per day
	case repository.KindActivity:
		return float64(40 + n%60) // 40..99 activity pct-ish
	case repository.KindPrice:
		return 80 + float64(n%4000)/100 // 80.00..119.99
	case repository.KindVolume:
		return float64(1_000_000 + n%9_000_000)
	default:
		return float64(n % 100)
	}
}

var demoProjects = []models.Project{
	{ID: "jupiter", Name: "Jupiter", Category: "DeFi", Score: 94, Change: 12.5},
	{ID: "tensor", Name: "Tensor", Category: "NFT", Score: 88, Change: 8.2},
	{ID: "marinade", Name: "Marinade", Category: "Staking", Score: 85, Change: -2.1},
	{ID: "drift", Name: "Drift", Category: "DeFi", Score: 82, Change: 5.7},
	{ID: "kamino", Name: "Kamino", Category: "DeFi", Score: 79, Change: 3.4},
	{ID: "helium", Name: "Helium", Category: "Infrastructure", Score: 74, Change: -0.8},
	{ID: "pyth", Name: "Pyth", Category: "Infrastructure", Score: 71, Change: 1.9},
	{ID: "magiceden", Name: "Magic Eden", Category: "NFT", Score: 68, Change: -4.3},
}

var demoProtocols = []models.DeFiProtocol{
	{ID: "jupiter", Name: "Jupiter", Category: "DEX Aggregator", TVL: 2_400_000_000, Volume24h: 890_000_000, Change24h: 4.2, Users: 412_000},
	{ID: "marinade", Name: "Marinade", Category: "Liquid Staking", TVL: 1_800_000_000, Volume24h: 34_000_000, Change24h: 1.1, Users: 98_000},
	{ID: "kamino", Name: "Kamino", Category: "Lending", TVL: 1_300_000_000, Volume24h: 120_000_000, Change24h: -2.5, Users: 65_000},
	{ID: "drift", Name: "Drift", Category: "Perps", TVL: 950_000_000, Volume24h: 510_000_000, Change24h: 7.8, Users: 54_000},
	{ID: "raydium", Name: "Raydium", Category: "DEX", TVL: 880_000_000, Volume24h: 640_000_000, Change24h: 3.3, Users: 230_000},
}

var demoCollections = []models.NftCollection{
	{ID: "madlads", Name: "Mad Lads", Category: "PFP", FloorPrice: 102.5, Volume24h: 8_400, Volume7d: 51_000, Volume30d: 196_000, Change24h: 6.1, Holders: 4_400},
	{ID: "smb", Name: "Solana Monkey Business", Category: "PFP", FloorPrice: 48.9, Volume24h: 2_100, Volume7d: 16_500, Volume30d: 61_000, Change24h: -1.4, Holders: 2_600},
	{ID: "tensorians", Name: "Tensorians", Category: "PFP", FloorPrice: 21.3, Volume24h: 1_800, Volume7d: 11_200, Volume30d: 44_000, Change24h: 2.7, Holders: 5_100},
	{ID: "claynosaurz", Name: "Claynosaurz", Category: "Gaming", FloorPrice: 18.7, Volume24h: 1_200, Volume7d: 9_800, Volume30d: 37_000, Change24h: 4.9, Holders: 6_800},
}

func (s *Source) TopProjects(_ context.Context, limit int) ([]models.Project, error) {
	return head(demoProjects, limit), nil
}

func (s *Source) TopProtocols(_ context.Context, limit int) ([]models.DeFiProtocol, error) {
	return head(demoProtocols, limit), nil
}

func (s *Source) TopCollections(_ context.Context, limit int) ([]models.NftCollection, error) {
	return head(demoCollections, limit), nil
}

func (s *Source) DashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	today := s.now().UTC().Format(models.DayFormat)
	score := int(dayValue(repository.KindActivity, today))

	label := "neutral"
	switch {
	case score < 40:
		label = "bearish"
	case score > 60:
		label = "bullish"
	}

	return models.DashboardMetrics{
		TotalSignals:    int(dayValue(repository.KindSignals, today)),
		ActiveProjects:  len(demoProjects),
		MarketSentiment: label,
		SentimentScore:  score,
		SolanaActivity:  aggregate.Round1(dayValue(repository.KindActivity, today)),
	}, nil
}

// Projects returns the full demo project fixture set.
func Projects() []models.Project { return head(demoProjects, 0) }

// Protocols returns the full demo protocol fixture set.
func Protocols() []models.DeFiProtocol { return head(demoProtocols, 0) }

// Collections returns the full demo collection fixture set.
func Collections() []models.NftCollection { return head(demoCollections, 0) }

func head[T any](xs []T, limit int) []T {
	if limit <= 0 || limit > len(xs) {
		limit = len(xs)
	}
	out := make([]T, limit)
	copy(out, xs[:limit])
	return out
}

var _ repository.MetricSource = (*Source)(nil)
