package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/services/aggregate"
)

func TestMemorySeriesStore_ReingestReplaces(t *testing.T) {
	store := NewMemorySeriesStore()
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rec := []models.RawRecord{{Asset: "SOLUSDT", Timestamp: day, Value: 100}}

	// A collector re-fetching the same window stores the same day again.
	require.NoError(t, store.StoreRecords(ctx, repository.KindPrice, rec))
	require.NoError(t, store.StoreRecords(ctx, repository.KindPrice, rec))

	got, err := store.RecordsBetween(ctx, repository.KindPrice, "SOLUSDT", day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 1, "same (asset, timestamp) stores once")

	buckets := aggregate.DailyBuckets(got, aggregate.Window{End: day, Days: 1})
	require.Len(t, buckets, 1)
	assert.Equal(t, 100.0, buckets[0].Value, "daily sum unchanged by re-ingest")
}

func TestMemorySeriesStore_ReingestTakesLatestValue(t *testing.T) {
	store := NewMemorySeriesStore()
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.StoreRecords(ctx, repository.KindPrice,
		[]models.RawRecord{{Asset: "SOLUSDT", Timestamp: day, Value: 100}}))
	// The day's candle closes at a different price on the next poll.
	require.NoError(t, store.StoreRecords(ctx, repository.KindPrice,
		[]models.RawRecord{{Asset: "SOLUSDT", Timestamp: day, Value: 104}}))

	got, err := store.RecordsBetween(ctx, repository.KindPrice, "SOLUSDT", day, day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 104.0, got[0].Value)
}

func TestMemorySeriesStore_AssetFilter(t *testing.T) {
	store := NewMemorySeriesStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	var recs []models.RawRecord
	for i := 0; i < 3; i++ {
		ts := base.AddDate(0, 0, i)
		recs = append(recs,
			models.RawRecord{Asset: "SOLUSDT", Timestamp: ts, Value: 150},
			models.RawRecord{Asset: "BONKUSDT", Timestamp: ts, Value: 0.00002},
		)
	}
	require.NoError(t, store.StoreRecords(ctx, repository.KindPrice, recs))

	from, to := base.AddDate(0, 0, -1), base.AddDate(0, 0, 5)

	sol, err := store.RecordsBetween(ctx, repository.KindPrice, "SOLUSDT", from, to)
	require.NoError(t, err)
	require.Len(t, sol, 3)
	for _, r := range sol {
		assert.Equal(t, "SOLUSDT", r.Asset)
		assert.Equal(t, 150.0, r.Value)
	}

	all, err := store.RecordsBetween(ctx, repository.KindPrice, "", from, to)
	require.NoError(t, err)
	require.Len(t, all, 6, "empty asset spans every symbol")
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.Before(all[i-1].Timestamp), "ascending by timestamp")
	}
}

func TestMemoryCatalog_RankedListers(t *testing.T) {
	catalog := NewMemoryCatalog(
		[]models.Project{
			{ID: "a", Name: "A", Score: 90},
			{ID: "b", Name: "B", Score: 70},
		},
		[]models.DeFiProtocol{
			{ID: "p1", Name: "P1", TVL: 100},
			{ID: "p2", Name: "P2", TVL: 900},
		},
		[]models.NftCollection{
			{ID: "c1", Name: "C1", Volume24h: 50},
			{ID: "c2", Name: "C2", Volume24h: 500},
		},
	)
	ctx := context.Background()

	// An upsert lands at the tail of the backing slice; ranking must not
	// depend on insertion order.
	require.NoError(t, catalog.UpsertProject(ctx, models.Project{ID: "c", Name: "C", Score: 95}))

	projects, err := catalog.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "c", projects[0].ID, "highest score first")
	assert.Equal(t, "a", projects[1].ID)
	assert.Equal(t, "b", projects[2].ID)

	protocols, err := catalog.Protocols(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p2", protocols[0].ID, "highest TVL first")

	collections, err := catalog.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c2", collections[0].ID, "highest 24h volume first")
}

func TestMemoryCatalog_UnknownIDFallsBack(t *testing.T) {
	catalog := NewMemoryCatalog(nil, nil, nil)

	p, err := catalog.ProjectByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, DefaultProject, p)
}
