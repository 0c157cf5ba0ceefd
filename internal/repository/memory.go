package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
)

// MemorySeriesStore keeps raw records in memory, keyed by (asset, timestamp)
// per kind so repeated ingest of the same day replaces instead of appending.
// Used in demo mode and tests where no ClickHouse is configured.
type MemorySeriesStore struct {
	mu   sync.RWMutex
	recs map[repository.SeriesKind]map[string]models.RawRecord
}

// NewMemorySeriesStore creates an empty in-memory series store.
func NewMemorySeriesStore() *MemorySeriesStore {
	return &MemorySeriesStore{recs: make(map[repository.SeriesKind]map[string]models.RawRecord)}
}

func recordKey(r models.RawRecord) string {
	return fmt.Sprintf("%s|%d", r.Asset, r.Timestamp.UTC().Unix())
}

func (m *MemorySeriesStore) StoreRecords(_ context.Context, kind repository.SeriesKind, recs []models.RawRecord) error {
	if len(recs) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recs[kind] == nil {
		m.recs[kind] = make(map[string]models.RawRecord)
	}
	for _, r := range recs {
		m.recs[kind][recordKey(r)] = r
	}
	return nil
}

func (m *MemorySeriesStore) RecordsBetween(_ context.Context, kind repository.SeriesKind, asset string, from, to time.Time) ([]models.RawRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.RawRecord
	for _, r := range m.recs[kind] {
		if asset != "" && r.Asset != asset {
			continue
		}
		if r.Timestamp.Before(from) || r.Timestamp.After(to) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].Asset < out[j].Asset
	})
	return out, nil
}

// MemoryCatalog is a seeded in-memory Catalog for demo mode and tests.
// Listers return ranked copies: projects by score, protocols by TVL,
// collections by 24h volume, all descending.
type MemoryCatalog struct {
	mu          sync.RWMutex
	projects    []models.Project
	protocols   []models.DeFiProtocol
	collections []models.NftCollection
}

// NewMemoryCatalog creates a catalog pre-populated with the given entities.
func NewMemoryCatalog(projects []models.Project, protocols []models.DeFiProtocol, collections []models.NftCollection) *MemoryCatalog {
	return &MemoryCatalog{
		projects:    append([]models.Project(nil), projects...),
		protocols:   append([]models.DeFiProtocol(nil), protocols...),
		collections: append([]models.NftCollection(nil), collections...),
	}
}

func (m *MemoryCatalog) ProjectByID(_ context.Context, id string) (models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return DefaultProject, nil
}

func (m *MemoryCatalog) Projects(context.Context) ([]models.Project, error) {
	m.mu.RLock()
	out := append([]models.Project(nil), m.projects...)
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func (m *MemoryCatalog) Protocols(context.Context) ([]models.DeFiProtocol, error) {
	m.mu.RLock()
	out := append([]models.DeFiProtocol(nil), m.protocols...)
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].TVL > out[j].TVL })
	return out, nil
}

func (m *MemoryCatalog) Collections(context.Context) ([]models.NftCollection, error) {
	m.mu.RLock()
	out := append([]models.NftCollection(nil), m.collections...)
	m.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Volume24h > out[j].Volume24h })
	return out, nil
}

func (m *MemoryCatalog) UpsertProject(_ context.Context, p models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == p.ID {
			m.projects[i] = p
			return nil
		}
	}
	m.projects = append(m.projects, p)
	return nil
}

var (
	_ repository.SeriesStore = (*MemorySeriesStore)(nil)
	_ repository.Catalog     = (*MemoryCatalog)(nil)
)
