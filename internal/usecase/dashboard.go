package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/pkg/logger"
)

// ViewState tracks the dashboard view lifecycle.
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}

// ErrViewClosed is returned when a load completes after Close; results from
// such loads are discarded, never applied.
var ErrViewClosed = errors.New("dashboard view is closed")

// Snapshot is one consistent dashboard payload: headline metrics plus the
// trend series and hot projects fetched together.
type Snapshot struct {
	Metrics       models.DashboardMetrics `json:"metrics"`
	SignalTrend   []models.TimePoint      `json:"signal_trend"`
	ActivityTrend []models.TimePoint      `json:"activity_trend"`
	HotProjects   []models.Project        `json:"hot_projects"`
	LoadedAt      time.Time               `json:"loaded_at"`
}

// DashboardView loads the dashboard as a unit: all four parts are fetched
// concurrently and the first failure aborts the whole load. A failed load
// keeps the previous good snapshot so the view can keep showing stale data
// alongside the error.
type DashboardView struct {
	source     repository.MetricSource
	series     *SeriesUsecase
	metrics    repository.Metrics
	log        *logger.Logger
	windowDays int
	hotLimit   int

	mu       sync.Mutex
	state    ViewState
	snapshot Snapshot
	lastErr  error
	closed   bool
}

// NewDashboardView creates an idle dashboard view.
func NewDashboardView(
	source repository.MetricSource,
	series *SeriesUsecase,
	metrics repository.Metrics,
	log *logger.Logger,
	windowDays, hotLimit int,
) *DashboardView {
	if windowDays <= 0 {
		windowDays = 7
	}
	if hotLimit <= 0 {
		hotLimit = 5
	}
	return &DashboardView{
		source:     source,
		series:     series,
		metrics:    metrics,
		log:        log,
		windowDays: windowDays,
		hotLimit:   hotLimit,
	}
}

// State returns the current view state.
func (v *DashboardView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Snapshot returns the last successfully loaded snapshot and whether one
// exists yet.
func (v *DashboardView) Snapshot() (Snapshot, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot, !v.snapshot.LoadedAt.IsZero()
}

// Close marks the view closed. In-flight loads finish but their results are
// discarded.
func (v *DashboardView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

// Load fetches all dashboard parts concurrently. The first error cancels the
// remaining fetches and becomes the load's outcome.
func (v *DashboardView) Load(ctx context.Context) (Snapshot, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return Snapshot{}, ErrViewClosed
	}
	v.state = StateLoading
	v.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		next  Snapshot
		resMu sync.Mutex
		wg    sync.WaitGroup
	)
	errCh := make(chan error, 4)

	run := func(fetch func(context.Context) error) {
		defer wg.Done()
		if err := fetch(ctx); err != nil {
			errCh <- err
			cancel()
		}
	}

	wg.Add(4)
	go run(func(ctx context.Context) error {
		m, err := v.source.DashboardMetrics(ctx)
		if err != nil {
			return err
		}
		resMu.Lock()
		next.Metrics = m
		resMu.Unlock()
		return nil
	})
	go run(func(ctx context.Context) error {
		pts, err := v.series.Trend(ctx, repository.KindSignals, v.windowDays)
		if err != nil {
			return err
		}
		resMu.Lock()
		next.SignalTrend = pts
		resMu.Unlock()
		return nil
	})
	go run(func(ctx context.Context) error {
		pts, err := v.series.Trend(ctx, repository.KindActivity, v.windowDays)
		if err != nil {
			return err
		}
		resMu.Lock()
		next.ActivityTrend = pts
		resMu.Unlock()
		return nil
	})
	go run(func(ctx context.Context) error {
		projects, err := v.source.TopProjects(ctx, v.hotLimit)
		if err != nil {
			return err
		}
		resMu.Lock()
		next.HotProjects = projects
		resMu.Unlock()
		return nil
	})

	wg.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return Snapshot{}, ErrViewClosed
	}

	select {
	case err := <-errCh:
		v.state = StateErrored
		v.lastErr = err
		v.metrics.RecordError("dashboard_load")
		v.log.Warn("dashboard load failed", logger.Error(err))
		// Previous snapshot is kept; callers may keep rendering it.
		return v.snapshot, err
	default:
	}

	next.LoadedAt = time.Now().UTC()
	v.snapshot = next
	v.state = StateLoaded
	v.lastErr = nil
	return next, nil
}

// LastError returns the error from the most recent failed load, if any.
func (v *DashboardView) LastError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}
