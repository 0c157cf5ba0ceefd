package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"TrendMatrix/pkg/logger"
)

// Broadcaster pushes dashboard events to live subscribers.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

// Collector pulls fresh raw records into the series store.
type Collector interface {
	Collect(ctx context.Context, windowDays int) error
}

// Poller drives the background refresh cycle: collect raw data, regenerate
// signals, reload the dashboard snapshot and broadcast it.
type Poller struct {
	interval   time.Duration
	collector  Collector // optional
	pipeline   *SignalPipeline
	view       *DashboardView
	broadcast  Broadcaster
	log        *logger.Logger
	windowDays int

	cron *cron.Cron
}

// NewPoller creates the refresh poller. collector may be nil when no
// external feed is configured.
func NewPoller(
	interval time.Duration,
	collector Collector,
	pipeline *SignalPipeline,
	view *DashboardView,
	broadcast Broadcaster,
	log *logger.Logger,
	windowDays int,
) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	return &Poller{
		interval:   interval,
		collector:  collector,
		pipeline:   pipeline,
		view:       view,
		broadcast:  broadcast,
		log:        log,
		windowDays: windowDays,
	}
}

// Start schedules the refresh cycle and runs one cycle immediately so the
// dashboard has data before the first tick.
func (p *Poller) Start(ctx context.Context) error {
	p.cron = cron.New()

	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, func() { p.cycle(ctx) }); err != nil {
		return fmt.Errorf("schedule poller: %w", err)
	}

	go p.cycle(ctx)
	p.cron.Start()
	p.log.Info("poller started", logger.Duration("interval", p.interval))
	return nil
}

// Stop halts scheduling and waits for a running cycle to finish.
func (p *Poller) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
	p.log.Info("poller stopped")
}

func (p *Poller) cycle(ctx context.Context) {
	start := time.Now()

	if p.collector != nil {
		if err := p.collector.Collect(ctx, p.windowDays); err != nil {
			p.log.Warn("collect failed", logger.Error(err))
		}
	}

	signals, err := p.pipeline.Run(ctx)
	if err != nil {
		p.log.Warn("signal pipeline failed", logger.Error(err))
	}
	for _, s := range signals {
		p.broadcast.Broadcast("signal", s)
	}

	snap, err := p.view.Load(ctx)
	if err != nil {
		p.log.Warn("dashboard refresh failed", logger.Error(err))
		return
	}
	p.broadcast.Broadcast("dashboard", snap)

	p.log.Debug("poll cycle complete", logger.Duration("took", time.Since(start)))
}
