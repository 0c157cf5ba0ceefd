package usecase

import (
	"context"
	"time"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/domain/service"
	"TrendMatrix/internal/services/filter"
	"TrendMatrix/pkg/logger"
	"TrendMatrix/pkg/util"
)

// SignalPipeline turns raw price/volume series into persisted, classified
// signals and fans them out to the notifier.
type SignalPipeline struct {
	store     repository.SeriesStore
	generator service.SignalGenerator
	history   repository.SignalHistory
	notifier  repository.SignalNotifier
	activity  service.ActivityEstimator
	metrics   repository.Metrics
	log       *logger.Logger
	assets    []string
	lookback  int
}

// NewSignalPipeline wires the signal generation path. lookback is how many
// days of raw records feed the detectors.
func NewSignalPipeline(
	store repository.SeriesStore,
	generator service.SignalGenerator,
	history repository.SignalHistory,
	notifier repository.SignalNotifier,
	activity service.ActivityEstimator,
	metrics repository.Metrics,
	log *logger.Logger,
	assets []string,
	lookback int,
) *SignalPipeline {
	if lookback <= 0 {
		lookback = 30
	}
	return &SignalPipeline{
		store:     store,
		generator: generator,
		history:   history,
		notifier:  notifier,
		activity:  activity,
		metrics:   metrics,
		log:       log,
		assets:    assets,
		lookback:  lookback,
	}
}

// Run generates signals for every configured asset. Per-asset failures are
// logged and skipped so one bad asset cannot starve the rest.
func (p *SignalPipeline) Run(ctx context.Context) ([]models.Signal, error) {
	now := time.Now().UTC()
	from := util.WindowStart(now, p.lookback)

	var generated []models.Signal
	for _, asset := range p.assets {
		sigs, err := p.runAsset(ctx, asset, from, now)
		if err != nil {
			p.metrics.RecordError("signal_pipeline")
			p.log.Warn("signal generation failed",
				logger.String("asset", asset),
				logger.Error(err),
			)
			continue
		}
		generated = append(generated, sigs...)
	}

	if len(generated) > 0 {
		p.log.Info("signals generated", logger.Int("count", len(generated)))
	}
	return generated, nil
}

func (p *SignalPipeline) runAsset(ctx context.Context, asset string, from, to time.Time) ([]models.Signal, error) {
	prices, err := p.store.RecordsBetween(ctx, repository.KindPrice, asset, from, to)
	if err != nil {
		return nil, err
	}
	volumes, err := p.store.RecordsBetween(ctx, repository.KindVolume, asset, from, to)
	if err != nil {
		return nil, err
	}

	sigs, err := p.generator.Generate(ctx, asset, prices, volumes)
	if err != nil {
		return nil, err
	}

	for _, s := range sigs {
		if err := p.history.Record(ctx, s); err != nil {
			return nil, err
		}
		if err := p.notifier.Notify(ctx, s); err != nil {
			// Notification is best-effort; the signal is already persisted.
			p.log.Warn("signal notify failed",
				logger.String("signal", s.ID),
				logger.Error(err),
			)
		}
		p.activity.Observe(s.Asset)
	}
	return sigs, nil
}

// SignalQuery serves filtered signal listings out of the history.
type SignalQuery struct {
	history repository.SignalHistory
	log     *logger.Logger
}

// NewSignalQuery wires the signal read path.
func NewSignalQuery(history repository.SignalHistory, log *logger.Logger) *SignalQuery {
	return &SignalQuery{history: history, log: log}
}

// List returns signals in req's window matching the request predicates,
// newest window first ordering preserved from storage.
func (q *SignalQuery) List(ctx context.Context, req *models.SignalsRequest) ([]models.Signal, error) {
	now := time.Now().UTC()
	from := util.ParseTimeDefault(req.From, util.WindowStart(now, req.Days))
	to := util.ParseTimeDefault(req.To, now)
	if to.Before(from) {
		return nil, models.NewValidationError("to", "must not precede from")
	}

	sigs, err := q.history.Between(ctx, from, to)
	if err != nil {
		return nil, err
	}

	spec := filter.Spec{
		TextQuery: req.Query,
		Category:  req.Category,
		Status:    req.Status,
	}
	return filter.UnwrapSignals(filter.Apply(filter.WrapSignals(sigs), spec)), nil
}
