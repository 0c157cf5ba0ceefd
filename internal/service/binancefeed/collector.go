package binancefeed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/domain/service"
	"TrendMatrix/pkg/logger"
)

// Collector pulls daily klines from Binance for a set of symbols and writes
// price and volume records into the series store. Public market data only,
// so no API credentials are required.
type Collector struct {
	client   *binance.Client
	symbols  []string
	store    repository.SeriesStore
	activity service.ActivityEstimator
	metrics  repository.Metrics
	log      *logger.Logger
}

// NewCollector creates a Binance kline collector.
func NewCollector(
	symbols []string,
	store repository.SeriesStore,
	activity service.ActivityEstimator,
	metrics repository.Metrics,
	log *logger.Logger,
) *Collector {
	return &Collector{
		client:   binance.NewClient("", ""),
		symbols:  symbols,
		store:    store,
		activity: activity,
		metrics:  metrics,
		log:      log,
	}
}

// Collect fetches the last windowDays daily candles for every configured
// symbol and persists them. Partial failures abort the run; the poller
// retries on its next tick.
func (c *Collector) Collect(ctx context.Context, windowDays int) error {
	if windowDays <= 0 {
		return models.NewValidationError("window", "must be positive, got %d", windowDays)
	}
	windowDays = repository.ClampWindow(windowDays)

	start := time.Now()
	for _, symbol := range c.symbols {
		if err := c.collectSymbol(ctx, symbol, windowDays); err != nil {
			c.metrics.RecordError("binance_collect")
			return err
		}
		c.activity.Observe(symbol)
	}

	c.metrics.RecordLatency("binance_collect", time.Since(start).Seconds())
	c.log.Info("binance collect complete",
		logger.Int("symbols", len(c.symbols)),
		logger.Int("window_days", windowDays),
	)
	return nil
}

func (c *Collector) collectSymbol(ctx context.Context, symbol string, windowDays int) error {
	klines, err := c.client.NewKlinesService().
		Symbol(symbol).
		Interval("1d").
		Limit(windowDays).
		Do(ctx)
	if err != nil {
		return models.NewFetchError("binance", fmt.Errorf("klines %s: %w", symbol, err))
	}

	prices := make([]models.RawRecord, 0, len(klines))
	volumes := make([]models.RawRecord, 0, len(klines))
	for _, k := range klines {
		ts := time.UnixMilli(k.OpenTime).UTC()

		close, err := strconv.ParseFloat(k.Close, 64)
		if err != nil {
			continue
		}
		vol, err := strconv.ParseFloat(k.Volume, 64)
		if err != nil {
			continue
		}

		prices = append(prices, models.RawRecord{Asset: symbol, Timestamp: ts, Value: close})
		volumes = append(volumes, models.RawRecord{Asset: symbol, Timestamp: ts, Value: vol})
	}

	if err := c.store.StoreRecords(ctx, repository.KindPrice, prices); err != nil {
		return fmt.Errorf("store prices %s: %w", symbol, err)
	}
	if err := c.store.StoreRecords(ctx, repository.KindVolume, volumes); err != nil {
		return fmt.Errorf("store volumes %s: %w", symbol, err)
	}

	c.metrics.RecordFetch("binance", string(repository.KindPrice))
	return nil
}
