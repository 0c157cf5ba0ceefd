package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"TrendMatrix/internal/domain/models"
	"TrendMatrix/internal/domain/repository"
	"TrendMatrix/internal/services/aggregate"
	"TrendMatrix/pkg/logger"
)

const sourceName = "backend"

// Client is a MetricSource backed by the analytics backend HTTP API.
// It densifies whatever the backend returns into a gap-free daily window
// and never retries; retry policy belongs to callers.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient creates a backend API client rooted at baseURL.
func NewClient(baseURL string, log *logger.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: http, log: log}
}

type seriesResponse struct {
	Points []models.TimePoint `json:"points"`
}

func (c *Client) FetchSeries(ctx context.Context, kind repository.SeriesKind, windowDays int) ([]models.TimePoint, error) {
	if windowDays <= 0 {
		return nil, models.NewValidationError("window", "must be positive, got %d", windowDays)
	}
	windowDays = repository.ClampWindow(windowDays)

	var body seriesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("days", fmt.Sprintf("%d", windowDays)).
		SetResult(&body).
		Get(fmt.Sprintf("/api/v1/series/%s", kind))
	if err != nil {
		return nil, models.NewFetchError(sourceName, err)
	}
	if resp.IsError() {
		return nil, models.NewFetchError(sourceName, fmt.Errorf("status %d", resp.StatusCode()))
	}

	return densify(body.Points, windowDays), nil
}

// densify folds backend points into an exact gap-free window ending today.
// Days the backend did not report come back as zero-valued buckets.
func densify(points []models.TimePoint, windowDays int) []models.TimePoint {
	byDate := make(map[string]float64, len(points))
	for _, p := range points {
		byDate[p.Date] = p.Value
	}

	w := aggregate.WindowEndingToday(windowDays)
	out := aggregate.DailyBuckets(nil, w)
	for i := range out {
		out[i].Value = byDate[out[i].Date]
	}
	return out
}

func (c *Client) TopProjects(ctx context.Context, limit int) ([]models.Project, error) {
	var out []models.Project
	if err := c.getList(ctx, "/api/v1/projects/hot", limit, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TopProtocols(ctx context.Context, limit int) ([]models.DeFiProtocol, error) {
	var out []models.DeFiProtocol
	if err := c.getList(ctx, "/api/v1/defi/top", limit, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TopCollections(ctx context.Context, limit int) ([]models.NftCollection, error) {
	var out []models.NftCollection
	if err := c.getList(ctx, "/api/v1/nft/top", limit, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DashboardMetrics(ctx context.Context) (models.DashboardMetrics, error) {
	var out models.DashboardMetrics
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/v1/metrics")
	if err != nil {
		return models.DashboardMetrics{}, models.NewFetchError(sourceName, err)
	}
	if resp.IsError() {
		return models.DashboardMetrics{}, models.NewFetchError(sourceName, fmt.Errorf("status %d", resp.StatusCode()))
	}
	return out, nil
}

func (c *Client) getList(ctx context.Context, path string, limit int, dest interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(dest).
		Get(path)
	if err != nil {
		return models.NewFetchError(sourceName, err)
	}
	if resp.IsError() {
		return models.NewFetchError(sourceName, fmt.Errorf("status %d", resp.StatusCode()))
	}
	return nil
}

var _ repository.MetricSource = (*Client)(nil)
