package repository

// SeriesKind identifies a daily time-series a MetricSource can serve.
type SeriesKind string

const (
	KindSignals  SeriesKind = "signals"
	KindActivity SeriesKind = "activity"
	KindPrice    SeriesKind = "price"
	KindVolume   SeriesKind = "volume"
)

// MaxWindowDays caps the lookback window an adapter will serve.
const MaxWindowDays = 365

// IsValidSeriesKind returns true if k is a supported series kind.
func IsValidSeriesKind(k SeriesKind) bool {
	switch k {
	case KindSignals, KindActivity, KindPrice, KindVolume:
		return true
	default:
		return false
	}
}

// ClampWindow folds a window into [1, MaxWindowDays]. Non-positive windows
// are rejected by adapters before clamping applies; this only bounds the top.
func ClampWindow(days int) int {
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}
