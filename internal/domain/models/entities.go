package models

import "time"

// SignalType classifies what a signal is reacting to.
type SignalType string

const (
	SignalTrend    SignalType = "trend"
	SignalMomentum SignalType = "momentum"
	SignalReversal SignalType = "reversal"
	SignalVolume   SignalType = "volume"
)

// SignalLevel grades a signal by strength and confidence.
type SignalLevel string

const (
	LevelWeak     SignalLevel = "weak"
	LevelModerate SignalLevel = "moderate"
	LevelStrong   SignalLevel = "strong"
)

// Signal is a single ecosystem signal tied to an asset symbol.
// Strength is always within [0,100]; constructors clamp out-of-range values.
type Signal struct {
	ID        string      `json:"id"`
	Asset     string      `json:"asset"`
	Type      SignalType  `json:"type"`
	Strength  int         `json:"strength"`
	Level     SignalLevel `json:"level,omitempty"`
	Status    string      `json:"status,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Project is one ecosystem project ranked by activity score.
type Project struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    int     `json:"score"`
	Change   float64 `json:"change"`
}

// DeFiProtocol describes a DeFi protocol snapshot ranked by TVL.
type DeFiProtocol struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	TVL       float64 `json:"tvl"`
	Volume24h float64 `json:"volume_24h"`
	Change24h float64 `json:"change_24h"`
	Users     int     `json:"users"`
}

// NftCollection describes an NFT collection snapshot ranked by 24h volume.
// Floor price and volumes are in native-token units.
type NftCollection struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	FloorPrice float64 `json:"floor_price"`
	Volume24h  float64 `json:"volume_24h"`
	Volume7d   float64 `json:"volume_7d"`
	Volume30d  float64 `json:"volume_30d"`
	Change24h  float64 `json:"change_24h"`
	Holders    int     `json:"holders"`
}

// DashboardMetrics is the headline snapshot shown on the dashboard.
type DashboardMetrics struct {
	TotalSignals    int     `json:"total_signals"`
	ActiveProjects  int     `json:"active_projects"`
	MarketSentiment string  `json:"market_sentiment"`
	SentimentScore  int     `json:"sentiment_score"`
	SolanaActivity  float64 `json:"solana_activity"`
}

// ClampStrength folds an arbitrary score into the valid signal strength range.
func ClampStrength(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
