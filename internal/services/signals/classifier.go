package signals

import "TrendMatrix/internal/domain/models"

// Classify grades a signal level from its strength.
func Classify(strength int) models.SignalLevel {
	switch {
	case strength >= 75:
		return models.LevelStrong
	case strength >= 40:
		return models.LevelModerate
	default:
		return models.LevelWeak
	}
}
