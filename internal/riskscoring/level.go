package riskscoring

// Level is the qualitative band derived from a risk score.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
	LevelUnknown  Level = "UNKNOWN"
)

// Classify maps a score to its band. The bands are closed integer
// intervals; anything outside [0,100], including the >100 values the
// legacy scale produces, classifies as UNKNOWN.
func Classify(score int) Level {
	switch {
	case score >= 0 && score <= 30:
		return LevelLow
	case score >= 31 && score <= 60:
		return LevelMedium
	case score >= 61 && score <= 80:
		return LevelHigh
	case score >= 81 && score <= 100:
		return LevelCritical
	default:
		return LevelUnknown
	}
}
