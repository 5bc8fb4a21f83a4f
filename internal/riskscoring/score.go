package riskscoring

import (
	"math"
	"sort"
)

// ScaleMode selects the final scaling of the aggregated score.
type ScaleMode int

const (
	// ScaleLegacy reproduces the historical formula
	// round((sum(score*weight) / sum(weight)) * 100). The sub-scores
	// are already on a 0-100 scale, so results routinely land far
	// above 100 whenever the answered weights sum below 1.0. Seeded
	// templates and stored scores depend on this arithmetic, so it
	// stays the default; the classifier reports out-of-band values as
	// UNKNOWN.
	ScaleLegacy ScaleMode = iota

	// ScaleNormalized drops the trailing x100, keeping results inside
	// [0,100] for non-negative weights.
	ScaleNormalized
)

// Calculate reduces a response set to a single weighted risk score.
// Questions with a zero or absent weight are skipped entirely: they
// contribute nothing and do not count toward the normalization
// denominator. A set with no weighted answers scores exactly 0.
func Calculate(responses ResponseSet, weights Weights, rules Rules, mode ScaleMode) int {
	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var totalScore, totalWeight float64
	for _, id := range ids {
		weight := weights.Questions[id]
		if weight <= 0 {
			continue
		}
		totalScore += rules.Score(id, responses[id]) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	mean := totalScore / totalWeight
	if mode == ScaleLegacy {
		mean *= 100
	}
	return int(math.Round(mean))
}
