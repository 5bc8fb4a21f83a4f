package riskscoring

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelLow},
		{30, LevelLow},
		{31, LevelMedium},
		{60, LevelMedium},
		{61, LevelHigh},
		{80, LevelHigh},
		{81, LevelCritical},
		{100, LevelCritical},
		{-1, LevelUnknown},
		{101, LevelUnknown},
		{5000, LevelUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
