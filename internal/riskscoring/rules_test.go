package riskscoring

import "testing"

func TestScoreBoolIgnoresQuestionID(t *testing.T) {
	rules := DefaultRules()
	for _, id := range []string{"q1", "q99", "not-a-question"} {
		if got := rules.Score(id, BoolResponse(true)); got != 20 {
			t.Errorf("Score(%q, true) = %v, want 20", id, got)
		}
		if got := rules.Score(id, BoolResponse(false)); got != 80 {
			t.Errorf("Score(%q, false) = %v, want 80", id, got)
		}
	}
}

func TestScoreSelect(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		id   string
		resp string
		want float64
	}{
		{"q1", "Less than 1 year", 80},
		{"q1", "More than 10 years", 10},
		{"q5", "Yes", 90}, // bankruptcy history inverts the usual yes/no weighting
		{"q1_financial", "AAA", 5},
		{"q1_financial", "Below B", 95},
		{"q1", "never an option", 50},   // unknown literal
		{"q404", "Yes", 50},             // unknown question
		{"q11_network", "On-demand", 60},
	}
	for _, tt := range tests {
		if got := rules.Score(tt.id, TextResponse(tt.resp)); got != tt.want {
			t.Errorf("Score(%q, %q) = %v, want %v", tt.id, tt.resp, got, tt.want)
		}
	}
}

func TestScoreMultiSelectMean(t *testing.T) {
	rules := DefaultRules()

	if got := rules.Score("q8", TextListResponse("ISO 27001", "SOC 2")); got != 12.5 {
		t.Errorf("certification mean = %v, want 12.5", got)
	}
	if got := rules.Score("q8", TextListResponse("None")); got != 80 {
		t.Errorf("None = %v, want 80", got)
	}
	// Unknown elements fall back to neutral inside the mean.
	if got := rules.Score("q8", TextListResponse("ISO 27001", "FedRAMP")); got != 30 {
		t.Errorf("mean with unknown element = %v, want 30", got)
	}
	if got := rules.Score("q404", TextListResponse("ISO 27001")); got != 50 {
		t.Errorf("unknown multiselect question = %v, want 50", got)
	}
}

func TestScoreNeutralFallbacks(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name string
		resp Response
	}{
		{"empty", Response{}},
		{"empty string", TextResponse("")},
		{"number without rule", NumberResponse(7500)},
	}
	for _, tt := range tests {
		if got := rules.Score("q1", tt.resp); got != 50 {
			t.Errorf("%s: Score = %v, want 50", tt.name, got)
		}
	}
}

func TestScoreNumberRule(t *testing.T) {
	rules := Rules{
		Neutral: 50,
		Number: map[string]func(float64) float64{
			"uptime": func(v float64) float64 {
				if v >= 99.9 {
					return 10
				}
				return 70
			},
		},
	}
	if got := rules.Score("uptime", NumberResponse(99.95)); got != 10 {
		t.Errorf("uptime 99.95 = %v, want 10", got)
	}
	if got := rules.Score("uptime", NumberResponse(95)); got != 70 {
		t.Errorf("uptime 95 = %v, want 70", got)
	}
}
