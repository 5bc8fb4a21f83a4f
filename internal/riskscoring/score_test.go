package riskscoring

import (
	"encoding/json"
	"testing"
)

func TestCalculateNoWeightedAnswers(t *testing.T) {
	rules := DefaultRules()
	weights := Weights{Questions: map[string]float64{"q1": 0.5}}

	if got := Calculate(ResponseSet{}, weights, rules, ScaleLegacy); got != 0 {
		t.Errorf("empty responses = %d, want 0", got)
	}

	// Answers exist but none carries a weight.
	responses := ResponseSet{"q2": BoolResponse(true), "q3": TextResponse("Yes")}
	if got := Calculate(responses, weights, rules, ScaleLegacy); got != 0 {
		t.Errorf("unweighted responses = %d, want 0", got)
	}
}

// The legacy formula multiplies the already-0-100 weighted mean by 100
// before rounding, exactly as the historical implementation did. The
// resulting out-of-band values classify as UNKNOWN; ScaleNormalized is
// the corrected alternative for deployments that want in-band scores.
func TestCalculateLegacyScale(t *testing.T) {
	rules := DefaultRules()
	responses := ResponseSet{
		"q1": BoolResponse(true),
		"q2": BoolResponse(false),
	}
	weights := Weights{Questions: map[string]float64{"q1": 0.5, "q2": 0.5}}

	got := Calculate(responses, weights, rules, ScaleLegacy)
	if got != 5000 {
		t.Errorf("legacy score = %d, want 5000", got)
	}
	if lvl := Classify(got); lvl != LevelUnknown {
		t.Errorf("Classify(%d) = %q, want UNKNOWN", got, lvl)
	}
}

func TestCalculateNormalizedScale(t *testing.T) {
	rules := DefaultRules()
	responses := ResponseSet{
		"q1": BoolResponse(true),
		"q2": BoolResponse(false),
	}
	weights := Weights{Questions: map[string]float64{"q1": 0.5, "q2": 0.5}}

	got := Calculate(responses, weights, rules, ScaleNormalized)
	if got != 50 {
		t.Errorf("normalized score = %d, want 50", got)
	}
	if lvl := Classify(got); lvl != LevelMedium {
		t.Errorf("Classify(%d) = %q, want MEDIUM", got, lvl)
	}
}

func TestCalculateSkipsZeroWeight(t *testing.T) {
	rules := DefaultRules()
	responses := ResponseSet{
		"q1": BoolResponse(false), // would drag the score up if counted
		"q2": BoolResponse(true),
	}
	weights := Weights{Questions: map[string]float64{"q1": 0, "q2": 0.5}}

	// Only q2 contributes: mean 20, legacy x100.
	if got := Calculate(responses, weights, rules, ScaleLegacy); got != 2000 {
		t.Errorf("score = %d, want 2000", got)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	rules := DefaultRules()
	responses := ResponseSet{
		"q1": TextResponse("1-3 years"),
		"q4": BoolResponse(true),
		"q8": TextListResponse("ISO 27001", "SOC 2"),
	}
	weights := Weights{Questions: map[string]float64{"q1": 0.05, "q4": 0.10, "q8": 0.10}}

	first := Calculate(responses, weights, rules, ScaleLegacy)
	for i := 0; i < 10; i++ {
		if got := Calculate(responses, weights, rules, ScaleLegacy); got != first {
			t.Fatalf("run %d = %d, want %d", i, got, first)
		}
	}
}

func TestCalculateFullGeneralSubmission(t *testing.T) {
	rules := DefaultRules()
	builtin := BuiltinTemplates()[0]

	raw := []byte(`{
		"q1": "More than 10 years",
		"q2": "More than 1000",
		"q3": "More than $100M",
		"q4": true,
		"q5": false,
		"q6": true,
		"q7": true,
		"q8": ["ISO 27001", "SOC 2"],
		"q9": true,
		"q10": true,
		"q11": "Same day",
		"q12": true
	}`)
	var responses ResponseSet
	if err := json.Unmarshal(raw, &responses); err != nil {
		t.Fatal(err)
	}

	if result := Validate(responses, builtin.Template); !result.IsValid {
		t.Fatalf("expected valid submission, got %v", result.Errors)
	}

	// Weighted sum: q1 10*.05 + q2 10*.05 + q3 10*.05 + q4 20*.10 +
	// q5 80*.10 + q6 20*.05 + q7 20*.15 + q8 12.5*.10 + q9 20*.10 +
	// q10 20*.10 + q11 50*.10 + q12 20*.05 = 26.75 over weight 1.0.
	// q11 has no select rule, so it scores neutral 50.
	if got := Calculate(responses, builtin.Weights, rules, ScaleLegacy); got != 2675 {
		t.Errorf("legacy score = %d, want 2675", got)
	}
	if got := Calculate(responses, builtin.Weights, rules, ScaleNormalized); got != 27 {
		t.Errorf("normalized score = %d, want 27", got)
	}
}
