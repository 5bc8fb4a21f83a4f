package riskscoring

import (
	"encoding/json"
	"strings"
	"testing"
)

func testTemplate() Template {
	return Template{
		Sections: []Section{
			{
				Title: "Controls",
				Questions: []Question{
					{ID: "q1", Text: "Do you have an incident response plan?", Type: TypeYesNo, Required: true},
					{ID: "q2", Text: "How do you encrypt data at rest?", Type: TypeSelect, Options: []string{"AES-256", "AES-128", "No encryption"}, Required: true},
					{ID: "q3", Text: "Which certifications do you hold?", Type: TypeMultiSelect, Options: []string{"ISO 27001", "SOC 2", "None"}, Required: false},
				},
			},
			{
				Title: "Profile",
				Questions: []Question{
					{ID: "q4", Text: "Describe your data handling practices", Type: TypeText, Required: false},
					{ID: "q5", Text: "How many employees do you have?", Type: TypeNumber, Required: false},
					{ID: "q6", Text: "When was your last audit?", Type: TypeDate, Required: false},
				},
			},
		},
	}
}

func TestValidateCompleteSubmission(t *testing.T) {
	responses := ResponseSet{
		"q1": BoolResponse(true),
		"q2": TextResponse("AES-256"),
		"q3": TextListResponse("ISO 27001", "SOC 2"),
		"q4": TextResponse("Encrypted at rest and in transit"),
		"q5": NumberResponse(250),
		"q6": TextResponse("2026-03-15"),
	}

	result := Validate(responses, testTemplate())
	if !result.IsValid {
		t.Fatalf("expected valid, got errors: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v, want none", result.Errors)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	tests := []struct {
		name      string
		responses ResponseSet
	}{
		{"absent", ResponseSet{"q2": TextResponse("AES-256")}},
		{"null", ResponseSet{"q1": {}, "q2": TextResponse("AES-256")}},
		{"empty string", ResponseSet{"q1": TextResponse(""), "q2": TextResponse("AES-256")}},
	}
	for _, tt := range tests {
		result := Validate(tt.responses, testTemplate())
		if result.IsValid {
			t.Errorf("%s: expected invalid", tt.name)
			continue
		}
		found := false
		for _, e := range result.Errors {
			if strings.Contains(e, "incident response plan") && strings.Contains(e, "not answered") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: missing required error for q1, got %v", tt.name, result.Errors)
		}
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		resp ResponseSet
	}{
		{"string for yesno", ResponseSet{"q1": TextResponse("yes"), "q2": TextResponse("AES-256")}},
		{"number for select", ResponseSet{"q1": BoolResponse(true), "q2": NumberResponse(1)}},
		{"select outside options", ResponseSet{"q1": BoolResponse(true), "q2": TextResponse("ROT13")}},
		{"multiselect outside options", ResponseSet{"q1": BoolResponse(true), "q2": TextResponse("AES-256"), "q3": TextListResponse("ISO 27001", "FedRAMP")}},
		{"bool for text", ResponseSet{"q1": BoolResponse(true), "q2": TextResponse("AES-256"), "q4": BoolResponse(true)}},
		{"string for number", ResponseSet{"q1": BoolResponse(true), "q2": TextResponse("AES-256"), "q5": TextResponse("many")}},
		{"unparseable date", ResponseSet{"q1": BoolResponse(true), "q2": TextResponse("AES-256"), "q6": TextResponse("last spring")}},
	}
	for _, tt := range tests {
		result := Validate(tt.resp, testTemplate())
		if result.IsValid {
			t.Errorf("%s: expected invalid", tt.name)
			continue
		}
		found := false
		for _, e := range result.Errors {
			if strings.Contains(e, "Invalid response type") {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: expected a type error, got %v", tt.name, result.Errors)
		}
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	// q1 missing, q2 missing, q3 mistyped: all three reported at once.
	responses := ResponseSet{"q3": TextResponse("ISO 27001")}
	result := Validate(responses, testTemplate())
	if result.IsValid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 3 {
		t.Errorf("errors = %d (%v), want 3", len(result.Errors), result.Errors)
	}
}

func TestValidateIgnoresUnknownQuestions(t *testing.T) {
	responses := ResponseSet{
		"q1":      BoolResponse(true),
		"q2":      TextResponse("AES-256"),
		"qLegacy": TextResponse("whatever"),
	}
	result := Validate(responses, testTemplate())
	if !result.IsValid {
		t.Errorf("extra keys should be ignored, got %v", result.Errors)
	}
}

func TestValidateDateFormats(t *testing.T) {
	template := Template{Sections: []Section{{
		Title:     "Dates",
		Questions: []Question{{ID: "d1", Text: "Audit date", Type: TypeDate, Required: true}},
	}}}

	for _, ok := range []string{"2026-03-15", "2026-03-15T10:30:00Z", "2026-03-15T10:30:00"} {
		if result := Validate(ResponseSet{"d1": TextResponse(ok)}, template); !result.IsValid {
			t.Errorf("%q should be a valid date: %v", ok, result.Errors)
		}
	}
	if result := Validate(ResponseSet{"d1": NumberResponse(20260315)}, template); result.IsValid {
		t.Error("numeric value should not satisfy a date question")
	}
}

func TestResponseSetDecode(t *testing.T) {
	raw := []byte(`{
		"a": true,
		"b": "text",
		"c": ["x", "y"],
		"d": 4.5,
		"e": null,
		"f": {"nested": 1},
		"g": ["x", 2]
	}`)
	var rs ResponseSet
	if err := json.Unmarshal(raw, &rs); err != nil {
		t.Fatal(err)
	}

	wantKinds := map[string]Kind{
		"a": KindBool,
		"b": KindText,
		"c": KindTextList,
		"d": KindNumber,
		"e": KindEmpty,
		"f": KindEmpty,
		"g": KindEmpty, // mixed arrays have no valid shape
	}
	for id, want := range wantKinds {
		if got := rs[id].Kind; got != want {
			t.Errorf("kind of %q = %d, want %d", id, got, want)
		}
	}
	if rs["d"].Number != 4.5 {
		t.Errorf("number = %v, want 4.5", rs["d"].Number)
	}
	if len(rs["c"].List) != 2 || rs["c"].List[0] != "x" {
		t.Errorf("list = %v, want [x y]", rs["c"].List)
	}
}
