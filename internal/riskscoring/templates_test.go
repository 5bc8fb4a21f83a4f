package riskscoring

import (
	"math"
	"testing"
)

func TestBuiltinTemplatesCatalog(t *testing.T) {
	builtins := BuiltinTemplates()
	if len(builtins) != 3 {
		t.Fatalf("builtin count = %d, want 3", len(builtins))
	}

	categories := map[string]bool{}
	for _, b := range builtins {
		categories[b.Category] = true
		if b.Name == "" || b.Description == "" {
			t.Errorf("%s: missing catalog metadata", b.Category)
		}
	}
	for _, want := range []string{"GENERAL", "CYBERSECURITY", "FINANCIAL"} {
		if !categories[want] {
			t.Errorf("missing builtin category %s", want)
		}
	}
}

func TestBuiltinWeightsSumToOne(t *testing.T) {
	for _, b := range BuiltinTemplates() {
		var qSum, sSum float64
		for _, w := range b.Weights.Questions {
			qSum += w
		}
		for _, w := range b.Weights.Sections {
			sSum += w
		}
		if math.Abs(qSum-1.0) > 0.001 {
			t.Errorf("%s: question weights sum to %v", b.Name, qSum)
		}
		if math.Abs(sSum-1.0) > 0.001 {
			t.Errorf("%s: section weights sum to %v", b.Name, sSum)
		}
	}
}

func TestBuiltinQuestionsAreWeighted(t *testing.T) {
	for _, b := range BuiltinTemplates() {
		for _, section := range b.Template.Sections {
			if _, ok := b.Weights.Sections[section.Title]; !ok {
				t.Errorf("%s: section %q has no weight", b.Name, section.Title)
			}
			for _, q := range section.Questions {
				if _, ok := b.Weights.Questions[q.ID]; !ok {
					t.Errorf("%s: question %s has no weight", b.Name, q.ID)
				}
				switch q.Type {
				case TypeSelect, TypeMultiSelect:
					if len(q.Options) == 0 {
						t.Errorf("%s: question %s declares %s without options", b.Name, q.ID, q.Type)
					}
				}
			}
		}
	}
}
