package riskscoring

import (
	"fmt"
	"time"
)

// ValidationResult lists every violation found in one pass. Callers
// must check IsValid before scoring a submission.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks a response set against a template's question schema.
// Violations accumulate rather than short-circuit so the caller can
// present the full list. Responses for question IDs not in the schema
// are ignored.
func Validate(responses ResponseSet, template Template) ValidationResult {
	var errs []string

	for _, section := range template.Sections {
		for _, q := range section.Questions {
			if !q.Required {
				continue
			}
			if resp, ok := responses[q.ID]; !ok || resp.isEmpty() {
				errs = append(errs, fmt.Sprintf("Required question %q is not answered", q.Text))
			}
		}
	}

	for _, section := range template.Sections {
		for _, q := range section.Questions {
			resp, ok := responses[q.ID]
			if !ok || resp.isEmpty() {
				continue
			}
			if !conforms(resp, q) {
				errs = append(errs, fmt.Sprintf("Invalid response type for question %q", q.Text))
			}
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// conforms checks a present, non-empty response against the question's
// declared type. Select and multiselect answers must additionally be
// drawn from the question's options when any are declared.
func conforms(resp Response, q Question) bool {
	switch q.Type {
	case TypeYesNo:
		return resp.Kind == KindBool
	case TypeSelect:
		return resp.Kind == KindText && optionAllowed(resp.Text, q.Options)
	case TypeMultiSelect:
		if resp.Kind != KindTextList {
			return false
		}
		for _, item := range resp.List {
			if !optionAllowed(item, q.Options) {
				return false
			}
		}
		return true
	case TypeText:
		return resp.Kind == KindText
	case TypeNumber:
		return resp.Kind == KindNumber
	case TypeDate:
		return resp.Kind == KindText && parseableDate(resp.Text)
	default:
		return true
	}
}

func optionAllowed(value string, options []string) bool {
	if len(options) == 0 {
		return true
	}
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseableDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
