// Package riskscoring holds the scoring engine for vendor assessments:
// question schemas, response validation, weighted risk calculation and
// risk level classification. Everything in this package is a pure
// function over immutable inputs; persistence and transport live in the
// service and controller layers.
package riskscoring

import "encoding/json"

type QuestionType string

const (
	TypeYesNo       QuestionType = "yesno"
	TypeSelect      QuestionType = "select"
	TypeMultiSelect QuestionType = "multiselect"
	TypeText        QuestionType = "text"
	TypeNumber      QuestionType = "number"
	TypeDate        QuestionType = "date"
)

// Question is one item inside a template. IDs are unique within a
// template; Options is only meaningful for select/multiselect.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Section groups questions for weighting and display purposes.
type Section struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Template is the question schema of one assessment form.
type Template struct {
	Sections []Section `json:"sections"`
}

// Weights carries the contribution factor of each question. Section
// weights are informational only: the calculator never consults them.
// Both maps should each sum to roughly 1.0; template authoring is
// responsible for that, scoring does not enforce it.
type Weights struct {
	Sections  map[string]float64 `json:"sections"`
	Questions map[string]float64 `json:"questions"`
}

// Kind discriminates the response union. It reflects the runtime shape
// of the submitted JSON value, not the question's declared type; the
// scorer dispatches on it the same way the validator does.
type Kind int

const (
	KindEmpty Kind = iota // absent, null, or an unrecognized shape
	KindBool
	KindText
	KindTextList
	KindNumber
)

// Response is one answer, decoded once from raw JSON into a closed
// tagged union so downstream code never re-inspects runtime types.
type Response struct {
	Kind   Kind
	Bool   bool
	Text   string
	List   []string
	Number float64
}

// ResponseSet maps question IDs to answers for one assessment
// submission.
type ResponseSet map[string]Response

// UnmarshalJSON discriminates by JSON shape: booleans, strings, numbers
// and arrays of strings map to their kinds; null and anything else
// (objects, mixed arrays) decode as KindEmpty and score neutrally.
func (r *Response) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = responseFromValue(v)
	return nil
}

func (r Response) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindBool:
		return json.Marshal(r.Bool)
	case KindText:
		return json.Marshal(r.Text)
	case KindTextList:
		return json.Marshal(r.List)
	case KindNumber:
		return json.Marshal(r.Number)
	default:
		return []byte("null"), nil
	}
}

func responseFromValue(v interface{}) Response {
	switch val := v.(type) {
	case bool:
		return Response{Kind: KindBool, Bool: val}
	case string:
		return Response{Kind: KindText, Text: val}
	case float64:
		return Response{Kind: KindNumber, Number: val}
	case []interface{}:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Response{}
			}
			list = append(list, s)
		}
		return Response{Kind: KindTextList, List: list}
	default:
		return Response{}
	}
}

// Bool returns a boolean response value.
func BoolResponse(v bool) Response { return Response{Kind: KindBool, Bool: v} }

// Text returns a string response value.
func TextResponse(v string) Response { return Response{Kind: KindText, Text: v} }

// TextList returns a multiselect response value.
func TextListResponse(v ...string) Response { return Response{Kind: KindTextList, List: v} }

// Number returns a numeric response value.
func NumberResponse(v float64) Response { return Response{Kind: KindNumber, Number: v} }

// isEmpty reports whether a response counts as unanswered: absent
// values, JSON null, and the empty string all do.
func (r Response) isEmpty() bool {
	return r.Kind == KindEmpty || (r.Kind == KindText && r.Text == "")
}
