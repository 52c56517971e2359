package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type AnswerKind string

const (
	AnswerKindLabel  AnswerKind = "label"
	AnswerKindNumber AnswerKind = "number"
)

// Answer is the recorded value for a single question: either an option
// label (in whichever language the session ran) or a number.
type Answer struct {
	Kind   AnswerKind `bson:"kind"`
	Label  string     `bson:"label,omitempty"`
	Number float64    `bson:"number,omitempty"`
}

func LabelAnswer(label string) Answer {
	return Answer{Kind: AnswerKindLabel, Label: label}
}

func NumberAnswer(value float64) Answer {
	return Answer{Kind: AnswerKindNumber, Number: value}
}

// IsEmpty reports whether the answer counts as "not given" for required-field
// validation. A blank or whitespace-only label is treated as missing.
func (a Answer) IsEmpty() bool {
	return a.Kind == AnswerKindLabel && strings.TrimSpace(a.Label) == ""
}

// MarshalJSON emits the raw value (string or number) so the submission
// payload carries answers in the same flat shape the ingestion API expects.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == AnswerKindNumber {
		return json.Marshal(a.Number)
	}
	return json.Marshal(a.Label)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*a = NumberAnswer(num)
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*a = LabelAnswer(label)
		return nil
	}
	return fmt.Errorf("answer must be a string or a number, got %s", string(data))
}

// AnswerSet maps question ID to the recorded answer for one session.
type AnswerSet map[string]Answer

// Number returns the numeric value for a question. The second return is
// false when the question is unanswered or the answer is not numeric.
func (s AnswerSet) Number(questionID string) (float64, bool) {
	a, ok := s[questionID]
	if !ok || a.Kind != AnswerKindNumber {
		return 0, false
	}
	return a.Number, true
}

// Label returns the stored option label for a question, if any.
func (s AnswerSet) Label(questionID string) (string, bool) {
	a, ok := s[questionID]
	if !ok || a.Kind != AnswerKindLabel {
		return "", false
	}
	return a.Label, true
}
