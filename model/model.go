package model

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// SurveyResponse is one submitted answer set. Field order is the order in
// which missing answers are reported. created_at is assigned by the database
// and never taken from the request.
type SurveyResponse struct {
	ID               int64  `json:"-"`
	Timestamp        Answer `json:"timestamp" validate:"answered"`
	Interested       Answer `json:"interested" validate:"answered"`
	Players          Answer `json:"players" validate:"answered"`
	Duration         Answer `json:"duration" validate:"answered"`
	PuzzlePercentage Answer `json:"puzzle_percentage" validate:"answered"`
	Price            Answer `json:"price" validate:"answered"`
}

// Answer is the text of a single survey answer. JSON strings are kept
// verbatim, numbers keep their literal form, true becomes "true".
// false, null and 0 decode to the empty answer.
type Answer string

func (a *Answer) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*a = ""
	case string:
		*a = Answer(v)
	case bool:
		if v {
			*a = "true"
		} else {
			*a = ""
		}
	case float64:
		if v == 0 {
			*a = ""
		} else {
			*a = Answer(bytes.TrimSpace(data))
		}
	case []any:
		return &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf(*a)}
	default:
		return &json.UnmarshalTypeError{Value: "object", Type: reflect.TypeOf(*a)}
	}
	return nil
}

// Answered reports whether the answer has any non-blank text.
func (a Answer) Answered() bool {
	return strings.TrimSpace(string(a)) != ""
}

func (a Answer) String() string {
	return string(a)
}
