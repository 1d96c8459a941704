package validation

import (
	"encoding/json"
	"errors"
	"strings"
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error collects every field-level violation found in a request body, so a
// caller sees all of them at once instead of fixing one per round trip.
type Error struct {
	Fields []FieldError
}

func (e *Error) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *Error) Empty() bool { return len(e.Fields) == 0 }

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return strings.Join(parts, "; ")
}

// FromBindError translates a JSON decode failure into the same field-level
// shape the Validate methods produce. A type mismatch names the offending
// field; anything else is reported against the body as a whole.
func FromBindError(err error) *Error {
	verr := &Error{}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr.Add(typeErr.Field, "must be of type "+typeErr.Type.String())
		return verr
	}
	verr.Add("body", "malformed JSON")
	return verr
}
