package domain

import (
	"errors"
	"fmt"
)

var (
	errClockTimeTooShort = errors.New("time code shorter than 3 characters")
	errHourOutOfRange    = errors.New("hour out of range [0,23]")
	errMinuteOutOfRange  = errors.New("minute out of range [0,59]")
)

// ValidationError reports a malformed or out-of-order request date range.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DateTypeError reports a date argument of an unsupported Go type. Date
// arguments must be a time.Time or an ISO-8601 "YYYY-MM-DD" string.
type DateTypeError struct {
	Argument string
	Value    any
}

func (e *DateTypeError) Error() string {
	return fmt.Sprintf("%s must be a string or time.Time, got %T", e.Argument, e.Value)
}

// UnknownFieldError reports a category code the schema does not define.
// Unknown codes are a hard error rather than being dropped: a new upstream
// column means the schema is stale and silently losing data.
type UnknownFieldError struct {
	Code string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown category code %q", e.Code)
}

// CoercionError reports a raw value that could not be parsed into its
// field's declared type.
type CoercionError struct {
	Field string
	Type  FieldType
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coerce field %q: %q is not a valid %s: %v", e.Field, e.Value, e.Type, e.Err)
	}
	return fmt.Sprintf("coerce field %q: %q is not a valid %s", e.Field, e.Value, e.Type)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ResponseError reports an error envelope from the upstream service: a JSON
// object where an array of rows was expected. Body carries the envelope
// content verbatim.
type ResponseError struct {
	Body string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("upstream service returned an error: %s", e.Body)
}
