package domain

import (
	"strconv"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// TranslateAndCoerce maps each raw row's category codes to descriptive field
// names and parses every string value into its declared type. Row order is
// preserved and no missing fields are filled in; that is [Normalize]'s job.
// A code absent from [Schema] fails the whole call with [UnknownFieldError],
// an unparseable value with [CoercionError].
func TranslateAndCoerce(rows []RawObservation) ([]Record, error) {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(row))
		for code, raw := range row {
			f, ok := FieldByCode(code)
			if !ok {
				return nil, &UnknownFieldError{Code: code}
			}
			v, err := coerceValue(f, raw)
			if err != nil {
				return nil, err
			}
			rec[f.Name] = v
		}
		out = append(out, rec)
	}
	return out, nil
}

// coerceValue parses a raw string into the field's declared type.
func coerceValue(f *Field, raw string) (any, error) {
	switch f.Type {
	case TypeText:
		return raw, nil
	case TypeInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &CoercionError{Field: f.Name, Type: f.Type, Value: raw, Err: err}
		}
		return n, nil
	case TypeReal:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &CoercionError{Field: f.Name, Type: f.Type, Value: raw, Err: err}
		}
		return x, nil
	case TypeBoolean:
		// Single-sentinel convention: "1" (trimmed) is true, anything else
		// is false. The dataset has no other truthy spelling.
		return strings.TrimSpace(raw) == "1", nil
	case TypeDate:
		t, err := time.Parse(isoDateLayout, raw)
		if err != nil {
			return nil, &CoercionError{Field: f.Name, Type: f.Type, Value: raw, Err: err}
		}
		return t, nil
	case TypeTime:
		ct, err := parseClockTime(raw)
		if err != nil {
			return nil, &CoercionError{Field: f.Name, Type: f.Type, Value: raw, Err: err}
		}
		return ct, nil
	default:
		return nil, &CoercionError{Field: f.Name, Type: f.Type, Value: raw}
	}
}

// parseClockTime decodes the fixed-width GHCN time encoding: the first three
// characters are the hour, the last two the minute ("01230" -> 12:30). The
// slices overlap on four-character input; that matches the upstream layout
// and must not be "fixed" to a HHMM split.
func parseClockTime(s string) (ClockTime, error) {
	if len(s) < 3 {
		return ClockTime{}, errClockTimeTooShort
	}
	hour, err := strconv.Atoi(s[:3])
	if err != nil {
		return ClockTime{}, err
	}
	minute, err := strconv.Atoi(s[len(s)-2:])
	if err != nil {
		return ClockTime{}, err
	}
	if hour < 0 || hour > 23 {
		return ClockTime{}, errHourOutOfRange
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, errMinuteOutOfRange
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}
