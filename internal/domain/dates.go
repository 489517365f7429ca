package domain

import "time"

// NormalizeDateRange validates a request date range and returns both bounds
// as ISO-8601 "YYYY-MM-DD" strings. Each argument may be a time.Time (the
// date portion is used) or an already-formatted 10-character ISO string; any
// other type fails with [DateTypeError], a wrong-length string or a start
// after the end with [ValidationError]. ISO dates order lexicographically
// the same as chronologically, so the bounds compare as plain strings.
func NormalizeDateRange(start, end any) (string, string, error) {
	startISO, err := normalizeDateInput(start, "start date")
	if err != nil {
		return "", "", err
	}
	endISO, err := normalizeDateInput(end, "end date")
	if err != nil {
		return "", "", err
	}
	if startISO > endISO {
		return "", "", &ValidationError{Reason: "start date must be before end date"}
	}
	return startISO, endISO, nil
}

func normalizeDateInput(v any, argument string) (string, error) {
	switch d := v.(type) {
	case time.Time:
		return d.Format(isoDateLayout), nil
	case string:
		if len(d) != len(isoDateLayout) {
			return "", &ValidationError{Reason: argument + " must be in the form YYYY-MM-DD"}
		}
		return d, nil
	default:
		return "", &DateTypeError{Argument: argument, Value: v}
	}
}

// LastDays returns the ISO date range covering the n most recent days,
// ending today. n <= 1 yields a single-day range.
func LastDays(n int) (string, string) {
	if n < 1 {
		n = 1
	}
	today := clock.Now().UTC()
	start := today.AddDate(0, 0, -(n - 1))
	return start.Format(isoDateLayout), today.Format(isoDateLayout)
}
