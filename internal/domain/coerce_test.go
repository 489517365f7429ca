package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateAndCoerce(t *testing.T) {
	t.Run("mixed row", func(t *testing.T) {
		rows := []RawObservation{{
			"DATE":    "2020-06-01",
			"STATION": "USW00024233",
			"TMAX":    "310",
			"PRCP":    "0.12",
			"WT01":    "1",
			"PGTM":    "01230",
		}}

		recs, err := TranslateAndCoerce(rows)
		require.NoError(t, err)
		require.Len(t, recs, 1)

		rec := recs[0]
		assert.Equal(t, time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), rec["date"])
		assert.Equal(t, "USW00024233", rec["station"])
		assert.Equal(t, 310, rec["max_temp"])
		assert.Equal(t, 0.12, rec["precipitation"])
		assert.Equal(t, true, rec["fog"])
		assert.Equal(t, ClockTime{Hour: 12, Minute: 30}, rec["peak_gust_time"])
	})

	t.Run("unknown category code", func(t *testing.T) {
		rows := []RawObservation{{"XXXX": "1"}}

		_, err := TranslateAndCoerce(rows)
		require.Error(t, err)

		var unknownErr *UnknownFieldError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "XXXX", unknownErr.Code)
	})

	t.Run("non-numeric integer", func(t *testing.T) {
		rows := []RawObservation{{"TMAX": "warm"}}

		_, err := TranslateAndCoerce(rows)
		var coercionErr *CoercionError
		require.ErrorAs(t, err, &coercionErr)
		assert.Equal(t, "max_temp", coercionErr.Field)
		assert.Equal(t, TypeInteger, coercionErr.Type)
		assert.Equal(t, "warm", coercionErr.Value)
	})

	t.Run("non-numeric real", func(t *testing.T) {
		rows := []RawObservation{{"PRCP": "trace"}}

		_, err := TranslateAndCoerce(rows)
		var coercionErr *CoercionError
		require.ErrorAs(t, err, &coercionErr)
		assert.Equal(t, "precipitation", coercionErr.Field)
	})

	t.Run("malformed date", func(t *testing.T) {
		rows := []RawObservation{{"DATE": "06/01/2020"}}

		_, err := TranslateAndCoerce(rows)
		var coercionErr *CoercionError
		require.ErrorAs(t, err, &coercionErr)
		assert.Equal(t, TypeDate, coercionErr.Type)
	})

	t.Run("row order preserved", func(t *testing.T) {
		rows := []RawObservation{
			{"TMAX": "1"},
			{"TMAX": "2"},
			{"TMAX": "3"},
		}

		recs, err := TranslateAndCoerce(rows)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, 1, recs[0]["max_temp"])
		assert.Equal(t, 2, recs[1]["max_temp"])
		assert.Equal(t, 3, recs[2]["max_temp"])
	})

	t.Run("no fill of missing fields", func(t *testing.T) {
		rows := []RawObservation{{"TMAX": "310"}}

		recs, err := TranslateAndCoerce(rows)
		require.NoError(t, err)
		assert.Len(t, recs[0], 1)
	})
}

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "one is true", raw: "1", want: true},
		{name: "padded one is true", raw: " 1 ", want: true},
		{name: "zero is false", raw: "0", want: false},
		{name: "empty is false", raw: "", want: false},
		{name: "true spelling not recognized", raw: "true", want: false},
		{name: "yes not recognized", raw: "yes", want: false},
		{name: "eleven is false", raw: "11", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := TranslateAndCoerce([]RawObservation{{"WT01": tt.raw}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, recs[0]["fog"])
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ClockTime
		wantErr bool
	}{
		{name: "five digits with leading zero", raw: "01230", want: ClockTime{Hour: 12, Minute: 30}},
		{name: "late evening", raw: "02359", want: ClockTime{Hour: 23, Minute: 59}},
		{name: "midnight", raw: "00000", want: ClockTime{Hour: 0, Minute: 0}},
		{name: "four digits overlap slices", raw: "0230", want: ClockTime{Hour: 23, Minute: 30}},
		{name: "four digits without leading zero", raw: "1230", wantErr: true},
		{name: "hour out of range", raw: "02460", wantErr: true},
		{name: "minute out of range", raw: "01299", wantErr: true},
		{name: "too short", raw: "12", wantErr: true},
		{name: "non-digits", raw: "abcde", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClockTime(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClockTime_ErrorSurface(t *testing.T) {
	_, err := TranslateAndCoerce([]RawObservation{{"PGTM": "9999999"}})

	var coercionErr *CoercionError
	require.ErrorAs(t, err, &coercionErr)
	assert.Equal(t, "peak_gust_time", coercionErr.Field)
	assert.Equal(t, TypeTime, coercionErr.Type)
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "09:05", ClockTime{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "23:59", ClockTime{Hour: 23, Minute: 59}.String())
}

func TestClockTime_MarshalJSON(t *testing.T) {
	b, err := ClockTime{Hour: 12, Minute: 30}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"12:30"`, string(b))
}
