package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Integrity(t *testing.T) {
	require.Len(t, Schema, 56)

	codes := make(map[string]bool, len(Schema))
	names := make(map[string]bool, len(Schema))
	for _, f := range Schema {
		assert.False(t, codes[f.Code], "duplicate code %s", f.Code)
		assert.False(t, names[f.Name], "duplicate name %s", f.Name)
		codes[f.Code] = true
		names[f.Name] = true

		assert.NotEmpty(t, f.Code)
		assert.NotEmpty(t, f.Name)
		assert.NotNil(t, f.assign, "field %s has no assignment", f.Code)
	}
}

func TestFieldByCode(t *testing.T) {
	f, ok := FieldByCode("TMAX")
	require.True(t, ok)
	assert.Equal(t, "max_temp", f.Name)
	assert.Equal(t, TypeInteger, f.Type)

	f, ok = FieldByCode("PGTM")
	require.True(t, ok)
	assert.Equal(t, "peak_gust_time", f.Name)
	assert.Equal(t, TypeTime, f.Type)

	_, ok = FieldByCode("NOPE")
	assert.False(t, ok)
}

func TestFieldByName(t *testing.T) {
	f, ok := FieldByName("fog")
	require.True(t, ok)
	assert.Equal(t, "WT01", f.Code)
	assert.Equal(t, TypeBoolean, f.Type)

	_, ok = FieldByName("humidity")
	assert.False(t, ok)
}

func TestFieldType_String(t *testing.T) {
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "real", TypeReal.String())
	assert.Equal(t, "boolean", TypeBoolean.String())
	assert.Equal(t, "date", TypeDate.String())
	assert.Equal(t, "time", TypeTime.String())
	assert.Equal(t, "text", TypeText.String())
	assert.Equal(t, "unknown", FieldType(99).String())
}
