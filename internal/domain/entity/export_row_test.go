package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRow_SetKeepsColumnOrder(t *testing.T) {
	row := NewExportRow().
		Set("ID", 1).
		Set("Tên", "a").
		Set("Trạng Thái", "active")

	assert.Equal(t, []string{"ID", "Tên", "Trạng Thái"}, row.Labels())

	// Overwriting keeps the original position.
	row.Set("Tên", "b")
	assert.Equal(t, []string{"ID", "Tên", "Trạng Thái"}, row.Labels())
	name, _ := row.Get("Tên")
	assert.Equal(t, "b", name)
}

func TestExportRow_JSONRoundTripPreservesOrder(t *testing.T) {
	row := NewExportRow().
		Set("Zulu", "z").
		Set("Alpha", 1).
		Set("Mã", nil)

	encoded, err := json.Marshal(row)
	require.NoError(t, err)

	var decoded ExportRow
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, row.Labels(), decoded.Labels())
}

func TestFilterCriteria_DateBoundsPushDateToToEndOfDay(t *testing.T) {
	c := FilterCriteria{DateFrom: "2025-01-10", DateTo: "2025-01-31"}

	from, to, hasFrom, hasTo := c.DateBounds()
	require.True(t, hasFrom)
	require.True(t, hasTo)
	assert.Equal(t, 0, from.Hour())
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Minute())
	assert.Equal(t, 31, to.Day())
}

func TestFilterCriteria_MalformedBoundIsUnset(t *testing.T) {
	c := FilterCriteria{DateFrom: "soon"}

	_, _, hasFrom, hasTo := c.DateBounds()
	assert.False(t, hasFrom)
	assert.False(t, hasTo)
}

func TestParseTimestamp_ToleratesLayoutDrift(t *testing.T) {
	for _, input := range []string{
		"2025-03-09T14:05:06.123Z",
		"2025-03-09T14:05:06",
		"2025-03-09T14:05:06.000",
		"2025-03-09",
	} {
		_, ok := ParseTimestamp(input)
		assert.True(t, ok, input)
	}

	_, ok := ParseTimestamp("")
	assert.False(t, ok)
	_, ok = ParseTimestamp("09/03/2025")
	assert.False(t, ok)
}
