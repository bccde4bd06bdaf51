package models

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" Monday ")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)
	assert.Equal(t, "Monday", day.Title())

	_, err = ParseWeekday("sunday")
	assert.Error(t, err)

	days := Weekdays()
	require.Len(t, days, 6)
	days[0] = "sunday"
	assert.Equal(t, Monday, Weekdays()[0])
}

func TestNewFormatName(t *testing.T) {
	name := NewFormatName("2024-2025", "A")
	assert.Regexp(t, regexp.MustCompile(`^Timetable Format - 2024-2025 - A - [0-9A-F]{6}$`), name)
	assert.NotEqual(t, name, NewFormatName("2024-2025", "A"))
}

func TestFormatJSONMatchesStoredShape(t *testing.T) {
	raw := `{"format_name":"Standard","year_id":1,"batch_id":2,"format_data":{"monday":[1,3,1],"saturday":[]}}`

	var format Format
	require.NoError(t, json.Unmarshal([]byte(raw), &format))
	assert.Equal(t, []int{1, 3, 1}, format.Codes(Monday))
	assert.Empty(t, format.Codes(Saturday))
	assert.Nil(t, format.Codes(Friday))

	var missing *Format
	assert.Nil(t, missing.Codes(Monday))
}
