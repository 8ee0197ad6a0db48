package timezone_test

import (
	"dueday/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	assert.False(t, now.IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestLoad(t *testing.T) {
	original := timezone.GetLocation()
	defer timezone.Load(original.String())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty falls back to UTC", input: "", expected: "UTC"},
		{name: "unknown falls back to UTC", input: "Mars/Olympus_Mons", expected: "UTC"},
		{name: "valid IANA name", input: "Asia/Shanghai", expected: "Asia/Shanghai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := timezone.Load(tt.input)

			assert.Equal(t, tt.expected, loc.String())
			assert.Equal(t, tt.expected, timezone.GetLocation().String())
		})
	}
}

func TestToAppTimeKeepsInstant(t *testing.T) {
	original := timezone.GetLocation()
	defer timezone.Load(original.String())

	timezone.Load("Asia/Shanghai")

	utc := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	local := timezone.ToAppTime(utc)

	assert.True(t, local.Equal(utc))
	assert.Equal(t, 9, local.Hour())
}

func TestFormatAndParse(t *testing.T) {
	original := timezone.GetLocation()
	defer timezone.Load(original.String())

	timezone.Load("UTC")

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 12:00:00", timezone.Format(testTime, "2006-01-02 15:04:05"))

	parsed, err := timezone.Parse("2006-01-02T15:04", "2024-01-01T09:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
}
