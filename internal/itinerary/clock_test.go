package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayover(t *testing.T) {
	testCases := []struct {
		arrival   string
		departure string
		expected  string
	}{
		{"10:00", "11:30", "1h 30m"},
		{"23:00", "01:00", "2h 0m"},
		{"10:00", "10:00", "0m"},
		{"11:00", "01:00", "14h 0m"},
		{"07:40", "14:20", "6h 40m"},
		{"12:15", "12:50", "35m"},
		{"00:01", "00:00", "23h 59m"},
	}

	for _, tc := range testCases {
		t.Run(tc.arrival+"->"+tc.departure, func(t *testing.T) {
			got, err := Layover(tc.arrival, tc.departure)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLayover_MalformedTime(t *testing.T) {
	for _, bad := range []string{"", "1000", "25:00", "10:60", "ab:cd", "10:5", "-1:00"} {
		t.Run(bad, func(t *testing.T) {
			_, err := Layover(bad, "10:00")
			assert.ErrorIs(t, err, ErrInvalidClock)

			_, err = Layover("10:00", bad)
			assert.ErrorIs(t, err, ErrInvalidClock)
		})
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, 485, m)

	m, err = ParseClock("9:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "59m", FormatMinutes(59))
	assert.Equal(t, "1h 0m", FormatMinutes(60))
	assert.Equal(t, "24h 0m", FormatMinutes(1440))
}

func TestValidClock(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		assert.True(t, ValidClock(ok), ok)
	}
	// ParseClock это принимает, а расписание нет
	for _, bad := range []string{"9:30", "+9:30", " 09:30", "09:5", "24:00", "12:60", "0930", ""} {
		assert.False(t, ValidClock(bad), bad)
	}
}
