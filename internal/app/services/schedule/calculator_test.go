package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, loc)
	require.NoError(t, err)
	return parsed
}

func TestComputeAvailability(t *testing.T) {
	loc := time.UTC

	t.Run("Delay Not Yet Elapsed", func(t *testing.T) {
		start := date(t, "2024-01-01", loc)
		now := date(t, "2024-01-10", loc)

		result, err := ComputeAvailability(start, 10, 0, 0, now, loc)
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Equal(t, "2024-01-11", result.AvailableDate.Format("2006-01-02"))
		assert.Equal(t, 1, result.DaysUntil)
	})

	t.Run("Available Exactly On Boundary Day", func(t *testing.T) {
		start := date(t, "2024-01-01", loc)
		now := date(t, "2024-01-11", loc)

		result, err := ComputeAvailability(start, 10, 0, 0, now, loc)
		require.NoError(t, err)

		assert.True(t, result.Available)
		assert.Equal(t, "2024-01-11", result.AvailableDate.Format("2006-01-02"))
		assert.Equal(t, 0, result.DaysUntil)
	})

	t.Run("Time Of Day Does Not Matter", func(t *testing.T) {
		// A protocol started at 23:00 with delay 0 is available that same
		// calendar day.
		start := time.Date(2024, 3, 5, 23, 0, 0, 0, loc)
		now := time.Date(2024, 3, 5, 8, 15, 0, 0, loc)

		result, err := ComputeAvailability(start, 0, 0, 0, now, loc)
		require.NoError(t, err)

		assert.True(t, result.Available)
	})

	t.Run("Zero Delay Available Immediately", func(t *testing.T) {
		start := date(t, "2024-06-01", loc)

		result, err := ComputeAvailability(start, 0, 0, 0, start, loc)
		require.NoError(t, err)

		assert.True(t, result.Available)
	})

	t.Run("Repeat Occurrences Strictly Increase", func(t *testing.T) {
		start := date(t, "2024-01-01", loc)
		now := date(t, "2024-01-01", loc)

		var previous time.Time
		for k := 0; k < 4; k++ {
			result, err := ComputeAvailability(start, 5, k, 7, now, loc)
			require.NoError(t, err)
			if k > 0 {
				assert.True(t, result.AvailableDate.After(previous), "occurrence %d should open later than occurrence %d", k, k-1)
			}
			previous = result.AvailableDate
		}
	})

	t.Run("Zero Interval Shares Available Date", func(t *testing.T) {
		start := date(t, "2024-01-01", loc)
		now := date(t, "2024-01-01", loc)

		first, err := ComputeAvailability(start, 5, 0, 0, now, loc)
		require.NoError(t, err)
		third, err := ComputeAvailability(start, 5, 2, 0, now, loc)
		require.NoError(t, err)

		assert.Equal(t, first.AvailableDate, third.AvailableDate)
	})

	t.Run("Days Until Counts Whole Days", func(t *testing.T) {
		start := date(t, "2024-01-01", loc)
		now := time.Date(2024, 1, 8, 18, 30, 0, 0, loc)

		result, err := ComputeAvailability(start, 10, 0, 0, now, loc)
		require.NoError(t, err)

		assert.False(t, result.Available)
		assert.Equal(t, 3, result.DaysUntil)
	})

	t.Run("Rejects Negative Inputs", func(t *testing.T) {
		start := date(t, "2024-01-01", loc)

		_, err := ComputeAvailability(start, -1, 0, 0, start, loc)
		assert.Error(t, err)
		_, err = ComputeAvailability(start, 0, -1, 0, start, loc)
		assert.Error(t, err)
		_, err = ComputeAvailability(start, 0, 0, -1, start, loc)
		assert.Error(t, err)
	})
}
