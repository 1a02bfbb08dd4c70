package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalDays(t *testing.T) {
	t.Run("full days", func(t *testing.T) {
		assert.Equal(t, 2, RentalDays(date(2026, 3, 1), date(2026, 3, 3)))
		assert.Equal(t, 1, RentalDays(date(2026, 3, 1), date(2026, 3, 2)))
		assert.Equal(t, 7, RentalDays(date(2026, 3, 1), date(2026, 3, 8)))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		start := date(2026, 3, 1)
		end := start.Add(24*time.Hour + time.Hour)
		assert.Equal(t, 2, RentalDays(start, end))

		end = start.Add(time.Minute)
		assert.Equal(t, 1, RentalDays(start, end))
	})

	t.Run("invalid range returns zero", func(t *testing.T) {
		assert.Equal(t, 0, RentalDays(date(2026, 3, 3), date(2026, 3, 1)))
		assert.Equal(t, 0, RentalDays(date(2026, 3, 1), date(2026, 3, 1)))
	})
}

func TestOverlaps(t *testing.T) {
	t.Run("overlapping intervals", func(t *testing.T) {
		assert.True(t, Overlaps(
			date(2026, 3, 1), date(2026, 3, 5),
			date(2026, 3, 4), date(2026, 3, 8),
		))
		assert.True(t, Overlaps(
			date(2026, 3, 1), date(2026, 3, 10),
			date(2026, 3, 4), date(2026, 3, 5),
		))
	})

	t.Run("touching boundaries do not overlap", func(t *testing.T) {
		assert.False(t, Overlaps(
			date(2026, 3, 1), date(2026, 3, 5),
			date(2026, 3, 5), date(2026, 3, 8),
		))
		assert.False(t, Overlaps(
			date(2026, 3, 5), date(2026, 3, 8),
			date(2026, 3, 1), date(2026, 3, 5),
		))
	})

	t.Run("disjoint intervals", func(t *testing.T) {
		assert.False(t, Overlaps(
			date(2026, 3, 1), date(2026, 3, 3),
			date(2026, 3, 10), date(2026, 3, 12),
		))
	})
}

func TestLateDays(t *testing.T) {
	scheduledEnd := date(2026, 3, 3)

	t.Run("on time", func(t *testing.T) {
		assert.Equal(t, 0, LateDays(scheduledEnd, scheduledEnd))
		assert.Equal(t, 0, LateDays(scheduledEnd, date(2026, 3, 2)))
	})

	t.Run("one day late", func(t *testing.T) {
		assert.Equal(t, 1, LateDays(scheduledEnd, date(2026, 3, 4)))
	})

	t.Run("partial day late counts as full day", func(t *testing.T) {
		assert.Equal(t, 1, LateDays(scheduledEnd, scheduledEnd.Add(3*time.Hour)))
		assert.Equal(t, 2, LateDays(scheduledEnd, scheduledEnd.Add(25*time.Hour)))
	})
}
