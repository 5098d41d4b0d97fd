package iss

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestPlanWindowsSingleDay(t *testing.T) {
	from := day(2024, time.December, 18, 0, 0, 0)
	to := day(2024, time.December, 18, 23, 59, 59)

	windows := PlanWindows(from, to)
	require.Len(t, windows, 14)

	assert.Equal(t, day(2024, time.December, 18, 10, 0, 0), windows[0].Start)
	assert.Equal(t, day(2024, time.December, 18, 10, 59, 59), windows[0].End)
	assert.Equal(t, day(2024, time.December, 18, 23, 0, 0), windows[13].Start)
	assert.Equal(t, day(2024, time.December, 18, 23, 59, 59), windows[13].End)

	for i, w := range windows {
		assert.Equal(t, 3599*time.Second, w.End.Sub(w.Start), "window %d width", i)
		if i > 0 {
			assert.True(t, w.Start.After(windows[i-1].Start), "window %d start not increasing", i)
		}
	}
}

func TestPlanWindowsMultipleDays(t *testing.T) {
	from := day(2024, time.December, 18, 0, 0, 0)
	to := day(2024, time.December, 20, 23, 59, 59)

	windows := PlanWindows(from, to)
	assert.Len(t, windows, 3*14)
}

func TestPlanWindowsNeverStartsPastEnd(t *testing.T) {
	from := day(2024, time.December, 18, 0, 0, 0)
	to := day(2024, time.December, 19, 12, 30, 0)

	windows := PlanWindows(from, to)
	require.NotEmpty(t, windows)
	for _, w := range windows {
		assert.False(t, w.Start.After(to), "window start %s past range end", w.Start)
	}
	// Day one in full, day two cut after the 12:00 window.
	assert.Len(t, windows, 14+3)
	last := windows[len(windows)-1]
	assert.Equal(t, day(2024, time.December, 19, 12, 0, 0), last.Start)
}

func TestPlanWindowsEmptyRange(t *testing.T) {
	from := day(2024, time.December, 20, 0, 0, 0)
	to := day(2024, time.December, 18, 0, 0, 0)
	assert.Empty(t, PlanWindows(from, to))
}

func TestPlanWindowsRestartable(t *testing.T) {
	from := day(2024, time.December, 18, 0, 0, 0)
	to := day(2024, time.December, 18, 23, 59, 59)
	assert.Equal(t, PlanWindows(from, to), PlanWindows(from, to))
}
