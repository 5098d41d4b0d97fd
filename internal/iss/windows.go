package iss

import "time"

// Trading session hours queried per day. The session window is fixed for every
// instrument type; it is not derived from instrument metadata.
const (
	sessionOpenHour  = 10
	sessionCloseHour = 24
)

// Window is one per-hour request window [Start, End], second precision.
type Window struct {
	Start time.Time
	End   time.Time
}

// PlanWindows splits [from, to] into per-hour request windows, one per session
// hour per calendar day, in chronological order. Each window spans
// [day hh:00:00, day hh:59:59]. Once a window's start passes to, the rest of
// that day's hours are dropped and planning moves to the next day; since to is
// normally an end of day, the cut is rarely observable.
//
// The returned slice is freshly built on every call; no iterator state is
// shared between calls.
func PlanWindows(from, to time.Time) []Window {
	var windows []Window
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for hour := sessionOpenHour; hour < sessionCloseHour; hour++ {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
			if start.After(to) {
				break
			}
			windows = append(windows, Window{
				Start: start,
				End:   start.Add(time.Hour - time.Second),
			})
		}
	}
	return windows
}
