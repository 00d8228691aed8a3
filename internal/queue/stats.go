package queue

import (
	"math"
	"time"
)

// Stats are the read-only counters for one local calendar day.
type Stats struct {
	// Done is the number of tickets completed that day.
	Done int
	// AvgWaitMinutes is the mean creation-to-start time over tickets
	// started that day, rounded to the nearest minute.
	AvgWaitMinutes int
	// AvgHandleMinutes is the mean start-to-done time over tickets
	// completed that day, rounded to the nearest minute.
	AvgHandleMinutes int
}

// StatsFor computes the stats for the local calendar day containing day.
// Averages are 0 when no ticket qualifies.
func (s *Store) StatsFor(day time.Time) Stats {
	var stats Stats

	var waits, handles []time.Duration

	for _, t := range s.tickets {
		if t.StartedAt != nil && sameLocalDay(*t.StartedAt, day) {
			waits = append(waits, t.StartedAt.Sub(t.CreatedAt))
		}

		if t.DoneAt != nil && sameLocalDay(*t.DoneAt, day) {
			stats.Done++

			if t.StartedAt != nil {
				handles = append(handles, t.DoneAt.Sub(*t.StartedAt))
			}
		}
	}

	stats.AvgWaitMinutes = meanMinutes(waits)
	stats.AvgHandleMinutes = meanMinutes(handles)

	return stats
}

func sameLocalDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()

	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// meanMinutes rounds half away from zero to the nearest whole minute.
func meanMinutes(durations []time.Duration) int {
	if len(durations) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	mean := total.Minutes() / float64(len(durations))

	return int(math.Round(mean))
}
