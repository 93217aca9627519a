package domain

import (
	"sort"
	"time"
)

// TimeSlot represents an open appointment window published by a mentor.
// The scheduling backend owns the record; this service only holds a
// read-only transient copy for the lifetime of a request.
type TimeSlot struct {
	ID        string
	MentorID  string
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns the length of the slot window.
func (s *TimeSlot) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// StartsAfter returns true if the slot starts at or after the given moment.
func (s *TimeSlot) StartsAfter(now time.Time) bool {
	return !s.StartTime.Before(now)
}

// SortSlotsByStart sorts slots ascending by start time in place.
// The backend is expected to return slots already ordered, but the
// ordering is re-applied here so the displayed order never depends on it.
func SortSlotsByStart(slots []*TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})
}
