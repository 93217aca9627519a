package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortSlotsByStart(t *testing.T) {
	base := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	slots := []*TimeSlot{
		{ID: "s3", StartTime: base.Add(4 * time.Hour)},
		{ID: "s1", StartTime: base},
		{ID: "s2", StartTime: base.Add(2 * time.Hour)},
	}

	SortSlotsByStart(slots)

	require.Equal(t, "s1", slots[0].ID)
	require.Equal(t, "s2", slots[1].ID)
	require.Equal(t, "s3", slots[2].ID)
}

func TestSortSlotsByStart_StableForEqualStarts(t *testing.T) {
	base := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	slots := []*TimeSlot{
		{ID: "a", StartTime: base},
		{ID: "b", StartTime: base},
	}

	SortSlotsByStart(slots)

	require.Equal(t, "a", slots[0].ID)
	require.Equal(t, "b", slots[1].ID)
}

func TestStartsAfter(t *testing.T) {
	now := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)

	past := &TimeSlot{StartTime: now.Add(-time.Hour)}
	exact := &TimeSlot{StartTime: now}
	future := &TimeSlot{StartTime: now.Add(time.Hour)}

	require.False(t, past.StartsAfter(now))
	require.True(t, exact.StartsAfter(now))
	require.True(t, future.StartsAfter(now))
}

func TestDuration(t *testing.T) {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	slot := &TimeSlot{StartTime: start, EndTime: start.Add(90 * time.Minute)}

	require.Equal(t, 90*time.Minute, slot.Duration())
}
