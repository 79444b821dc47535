package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStartStreak(t *testing.T) {
	event := date("2024-03-10T09:30:00Z")
	streak := StartStreak("user-1", event)

	assert.Equal(t, "user-1", streak.UserID)
	assert.Equal(t, 1, streak.Current)
	assert.Equal(t, 1, streak.Longest)
	assert.Equal(t, event, streak.LastSessionAt)
}

func TestAdvance_SameDayIsIdempotent(t *testing.T) {
	streak := StartStreak("user-1", date("2024-03-10T08:00:00Z"))

	// Several more sessions on the same calendar day must not inflate
	// the streak, only refresh the timestamp.
	for _, ts := range []string{
		"2024-03-10T09:00:00Z",
		"2024-03-10T15:45:00Z",
		"2024-03-10T23:59:59Z",
	} {
		streak = streak.Advance(date(ts))
		assert.Equal(t, 1, streak.Current)
		assert.Equal(t, 1, streak.Longest)
	}
	assert.Equal(t, date("2024-03-10T23:59:59Z"), streak.LastSessionAt)
}

func TestAdvance_ConsecutiveDayIncrements(t *testing.T) {
	streak := Streak{
		UserID:        "user-1",
		Current:       3,
		Longest:       5,
		LastSessionAt: date("2024-03-09T22:00:00Z"),
	}

	next := streak.Advance(date("2024-03-10T07:00:00Z"))

	assert.Equal(t, 4, next.Current)
	assert.Equal(t, 5, next.Longest, "longest unchanged while current is below it")
}

func TestAdvance_ConsecutiveDayRaisesLongest(t *testing.T) {
	streak := Streak{
		UserID:        "user-1",
		Current:       5,
		Longest:       5,
		LastSessionAt: date("2024-03-09T22:00:00Z"),
	}

	next := streak.Advance(date("2024-03-10T07:00:00Z"))

	assert.Equal(t, 6, next.Current)
	assert.Equal(t, 6, next.Longest)
}

func TestAdvance_GapResetsToOneNotZero(t *testing.T) {
	tests := []struct {
		name string
		last string
	}{
		{"two day gap", "2024-03-08T10:00:00Z"},
		{"week gap", "2024-03-03T10:00:00Z"},
		{"year gap", "2023-03-10T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak := Streak{
				UserID:        "user-1",
				Current:       7,
				Longest:       9,
				LastSessionAt: date(tt.last),
			}

			next := streak.Advance(date("2024-03-10T12:00:00Z"))

			assert.Equal(t, 1, next.Current)
			assert.Equal(t, 9, next.Longest, "gap must not touch the high-water mark")
		})
	}
}

func TestAdvance_MidnightBoundaryIsConsecutive(t *testing.T) {
	streak := StartStreak("user-1", date("2024-03-09T23:59:00Z"))

	// Two minutes apart but on different UTC calendar days.
	next := streak.Advance(date("2024-03-10T00:01:00Z"))

	assert.Equal(t, 2, next.Current)
}

func TestAdvance_UsesUTCDayNotLocal(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	streak := StartStreak("user-1", date("2024-03-09T20:00:00Z"))

	// 2024-03-10T09:00+10:00 is 2024-03-09T23:00Z: same UTC day even
	// though the wall clock crossed midnight in its own zone.
	next := streak.Advance(time.Date(2024, 3, 10, 9, 0, 0, 0, loc))

	assert.Equal(t, 1, next.Current)
}

func TestAdvance_LongestIsMonotonic(t *testing.T) {
	events := []string{
		"2024-03-01T10:00:00Z", // day 1
		"2024-03-02T10:00:00Z", // day 2
		"2024-03-03T10:00:00Z", // day 3
		"2024-03-07T10:00:00Z", // gap, reset
		"2024-03-08T10:00:00Z", // day 2
		"2024-03-08T18:00:00Z", // same day
		"2024-03-09T10:00:00Z", // day 3
		"2024-03-10T10:00:00Z", // day 4, new high-water mark
		"2024-03-20T10:00:00Z", // gap, reset
	}

	streak := StartStreak("user-1", date(events[0]))
	longest := streak.Longest
	for _, ts := range events[1:] {
		streak = streak.Advance(date(ts))
		assert.GreaterOrEqual(t, streak.Longest, longest)
		assert.GreaterOrEqual(t, streak.Longest, streak.Current)
		longest = streak.Longest
	}
	assert.Equal(t, 1, streak.Current)
	assert.Equal(t, 4, streak.Longest)
}
