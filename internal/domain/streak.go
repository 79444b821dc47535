package domain

import "time"

// DayLayout is the calendar-day key format used for streak comparison
// and daily focus buckets.
const DayLayout = "2006-01-02"

// Streak summarizes a user's consecutive-day engagement. One mutable
// record per user, upserted on every work session.
//
// Invariant: Longest >= Current, and Longest never decreases.
type Streak struct {
	UserID        string    `json:"userId"`
	Current       int       `json:"current"`
	Longest       int       `json:"longest"`
	LastSessionAt time.Time `json:"lastSessionAt"`
}

// StartStreak builds the record created by a user's first work session.
func StartStreak(userID string, eventTime time.Time) Streak {
	return Streak{
		UserID:        userID,
		Current:       1,
		Longest:       1,
		LastSessionAt: eventTime,
	}
}

// Advance applies one qualifying work session at eventTime and returns
// the updated record.
//
// Days are compared as UTC-truncated YYYY-MM-DD strings. Stats bucketing
// applies the client timezone offset instead; the mismatch is kept for
// compatibility with data recorded by earlier releases.
func (s Streak) Advance(eventTime time.Time) Streak {
	today := eventTime.UTC().Format(DayLayout)
	yesterday := eventTime.UTC().AddDate(0, 0, -1).Format(DayLayout)
	lastDay := s.LastSessionAt.UTC().Format(DayLayout)

	next := s
	next.LastSessionAt = eventTime

	switch lastDay {
	case today:
		// At most one increment per calendar day. Only the timestamp moves.
	case yesterday:
		next.Current = s.Current + 1
		if next.Current > next.Longest {
			next.Longest = next.Current
		}
	default:
		// Gap of more than one day. The triggering session is day one of
		// the new streak, so restart at 1, not 0.
		next.Current = 1
	}
	return next
}
