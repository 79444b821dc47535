package domain

import (
	"math"
	"time"
)

// Mode identifies the kind of timer interval a session covers
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
)

// Valid reports whether m is one of the three known modes
func (m Mode) Valid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// Session is an immutable fact recording one completed timer interval.
// Sessions are inserted once and never updated or deleted by the service.
type Session struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	TaskID          *string   `json:"taskId"`
	Mode            Mode      `json:"mode"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ClampDuration coerces a caller-reported elapsed duration into a
// non-negative whole number of seconds: max(0, round(sec)).
func ClampDuration(sec float64) int {
	d := int(math.Round(sec))
	if d < 0 {
		return 0
	}
	return d
}
