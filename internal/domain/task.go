package domain

import "time"

// Priority is the task priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority level
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a user-owned unit of work that pomodoro sessions may reference.
// Deletion is soft so that historical sessions keep a resolvable reference.
type Task struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Priority           Priority   `json:"priority"`
	EstimatedPomodoros int        `json:"estimatedPomodoros"`
	ActualPomodoros    int        `json:"actualPomodoros"`
	ActualSeconds      int        `json:"actualSeconds"`
	Completed          bool       `json:"completed"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}
