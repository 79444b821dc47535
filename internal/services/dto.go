package services

// RecordSessionParams contains the client-reported facts of a completed
// timer interval
type RecordSessionParams struct {
	DurationSec float64
	Mode        string
	TaskID      *string
}

// StatsParams selects the aggregation window for ComputeStats.
// StartDate/EndDate are YYYY-MM-DD in the client's local calendar;
// both must be set for an explicit range, otherwise the trailing seven
// local days are used.
type StatsParams struct {
	EndDate               string
	StartDate             string
	TimezoneOffsetMinutes int
}

// HistoryParams selects the session-history window. Empty dates mean
// "most recent sessions" capped at Limit.
type HistoryParams struct {
	EndDate   string
	Limit     int
	StartDate string
}

// CreateTaskParams contains parameters for creating a task
type CreateTaskParams struct {
	Description        string
	EstimatedPomodoros int
	Priority           string
	Title              string
}

// UpdateTaskParams contains the optional field updates for a task.
// Nil fields are left unchanged.
type UpdateTaskParams struct {
	Completed          *bool
	Description        *string
	EstimatedPomodoros *int
	Priority           *string
	Title              *string
}
