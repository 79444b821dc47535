package domain

// Chart colors per mode, fixed by the web client's palette
const (
	ColorWork       = "#3b82f6" // blue-500
	ColorShortBreak = "#f59e0b" // amber-500
	ColorLongBreak  = "#8b5cf6" // violet-500
)

// DailyFocus is one derived date -> seconds-of-work bucket. Days with no
// activity are present with a zero duration.
type DailyFocus struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

// ModeSlice is one entry of the per-mode time distribution
type ModeSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// StreakSummary is the streak readout merged into stats responses
type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Summary holds the headline aggregates for a stats window
type Summary struct {
	TotalFocusTime    int           `json:"totalFocusTime"`
	CompletedSessions int           `json:"completedSessions"`
	Streak            StreakSummary `json:"streak"`
}

// Stats is the full aggregation result for one user and window
type Stats struct {
	Summary      Summary      `json:"summary"`
	DailyFocus   []DailyFocus `json:"dailyFocus"`
	Distribution []ModeSlice  `json:"distribution"`
}
