package ports

import (
	"context"
	"time"

	"focusd/internal/domain"
)

// SessionReader reads the immutable session log
type SessionReader interface {
	// ListRange returns sessions with from <= CreatedAt < to, oldest first.
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Session, error)
	// ListRecent returns the newest sessions first, capped at limit.
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.Session, error)
}

// SessionWriter appends to the session log
type SessionWriter interface {
	AddSession(ctx context.Context, session domain.Session) error
}

// SessionRepository is the composite session port
type SessionRepository interface {
	SessionReader
	SessionWriter
}

// StreakRepository reads and upserts the per-user streak record
type StreakRepository interface {
	// GetStreak returns domain.ErrStreakNotFound when the user has no
	// record yet.
	GetStreak(ctx context.Context, userID string) (*domain.Streak, error)
	// UpsertStreak inserts or replaces the record keyed by user id. Single
	// atomic statement; last writer wins under concurrent updates.
	UpsertStreak(ctx context.Context, streak domain.Streak) error
	// ResetStreak zeroes the current streak, keeping the longest
	// high-water mark.
	ResetStreak(ctx context.Context, userID string) error
}

// TaskReader resolves task ownership and lists the task board
type TaskReader interface {
	// GetTask returns domain.ErrTaskNotFound when id does not resolve to a
	// live task owned by userID.
	GetTask(ctx context.Context, id, userID string) (*domain.Task, error)
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
}

// TaskWriter mutates the task board
type TaskWriter interface {
	AddTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, id, userID string) error
	// IncrementPomodoro bumps the task's completed pomodoro count and adds
	// the session's duration to its accumulated focus time.
	IncrementPomodoro(ctx context.Context, id, userID string, durationSeconds int) error
}

// TaskRepository is the composite task port
type TaskRepository interface {
	TaskReader
	TaskWriter
}
