package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"focusd/internal/domain"
	"focusd/internal/logging"
	"focusd/internal/ports"
)

// RecorderService persists completed timer sessions and drives the
// follow-up bookkeeping (streak maintenance, task pomodoro tallies).
//
// The success contract is "session was recorded": once the insert
// commits, failures of the secondary effects are logged and swallowed,
// never rolled back and never surfaced to the caller.
type RecorderService struct {
	sessions ports.SessionWriter
	streaks  ports.StreakRepository
	tasks    ports.TaskRepository
	now      func() time.Time
}

// NewRecorderService creates a new RecorderService
func NewRecorderService(sessions ports.SessionWriter, streaks ports.StreakRepository, tasks ports.TaskRepository) *RecorderService {
	return &RecorderService{
		sessions: sessions,
		streaks:  streaks,
		tasks:    tasks,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RecordSession validates and persists one completed session, then runs
// streak maintenance and the task pomodoro increment for work sessions.
func (s *RecorderService) RecordSession(ctx context.Context, userID string, params RecordSessionParams) (*domain.Session, error) {
	session := domain.Session{
		CreatedAt:       s.now(),
		DurationSeconds: domain.ClampDuration(params.DurationSec),
		ID:              uuid.NewString(),
		Mode:            domain.Mode(params.Mode),
		TaskID:          s.resolveTask(ctx, userID, params.TaskID),
		UserID:          userID,
	}

	if err := s.sessions.AddSession(ctx, session); err != nil {
		logging.Logger.Error("failed to record session", "user", userID, "error", err)
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	if session.Mode == domain.ModeWork {
		if session.TaskID != nil {
			if err := s.tasks.IncrementPomodoro(ctx, *session.TaskID, userID, session.DurationSeconds); err != nil {
				logging.Logger.Error("failed to update task progress",
					"user", userID,
					"task", *session.TaskID,
					"error", err)
			}
		}

		if _, err := s.MaintainStreak(ctx, userID, session.CreatedAt); err != nil {
			logging.Logger.Error("failed to update streak", "user", userID, "error", err)
		}
	}

	return &session, nil
}

// resolveTask checks that the referenced task is a live task owned by
// the caller. Stale or foreign references are nulled rather than
// rejected: a bad task reference must never block session recording.
func (s *RecorderService) resolveTask(ctx context.Context, userID string, taskID *string) *string {
	if taskID == nil || *taskID == "" {
		return nil
	}

	if _, err := s.tasks.GetTask(ctx, *taskID, userID); err != nil {
		logging.Logger.Debug("dropping unresolved task reference",
			"user", userID,
			"task", *taskID,
			"error", err)
		return nil
	}
	return taskID
}

// MaintainStreak advances the user's streak record for one work session
// at eventTime and upserts the result.
func (s *RecorderService) MaintainStreak(ctx context.Context, userID string, eventTime time.Time) (*domain.Streak, error) {
	current, err := s.streaks.GetStreak(ctx, userID)

	var next domain.Streak
	switch {
	case err == nil:
		next = current.Advance(eventTime)
	case err == domain.ErrStreakNotFound:
		next = domain.StartStreak(userID, eventTime)
	default:
		return nil, fmt.Errorf("failed to fetch streak: %w", err)
	}

	if err := s.streaks.UpsertStreak(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to upsert streak: %w", err)
	}
	return &next, nil
}
