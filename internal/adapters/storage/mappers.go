package storage

import (
	"focusd/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		CreatedAt:       m.CreatedAt,
		DurationSeconds: m.Duration,
		ID:              m.ID,
		Mode:            domain.Mode(m.Mode),
		TaskID:          m.TaskID,
		UserID:          m.UserID,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		CreatedAt: s.CreatedAt,
		Duration:  s.DurationSeconds,
		ID:        s.ID,
		Mode:      string(s.Mode),
		TaskID:    s.TaskID,
		UserID:    s.UserID,
	}
}

// streakModelToDomain converts a StreakModel (GORM) to domain.Streak
func streakModelToDomain(m StreakModel) domain.Streak {
	return domain.Streak{
		Current:       m.Current,
		LastSessionAt: m.LastSession,
		Longest:       m.Longest,
		UserID:        m.UserID,
	}
}

// domainToStreakModel converts a domain.Streak to StreakModel (GORM)
func domainToStreakModel(s domain.Streak) StreakModel {
	return StreakModel{
		Current:     s.Current,
		LastSession: s.LastSessionAt,
		Longest:     s.Longest,
		UserID:      s.UserID,
	}
}

// taskModelToDomain converts a TaskModel (GORM) to domain.Task
func taskModelToDomain(m TaskModel) domain.Task {
	return domain.Task{
		ActualPomodoros:    m.ActualPomodoros,
		ActualSeconds:      m.ActualSeconds,
		Completed:          m.Completed,
		CompletedAt:        m.CompletedAt,
		CreatedAt:          m.CreatedAt,
		Description:        m.Description,
		EstimatedPomodoros: m.EstimatedPomodoros,
		ID:                 m.ID,
		Priority:           domain.Priority(m.Priority),
		Title:              m.Title,
		UserID:             m.UserID,
	}
}

// domainToTaskModel converts a domain.Task to TaskModel (GORM)
func domainToTaskModel(t domain.Task) TaskModel {
	return TaskModel{
		ActualPomodoros:    t.ActualPomodoros,
		ActualSeconds:      t.ActualSeconds,
		Completed:          t.Completed,
		CompletedAt:        t.CompletedAt,
		CreatedAt:          t.CreatedAt,
		Description:        t.Description,
		EstimatedPomodoros: t.EstimatedPomodoros,
		ID:                 t.ID,
		Priority:           string(t.Priority),
		Title:              t.Title,
		UserID:             t.UserID,
	}
}
