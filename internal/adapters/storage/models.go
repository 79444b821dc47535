package storage

import "time"

// SessionModel is the GORM model for the sessions table
type SessionModel struct {
	CreatedAt time.Time `gorm:"not null;index:idx_sessions_user_created,priority:2"`
	Duration  int       `gorm:"not null;default:0"`
	ID        string    `gorm:"primaryKey"`
	Mode      string    `gorm:"not null;check:mode IN ('work','shortBreak','longBreak')"`
	TaskID    *string   `gorm:"default:null"`
	UserID    string    `gorm:"not null;index:idx_sessions_user_created,priority:1"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// StreakModel is the GORM model for the streaks table
type StreakModel struct {
	CreatedAt   time.Time
	Current     int       `gorm:"not null;default:0"`
	LastSession time.Time `gorm:"not null"`
	Longest     int       `gorm:"not null;default:0"`
	UpdatedAt   time.Time
	UserID      string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (StreakModel) TableName() string { return "streaks" }

// TaskModel is the GORM model for the tasks table
type TaskModel struct {
	ActualPomodoros    int    `gorm:"not null;default:0"`
	ActualSeconds      int    `gorm:"not null;default:0"`
	Completed          bool   `gorm:"not null;default:false"`
	CompletedAt        *time.Time `gorm:"default:null"`
	CreatedAt          time.Time
	Description        string `gorm:"default:''"`
	EstimatedPomodoros int    `gorm:"not null;default:0"`
	ID                 string `gorm:"primaryKey"`
	IsDeleted          bool   `gorm:"not null;default:false;index"`
	Priority           string `gorm:"not null;default:'medium';check:priority IN ('low','medium','high')"`
	Title              string `gorm:"not null"`
	UpdatedAt          time.Time
	UserID             string `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// APITokenModel is the GORM model for the api_tokens table.
// Only the SHA-256 digest of a token is stored, never the token itself.
type APITokenModel struct {
	CreatedAt time.Time
	Digest    string `gorm:"primaryKey"`
	Label     string `gorm:"default:''"`
	UserID    string `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (APITokenModel) TableName() string { return "api_tokens" }
