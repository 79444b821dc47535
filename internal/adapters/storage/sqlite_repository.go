package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"focusd/internal/domain"
	"focusd/internal/logging"
	"focusd/internal/ports"
)

// SQLiteRepository implements the session, streak, task, and token ports
// using GORM over a single SQLite database
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.SessionRepository  = (*SQLiteRepository)(nil)
	_ ports.StreakRepository   = (*SQLiteRepository)(nil)
	_ ports.TaskRepository     = (*SQLiteRepository)(nil)
	_ ports.TokenAuthenticator = (*SQLiteRepository)(nil)
	_ ports.TokenIssuer        = (*SQLiteRepository)(nil)
)

// gormLogger wraps the focusd logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FOCUSD_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(
		&SessionModel{},
		&StreakModel{},
		&TaskModel{},
		&APITokenModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AddSession implements SessionWriter.AddSession
func (r *SQLiteRepository) AddSession(ctx context.Context, session domain.Session) error {
	return withRetry(func() error {
		model := domainToSessionModel(session)
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	}, 3)
}

// ListRange implements SessionReader.ListRange
func (r *SQLiteRepository) ListRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Session, error) {
	var models []SessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
			Order("created_at ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// ListRecent implements SessionReader.ListRecent
func (r *SQLiteRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Session, error) {
	var models []SessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(limit).
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// GetStreak implements StreakRepository.GetStreak
func (r *SQLiteRepository) GetStreak(ctx context.Context, userID string) (*domain.Streak, error) {
	var model StreakModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStreakNotFound
		}
		return nil, err
	}

	streak := streakModelToDomain(model)
	return &streak, nil
}

// UpsertStreak implements StreakRepository.UpsertStreak.
// Single insert-or-update statement keyed on user_id; no locking, last
// writer wins since a user runs one active timer at a time.
func (r *SQLiteRepository) UpsertStreak(ctx context.Context, streak domain.Streak) error {
	return withRetry(func() error {
		model := domainToStreakModel(streak)
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current", "longest", "last_session", "updated_at",
			}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to upsert streak: %w", err)
		}
		return nil
	}, 3)
}

// ResetStreak implements StreakRepository.ResetStreak
func (r *SQLiteRepository) ResetStreak(ctx context.Context, userID string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&StreakModel{}).
			Where("user_id = ?", userID).
			Update("current", 0)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrStreakNotFound
		}
		return nil
	}, 3)
}

// GetTask implements TaskReader.GetTask (lookup scoped to the owner)
func (r *SQLiteRepository) GetTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	var model TaskModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
			First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task := taskModelToDomain(model)
	return &task, nil
}

// ListTasks implements TaskReader.ListTasks
func (r *SQLiteRepository) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	var models []TaskModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND is_deleted = ?", userID, false).
			Order("created_at DESC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Task, len(models))
	for i, m := range models {
		result[i] = taskModelToDomain(m)
	}
	return result, nil
}

// AddTask implements TaskWriter.AddTask
func (r *SQLiteRepository) AddTask(ctx context.Context, task domain.Task) error {
	return withRetry(func() error {
		model := domainToTaskModel(task)
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	}, 3)
}

// UpdateTask implements TaskWriter.UpdateTask
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TaskModel{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", task.ID, task.UserID, false).
			Updates(map[string]any{
				"title":               task.Title,
				"description":         task.Description,
				"priority":            string(task.Priority),
				"estimated_pomodoros": task.EstimatedPomodoros,
				"completed":           task.Completed,
				"completed_at":        task.CompletedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	}, 3)
}

// DeleteTask implements TaskWriter.DeleteTask (soft delete)
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id, userID string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TaskModel{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	}, 3)
}

// IncrementPomodoro implements TaskWriter.IncrementPomodoro
func (r *SQLiteRepository) IncrementPomodoro(ctx context.Context, id, userID string, durationSeconds int) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TaskModel{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
			Updates(map[string]any{
				"actual_pomodoros": gorm.Expr("actual_pomodoros + 1"),
				"actual_seconds":   gorm.Expr("actual_seconds + ?", durationSeconds),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	}, 3)
}

// Authenticate implements TokenAuthenticator.Authenticate
func (r *SQLiteRepository) Authenticate(ctx context.Context, token string) (string, error) {
	var model APITokenModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("digest = ?", tokenDigest(token)).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrTokenNotFound
		}
		return "", err
	}
	return model.UserID, nil
}

// IssueToken implements TokenIssuer.IssueToken. The returned token is
// shown once; only its digest is persisted.
func (r *SQLiteRepository) IssueToken(ctx context.Context, userID, label string) (string, error) {
	token := uuid.NewString()

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&APITokenModel{
			Digest: tokenDigest(token),
			Label:  label,
			UserID: userID,
		}).Error
	}, 3)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
