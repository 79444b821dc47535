package cmd

import (
	"time"

	adapterstorage "focusd/internal/adapters/storage"
	"focusd/internal/config"
	"focusd/internal/server"
	"focusd/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Recorder *services.RecorderService
	Stats    *services.StatsService
	Tasks    *services.TaskService
	Server   *server.Server

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(settings.DBPath)
	if err != nil {
		return nil, err
	}

	recorder := services.NewRecorderService(repo, repo, repo)
	stats := services.NewStatsService(repo, repo)
	tasks := services.NewTaskService(repo)

	limiter := server.NewRateLimiter(
		settings.RateLimitRequests,
		time.Duration(settings.RateLimitWindowSeconds)*time.Second,
	)

	srv := server.New(settings.ListenAddr, server.Deps{
		Auth:     repo,
		Limiter:  limiter,
		Recorder: recorder,
		Stats:    stats,
		Tasks:    tasks,
	})

	return &Container{
		Recorder: recorder,
		Stats:    stats,
		Tasks:    tasks,
		Server:   srv,
		repo:     repo,
	}, nil
}

// Repo exposes the storage adapter for administrative commands
func (c *Container) Repo() *adapterstorage.SQLiteRepository {
	return c.repo
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
