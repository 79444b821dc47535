package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings is the resolved service configuration.
// Precedence: CLI flags > environment > settings.json > defaults.
type Settings struct {
	DBPath                 string
	Debug                  bool
	ListenAddr             string
	LogFile                string
	RateLimitRequests      int
	RateLimitWindowSeconds int
}

// fileSettings mirrors settings.json. Pointer fields distinguish "unset"
// from zero values.
type fileSettings struct {
	DBPath                 *string `json:"db_path,omitempty"`
	Debug                  *bool   `json:"debug,omitempty"`
	ListenAddr             *string `json:"listen_addr,omitempty"`
	LogFile                *string `json:"log_file,omitempty"`
	RateLimitRequests      *int    `json:"rate_limit_requests,omitempty"`
	RateLimitWindowSeconds *int    `json:"rate_limit_window_seconds,omitempty"`
}

// Home returns the focusd state directory ($FOCUSD_HOME or ~/.focusd)
func Home() string {
	if home := os.Getenv("FOCUSD_HOME"); home != "" {
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".focusd"
	}
	return filepath.Join(homeDir, ".focusd")
}

// SettingsPath returns the settings.json location inside Home
func SettingsPath() string {
	return filepath.Join(Home(), "settings.json")
}

// DefaultDBPath returns the SQLite database location inside Home
func DefaultDBPath() string {
	return filepath.Join(Home(), "focusd.db")
}

// Load resolves settings from settings.json and the environment.
// A missing settings file is not an error.
func Load() (*Settings, error) {
	settings := &Settings{
		DBPath:                 DefaultDBPath(),
		ListenAddr:             ":8080",
		RateLimitRequests:      60,
		RateLimitWindowSeconds: 60,
	}

	data, err := os.ReadFile(SettingsPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read settings: %w", err)
	default:
		var file fileSettings
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
		settings.apply(file)
	}

	settings.applyEnv()
	return settings, nil
}

func (s *Settings) apply(file fileSettings) {
	if file.DBPath != nil {
		s.DBPath = *file.DBPath
	}
	if file.Debug != nil {
		s.Debug = *file.Debug
	}
	if file.ListenAddr != nil {
		s.ListenAddr = *file.ListenAddr
	}
	if file.LogFile != nil {
		s.LogFile = *file.LogFile
	}
	if file.RateLimitRequests != nil {
		s.RateLimitRequests = *file.RateLimitRequests
	}
	if file.RateLimitWindowSeconds != nil {
		s.RateLimitWindowSeconds = *file.RateLimitWindowSeconds
	}
}

func (s *Settings) applyEnv() {
	if addr := os.Getenv("FOCUSD_LISTEN_ADDR"); addr != "" {
		s.ListenAddr = addr
	}
	if dbPath := os.Getenv("FOCUSD_DB_PATH"); dbPath != "" {
		s.DBPath = dbPath
	}
	if os.Getenv("FOCUSD_DEBUG") == "1" {
		s.Debug = true
	}
	if logFile := os.Getenv("FOCUSD_LOG_FILE"); logFile != "" {
		s.LogFile = logFile
	}
}
