package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"

	"focusd/internal/config"
	"focusd/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Debug   bool             `help:"Enable debug logging" short:"d"`
	LogFile string           `help:"Write logs to a file instead of stderr"`

	Serve       ServeCmd       `cmd:"" help:"Start the focusd HTTP server (default)" default:"1"`
	IssueToken  IssueTokenCmd  `cmd:"issue-token" help:"Issue an API token for a user"`
	ResetStreak ResetStreakCmd `cmd:"reset-streak" help:"Reset a user's current streak to zero"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// AfterApply initializes logging and wires dependencies after CLI parsing
func (c *CLI) AfterApply() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if c.Debug {
		settings.Debug = true
	}
	if c.LogFile != "" {
		settings.LogFile = c.LogFile
	}
	c.settings = settings

	if err := logging.Initialize(settings.Debug, settings.LogFile); err != nil {
		return err
	}

	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
