package cmd

import (
	"context"
	"errors"
	"fmt"

	"focusd/internal/domain"
)

// ResetStreakCmd zeroes a user's current streak. This is the only path
// that can set current to 0; session recording never does.
type ResetStreakCmd struct {
	UserID string `arg:"" help:"User whose streak to reset"`
}

// Run resets the streak
func (c *ResetStreakCmd) Run(cli *CLI) error {
	defer cli.Close()

	err := cli.Container.Repo().ResetStreak(context.Background(), c.UserID)
	if errors.Is(err, domain.ErrStreakNotFound) {
		return fmt.Errorf("no streak record for user %s", c.UserID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("streak reset for user %s\n", c.UserID)
	return nil
}
