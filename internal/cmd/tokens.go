package cmd

import (
	"context"
	"fmt"
)

// IssueTokenCmd provisions an API token for a user. The token is printed
// once; only its digest is stored.
type IssueTokenCmd struct {
	UserID string `arg:"" help:"User to issue the token for"`
	Label  string `help:"Optional label describing the token" default:""`
}

// Run issues and prints the token
func (c *IssueTokenCmd) Run(cli *CLI) error {
	defer cli.Close()

	token, err := cli.Container.Repo().IssueToken(context.Background(), c.UserID, c.Label)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
