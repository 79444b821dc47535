package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"focusd/internal/cmd"
	"focusd/internal/version"
)

func main() {
	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("focusd"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
