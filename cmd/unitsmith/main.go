package main

import (
	"context"
	"fmt"
	"os"

	generatecmd "github.com/catalystcommunity/unitsmith/cmd/unitsmith/commands/generate"
	manifestcmd "github.com/catalystcommunity/unitsmith/cmd/unitsmith/commands/manifest"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "unitsmith",
		Usage:   "Generate systemd service and timer unit files",
		Version: Version,
		Commands: []*cli.Command{
			generatecmd.Command,
			manifestcmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
