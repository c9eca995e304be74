package manifest

import "github.com/urfave/cli/v3"

// Command is the top-level manifest command
var Command = &cli.Command{
	Name:  "manifest",
	Usage: "Generate unit files from a YAML manifest",
	Commands: []*cli.Command{
		GenerateCommand,
		ValidateCommand,
	},
}
