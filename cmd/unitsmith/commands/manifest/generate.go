package manifest

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/unitsmith/internal/config"
	"github.com/catalystcommunity/unitsmith/internal/unit"
	"github.com/urfave/cli/v3"
)

// GenerateCommand generates every unit defined in a manifest
var GenerateCommand = &cli.Command{
	Name:      "generate",
	Usage:     "Generate unit files for every unit in a manifest",
	ArgsUsage: "[manifest-file]",
	Description: `Generates units in manifest order. Units are independent: a failure
on one is reported and the remaining units are still attempted.

Examples:
  unitsmith manifest generate
  unitsmith manifest generate /srv/deploy/units.yaml`,
	Action: runGenerate,
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	path, err := resolveManifestPath(cmd)
	if err != nil {
		return err
	}

	m, err := config.Load(path)
	if err != nil {
		return err
	}

	failed := 0
	for _, spec := range m.Units {
		artifacts, err := unit.Generate(spec.Options())
		for _, a := range artifacts {
			fmt.Printf("Wrote %s file %s\n", a.Kind, a.Path)
		}
		if err != nil {
			failed++
			fmt.Printf("✗ unit %s: %v\n", spec.Name, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d units failed", failed, len(m.Units))
	}
	return nil
}

// resolveManifestPath picks the manifest from the argument if given,
// otherwise falls back to the default location
func resolveManifestPath(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}

	path, err := config.FindManifest("")
	if err != nil {
		return "", fmt.Errorf("no manifest specified and no default found: %w", err)
	}
	return path, nil
}
