package manifest

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/unitsmith/internal/config"
	"github.com/urfave/cli/v3"
)

// ValidateCommand validates a manifest file
var ValidateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Validate manifest syntax and structure",
	ArgsUsage: "[manifest-file]",
	Action:    runValidate,
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	path, err := resolveManifestPath(cmd)
	if err != nil {
		return err
	}

	m, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	timers := 0
	for _, u := range m.Units {
		if u.Timer {
			timers++
		}
	}

	fmt.Printf("✓ Manifest is valid: %s\n", path)
	fmt.Printf("  Units: %d\n", len(m.Units))
	fmt.Printf("  Timers: %d\n", timers)

	return nil
}
