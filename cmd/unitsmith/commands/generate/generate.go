package generate

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/unitsmith/internal/unit"
	"github.com/urfave/cli/v3"
)

// Command generates unit files from flags
var Command = &cli.Command{
	Name:  "generate",
	Usage: "Generate a service unit (and optionally a timer unit) from flags",
	Description: `Generates <name>.service in the output directory, and <name>.timer
when --timer is set.

Examples:
  # Minimal service:
  unitsmith generate --name backup --exec-start /usr/local/bin/backup.sh

  # Restarting service running as a dedicated user:
  unitsmith generate --name backup --exec-start /usr/local/bin/backup.sh \
    --restart on-failure --restart-sec 5 --user backup

  # Daily timer-driven service:
  unitsmith generate --name backup --exec-start /usr/local/bin/backup.sh \
    --timer --on-calendar daily --persistent`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Aliases:  []string{"n"},
			Usage:    "unit name, used for the output filenames",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "Description= for the [Unit] section",
		},
		&cli.StringSliceFlag{
			Name:    "before",
			Aliases: []string{"b"},
			Usage:   "unit to order this one before (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:    "after",
			Aliases: []string{"a"},
			Usage:   "unit to order this one after (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "conflicts",
			Usage: "unit this one conflicts with (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "requires",
			Usage: "unit this one requires (repeatable)",
		},
		&cli.StringFlag{
			Name:  "on-failure",
			Usage: "unit to activate when this one fails",
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "service type: simple, forking, oneshot, dbus, notify, idle",
			Value:   "simple",
		},
		&cli.StringFlag{
			Name:     "exec-start",
			Aliases:  []string{"e"},
			Usage:    "command to run (must exist unless --no-check)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "exec-reload",
			Usage: "command to run on reload",
		},
		&cli.StringFlag{
			Name:  "exec-stop",
			Usage: "command to run on stop",
		},
		&cli.StringFlag{
			Name:  "restart",
			Usage: "restart policy: no, always, on-success, on-failure, on-abnormal, on-abort, on-watchdog",
		},
		&cli.IntFlag{
			Name:  "restart-sec",
			Usage: "seconds to sleep before restarting",
		},
		&cli.StringFlag{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "User= for the [Service] section",
		},
		&cli.StringFlag{
			Name:    "group",
			Aliases: []string{"g"},
			Usage:   "Group= for the [Service] section",
		},
		&cli.StringFlag{
			Name:    "wanted-by",
			Aliases: []string{"w"},
			Usage:   "install target for the service unit",
			Value:   unit.DefaultWantedBy,
		},
		&cli.BoolFlag{
			Name:    "timer",
			Aliases: []string{"T"},
			Usage:   "also generate <name>.timer",
		},
		&cli.BoolFlag{
			Name:    "persistent",
			Aliases: []string{"p"},
			Usage:   "Persistent= for the [Timer] section",
		},
		&cli.StringFlag{
			Name:  "on-calendar",
			Usage: "OnCalendar= schedule (required with --timer)",
		},
		&cli.StringFlag{
			Name:  "on-unit-active-sec",
			Usage: "OnUnitActiveSec= for the [Timer] section",
		},
		&cli.StringFlag{
			Name:  "on-unit-inactive-sec",
			Usage: "OnUnitInactiveSec= for the [Timer] section",
		},
		&cli.StringFlag{
			Name:  "accuracy-sec",
			Usage: "AccuracySec= for the [Timer] section (accepted, not yet rendered)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "directory to write unit files into",
			Value:   unit.DefaultOutputDir,
		},
		&cli.BoolFlag{
			Name:  "no-check",
			Usage: "skip the exec-start existence check",
		},
		&cli.BoolFlag{
			Name:  "compat-on-failure",
			Usage: "reproduce historical output: OnFailure= from the description, no Before= lines",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print the rendered units to stdout without writing files",
		},
	},
	Action: runGenerate,
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("dry-run") {
		if err := opts.Validate(); err != nil {
			return err
		}
		fmt.Print(unit.RenderService(opts))
		if opts.TimerEnabled {
			fmt.Print("\n")
			fmt.Print(unit.RenderTimer(opts))
		}
		return nil
	}

	artifacts, err := unit.Generate(opts)
	for _, a := range artifacts {
		fmt.Printf("Wrote %s file %s\n", a.Kind, a.Path)
	}
	return err
}

// optionsFromFlags converts the parsed flag set into the immutable Options
// record. All enum and range checks happen here, before any rendering.
func optionsFromFlags(cmd *cli.Command) (*unit.Options, error) {
	serviceType, err := unit.ParseServiceType(cmd.String("type"))
	if err != nil {
		return nil, err
	}

	opts := &unit.Options{
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
		Before:      cmd.StringSlice("before"),
		After:       cmd.StringSlice("after"),
		Conflicts:   cmd.StringSlice("conflicts"),
		Requires:    cmd.StringSlice("requires"),
		OnFailure:   cmd.String("on-failure"),

		Type:       serviceType,
		ExecStart:  cmd.String("exec-start"),
		ExecReload: cmd.String("exec-reload"),
		ExecStop:   cmd.String("exec-stop"),
		User:       cmd.String("user"),
		Group:      cmd.String("group"),

		WantedBy: cmd.String("wanted-by"),

		TimerEnabled:      cmd.Bool("timer"),
		Persistent:        cmd.Bool("persistent"),
		OnCalendar:        cmd.String("on-calendar"),
		OnUnitActiveSec:   cmd.String("on-unit-active-sec"),
		OnUnitInactiveSec: cmd.String("on-unit-inactive-sec"),
		AccuracySec:       cmd.String("accuracy-sec"),

		OutputDir:     cmd.String("output"),
		SkipExecCheck: cmd.Bool("no-check"),

		CompatDescriptionOnFailure: cmd.Bool("compat-on-failure"),
	}

	if cmd.IsSet("restart") {
		policy, err := unit.ParseRestartPolicy(cmd.String("restart"))
		if err != nil {
			return nil, err
		}
		opts.Restart = policy
	}

	if cmd.IsSet("restart-sec") {
		sec := cmd.Int("restart-sec")
		if sec < 0 {
			return nil, fmt.Errorf("restart-sec must be non-negative, got %d", sec)
		}
		opts.RestartSec = &sec
	}

	return opts, nil
}
