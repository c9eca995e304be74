package config

import (
	"fmt"

	"github.com/catalystcommunity/unitsmith/internal/unit"
)

// Manifest is the declarative input format: a YAML file describing one or
// more units to generate in order.
type Manifest struct {
	Units []UnitSpec `yaml:"units"`
}

// UnitSpec mirrors the flag surface of `unitsmith generate` field for
// field. Enum fields decode through the unit parsers, so a bad type or
// restart value fails at load time.
type UnitSpec struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Before      []string `yaml:"before,omitempty"`
	After       []string `yaml:"after,omitempty"`
	Conflicts   []string `yaml:"conflicts,omitempty"`
	Requires    []string `yaml:"requires,omitempty"`
	OnFailure   string   `yaml:"on_failure,omitempty"`

	Type       unit.ServiceType   `yaml:"type,omitempty"`
	ExecStart  string             `yaml:"exec_start"`
	ExecReload string             `yaml:"exec_reload,omitempty"`
	ExecStop   string             `yaml:"exec_stop,omitempty"`
	Restart    unit.RestartPolicy `yaml:"restart,omitempty"`
	RestartSec *int               `yaml:"restart_sec,omitempty"`
	User       string             `yaml:"user,omitempty"`
	Group      string             `yaml:"group,omitempty"`

	// WantedBy is optional in manifests; when omitted the [Install]
	// section of the rendered service carries no WantedBy= line.
	WantedBy string `yaml:"wanted_by,omitempty"`

	Timer             bool   `yaml:"timer,omitempty"`
	Persistent        bool   `yaml:"persistent,omitempty"`
	OnCalendar        string `yaml:"on_calendar,omitempty"`
	OnUnitActiveSec   string `yaml:"on_unit_active_sec,omitempty"`
	OnUnitInactiveSec string `yaml:"on_unit_inactive_sec,omitempty"`
	AccuracySec       string `yaml:"accuracy_sec,omitempty"`

	OutputDir     string `yaml:"output_dir,omitempty"`
	SkipExecCheck bool   `yaml:"skip_exec_check,omitempty"`
}

// Validate performs structural validation on the manifest: at least one
// unit, unique names, and per-unit field checks. Filesystem checks (does
// exec_start exist) are left to generation time.
func (m *Manifest) Validate() error {
	if len(m.Units) == 0 {
		return fmt.Errorf("at least one unit must be defined")
	}

	seen := make(map[string]bool)
	for i, u := range m.Units {
		if err := u.Validate(); err != nil {
			return fmt.Errorf("unit %d validation failed: %w", i, err)
		}
		if seen[u.Name] {
			return fmt.Errorf("duplicate unit name: %s", u.Name)
		}
		seen[u.Name] = true
	}
	return nil
}

// Validate performs structural validation on a single unit spec
func (u *UnitSpec) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("unit name is required")
	}
	if u.ExecStart == "" {
		return fmt.Errorf("exec_start is required")
	}
	if u.Type != "" && !u.Type.Valid() {
		return fmt.Errorf("invalid service type %q", u.Type)
	}
	if u.Restart != "" && !u.Restart.Valid() {
		return fmt.Errorf("invalid restart policy %q", u.Restart)
	}
	if u.RestartSec != nil && *u.RestartSec < 0 {
		return fmt.Errorf("restart_sec must be non-negative")
	}
	if u.Timer && u.OnCalendar == "" {
		return fmt.Errorf("unit %s requests a timer but has no on_calendar", u.Name)
	}
	return nil
}

// Options converts the spec into the Options record consumed by the
// renderer, applying the same defaults as the CLI where the manifest is
// silent. WantedBy is the exception: manifests may legitimately omit it.
func (u *UnitSpec) Options() *unit.Options {
	o := &unit.Options{
		Name:        u.Name,
		Description: u.Description,
		Before:      u.Before,
		After:       u.After,
		Conflicts:   u.Conflicts,
		Requires:    u.Requires,
		OnFailure:   u.OnFailure,

		Type:       u.Type,
		ExecStart:  u.ExecStart,
		ExecReload: u.ExecReload,
		ExecStop:   u.ExecStop,
		Restart:    u.Restart,
		RestartSec: u.RestartSec,
		User:       u.User,
		Group:      u.Group,

		WantedBy: u.WantedBy,

		TimerEnabled:      u.Timer,
		Persistent:        u.Persistent,
		OnCalendar:        u.OnCalendar,
		OnUnitActiveSec:   u.OnUnitActiveSec,
		OnUnitInactiveSec: u.OnUnitInactiveSec,
		AccuracySec:       u.AccuracySec,

		OutputDir:     u.OutputDir,
		SkipExecCheck: u.SkipExecCheck,
	}

	if o.Type == "" {
		o.Type = unit.TypeSimple
	}
	if o.OutputDir == "" {
		o.OutputDir = unit.DefaultOutputDir
	}
	return o
}
