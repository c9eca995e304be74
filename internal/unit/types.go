package unit

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServiceType is the start-up behavior systemd assumes for a service,
// emitted as the Type= directive.
type ServiceType string

const (
	TypeSimple  ServiceType = "simple"
	TypeForking ServiceType = "forking"
	TypeOneshot ServiceType = "oneshot"
	TypeDbus    ServiceType = "dbus"
	TypeNotify  ServiceType = "notify"
	TypeIdle    ServiceType = "idle"
)

// ServiceTypes lists every accepted Type= value in canonical form.
var ServiceTypes = []ServiceType{
	TypeSimple,
	TypeForking,
	TypeOneshot,
	TypeDbus,
	TypeNotify,
	TypeIdle,
}

// Valid reports whether t is one of the accepted service types
func (t ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t ServiceType) String() string {
	return string(t)
}

// ParseServiceType converts a user-supplied string into a ServiceType
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid service type %q (valid: %s)", s, joinTypes(ServiceTypes))
	}
	return t, nil
}

// UnmarshalYAML validates service types while decoding manifests
func (t *ServiceType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseServiceType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RestartPolicy controls when systemd restarts the service, emitted as the
// Restart= directive. The hyphenated lowercase form is the wire format.
type RestartPolicy string

const (
	RestartNo         RestartPolicy = "no"
	RestartAlways     RestartPolicy = "always"
	RestartOnSuccess  RestartPolicy = "on-success"
	RestartOnFailure  RestartPolicy = "on-failure"
	RestartOnAbnormal RestartPolicy = "on-abnormal"
	RestartOnAbort    RestartPolicy = "on-abort"
	RestartOnWatchdog RestartPolicy = "on-watchdog"
)

// RestartPolicies lists every accepted Restart= value in canonical form.
var RestartPolicies = []RestartPolicy{
	RestartNo,
	RestartAlways,
	RestartOnSuccess,
	RestartOnFailure,
	RestartOnAbnormal,
	RestartOnAbort,
	RestartOnWatchdog,
}

// Valid reports whether p is one of the accepted restart policies
func (p RestartPolicy) Valid() bool {
	for _, known := range RestartPolicies {
		if p == known {
			return true
		}
	}
	return false
}

func (p RestartPolicy) String() string {
	return string(p)
}

// ParseRestartPolicy converts a user-supplied string into a RestartPolicy
func ParseRestartPolicy(s string) (RestartPolicy, error) {
	p := RestartPolicy(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid restart policy %q (valid: %s)", s, joinPolicies(RestartPolicies))
	}
	return p, nil
}

// UnmarshalYAML validates restart policies while decoding manifests
func (p *RestartPolicy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRestartPolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func joinTypes(types []ServiceType) string {
	strs := make([]string, len(types))
	for i, t := range types {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

func joinPolicies(policies []RestartPolicy) string {
	strs := make([]string, len(policies))
	for i, p := range policies {
		strs[i] = string(p)
	}
	return strings.Join(strs, ", ")
}

// Default values applied when neither the CLI nor a manifest overrides them
const (
	DefaultWantedBy  = "multi-user.target"
	DefaultOutputDir = "/etc/systemd/system/"

	// TimerWantedBy is the fixed install target for timer units. It is not
	// configurable.
	TimerWantedBy = "timers.target"
)

// Options is the full configuration for one generated unit pair. It is
// built once per invocation and never mutated afterwards; validation and
// rendering only read it.
type Options struct {
	// Name derives the output filenames <name>.service and <name>.timer
	Name string

	// Unit section
	Description string
	Before      []string
	After       []string
	Conflicts   []string
	Requires    []string
	OnFailure   string

	// Service section
	Type       ServiceType
	ExecStart  string
	ExecReload string
	ExecStop   string
	Restart    RestartPolicy // empty means no Restart= line
	RestartSec *int
	User       string
	Group      string

	// Install section. Empty means no WantedBy= line.
	WantedBy string

	// Timer section, only consulted when TimerEnabled is set. AccuracySec
	// is accepted but not rendered yet; emitting AccuracySec= is a
	// renderer-only change once it is needed.
	TimerEnabled      bool
	Persistent        bool
	OnCalendar        string
	OnUnitActiveSec   string
	OnUnitInactiveSec string
	AccuracySec       string

	OutputDir     string
	SkipExecCheck bool

	// CompatDescriptionOnFailure reproduces the output of historical
	// releases, which fed OnFailure= from the description and emitted no
	// Before= lines. New invocations should leave it off.
	CompatDescriptionOnFailure bool
}

// DefaultOptions returns an Options with the defaults the CLI applies
func DefaultOptions() *Options {
	return &Options{
		Type:      TypeSimple,
		WantedBy:  DefaultWantedBy,
		OutputDir: DefaultOutputDir,
	}
}
