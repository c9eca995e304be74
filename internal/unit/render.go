package unit

import (
	"strconv"
	"strings"
)

// directive is one candidate Key=value line. Each section is a literal
// ordered slice of directives; a line is emitted only when present is true.
// Keeping the order in data rather than in branching keeps the section
// layout auditable in one place.
type directive struct {
	present bool
	key     string
	value   string
}

// listDirectives expands a repeatable field into one directive per element,
// preserving input order.
func listDirectives(key string, values []string) []directive {
	ds := make([]directive, 0, len(values))
	for _, v := range values {
		ds = append(ds, directive{true, key, v})
	}
	return ds
}

// writeSection emits the section header followed by every present
// directive. Values are written byte-for-byte; escaping is the consumer's
// concern.
func writeSection(b *strings.Builder, name string, directives []directive) {
	b.WriteString("[")
	b.WriteString(name)
	b.WriteString("]\n")
	for _, d := range directives {
		if !d.present {
			continue
		}
		b.WriteString(d.key)
		b.WriteString("=")
		b.WriteString(d.value)
		b.WriteString("\n")
	}
}

// RenderService renders the .service unit text for o. It is a pure function
// over a validated Options: no I/O beyond best-effort path resolution, and
// identical input always yields identical output.
func RenderService(o *Options) string {
	before := listDirectives("Before", o.Before)
	onFailure := directive{o.OnFailure != "", "OnFailure", o.OnFailure}
	if o.CompatDescriptionOnFailure {
		before = nil
		onFailure = directive{o.Description != "", "OnFailure", o.Description}
	}

	unitSection := []directive{
		{o.Description != "", "Description", o.Description},
	}
	unitSection = append(unitSection, before...)
	unitSection = append(unitSection, listDirectives("After", o.After)...)
	unitSection = append(unitSection, listDirectives("Conflicts", o.Conflicts)...)
	unitSection = append(unitSection, listDirectives("Requires", o.Requires)...)
	unitSection = append(unitSection, onFailure)

	restartSec := directive{}
	if o.RestartSec != nil {
		restartSec = directive{true, "RestartSec", strconv.Itoa(*o.RestartSec)}
	}

	serviceSection := []directive{
		{true, "Type", o.Type.String()},
		{true, "ExecStart", ResolvePath(o.ExecStart)},
		{o.ExecReload != "", "ExecReload", ResolvePath(o.ExecReload)},
		{o.ExecStop != "", "ExecStop", ResolvePath(o.ExecStop)},
		{o.Restart != "", "Restart", o.Restart.String()},
		restartSec,
		{o.User != "", "User", o.User},
		{o.Group != "", "Group", o.Group},
	}

	installSection := []directive{
		{o.WantedBy != "", "WantedBy", o.WantedBy},
	}

	var b strings.Builder
	writeSection(&b, "Unit", unitSection)
	b.WriteString("\n")
	writeSection(&b, "Service", serviceSection)
	b.WriteString("\n")
	writeSection(&b, "Install", installSection)
	return b.String()
}

// RenderTimer renders the .timer unit text for o. The [Unit] section is a
// bare header, Persistent= is always emitted, and the install target is the
// fixed timers.target.
func RenderTimer(o *Options) string {
	timerSection := []directive{
		{o.OnCalendar != "", "OnCalendar", o.OnCalendar},
		{o.OnUnitActiveSec != "", "OnUnitActiveSec", o.OnUnitActiveSec},
		{o.OnUnitInactiveSec != "", "OnUnitInactiveSec", o.OnUnitInactiveSec},
		{true, "Persistent", strconv.FormatBool(o.Persistent)},
	}

	installSection := []directive{
		{true, "WantedBy", TimerWantedBy},
	}

	var b strings.Builder
	writeSection(&b, "Unit", nil)
	b.WriteString("\n")
	writeSection(&b, "Timer", timerSection)
	b.WriteString("\n")
	writeSection(&b, "Install", installSection)
	return b.String()
}
