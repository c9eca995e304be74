package unit

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for the two pre-flight failures, so callers can match
// with errors.Is regardless of the wrapped detail.
var (
	ErrExecNotFound = errors.New("executable not found")
	ErrNoCalendar   = errors.New("timer requested without on-calendar")
)

// ErrExecutableNotFound returns an error indicating that the configured
// ExecStart path does not exist
func ErrExecutableNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrExecNotFound, path)
}

// ErrMissingCalendarSpec returns an error indicating that timer generation
// was requested without an OnCalendar directive
func ErrMissingCalendarSpec() error {
	return fmt.Errorf("%w: set on-calendar when requesting a timer", ErrNoCalendar)
}

// Validate runs the pre-flight checks in order: executable existence first,
// then the timer directives. Rendering an Options that fails validation is
// not supported.
func (o *Options) Validate() error {
	if err := o.ValidateExec(); err != nil {
		return err
	}
	return o.ValidateTimer()
}

// ValidateExec checks that ExecStart exists on disk unless the check was
// bypassed. The existence probe is the only filesystem access validation
// performs.
func (o *Options) ValidateExec() error {
	if o.SkipExecCheck {
		return nil
	}
	if _, err := os.Stat(o.ExecStart); err != nil {
		return ErrExecutableNotFound(o.ExecStart)
	}
	return nil
}

// ValidateTimer checks that a timer request carries an OnCalendar
// directive. Callers that do not generate a timer may skip it.
func (o *Options) ValidateTimer() error {
	if o.TimerEnabled && o.OnCalendar == "" {
		return ErrMissingCalendarSpec()
	}
	return nil
}
