package unit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	exec := filepath.Join(dir, "run.sh")
	require.NoError(t, writeExecutable(exec))

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name: "valid service options",
			opts: Options{Name: "foo", ExecStart: exec},
		},
		{
			name:    "missing executable",
			opts:    Options{Name: "foo", ExecStart: filepath.Join(dir, "missing")},
			wantErr: ErrExecNotFound,
		},
		{
			name: "missing executable with check bypassed",
			opts: Options{Name: "foo", ExecStart: filepath.Join(dir, "missing"), SkipExecCheck: true},
		},
		{
			name:    "timer without calendar",
			opts:    Options{Name: "foo", ExecStart: exec, TimerEnabled: true},
			wantErr: ErrNoCalendar,
		},
		{
			name: "timer with calendar",
			opts: Options{Name: "foo", ExecStart: exec, TimerEnabled: true, OnCalendar: "daily"},
		},
		{
			name: "no calendar without timer is fine",
			opts: Options{Name: "foo", ExecStart: exec, OnCalendar: ""},
		},
		{
			name:    "exec check runs before timer check",
			opts:    Options{Name: "foo", ExecStart: filepath.Join(dir, "missing"), TimerEnabled: true},
			wantErr: ErrExecNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExec_ReportsPath(t *testing.T) {
	opts := Options{Name: "foo", ExecStart: "/no/such/binary"}

	err := opts.ValidateExec()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/no/such/binary")
}

func TestValidateTimer_Independent(t *testing.T) {
	// Callers producing only a timer may skip the exec check entirely.
	opts := Options{Name: "foo", ExecStart: "/no/such/binary", TimerEnabled: true, OnCalendar: "daily"}

	assert.NoError(t, opts.ValidateTimer())
}
