package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "blog.sqlite"))
	t.Setenv("LOG_LEVEL", "error")
}

func runCommand(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_UpGotoDownVersion(t *testing.T) {
	useSQLite(t)

	code, _, _ := runCommand(t, "up")
	require.Equal(t, 0, code)

	// A second run reopens the same file, so the first handle was closed cleanly
	code, out, _ := runCommand(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "version 2 (dirty: false)\n", out)

	code, _, _ = runCommand(t, "goto", "1")
	require.Equal(t, 0, code)
	_, out, _ = runCommand(t, "version")
	assert.Equal(t, "version 1 (dirty: false)\n", out)

	code, _, _ = runCommand(t, "down")
	require.Equal(t, 0, code)
	_, out, _ = runCommand(t, "version")
	assert.Equal(t, "version 0 (dirty: false)\n", out)
}

func TestRun_UsageErrors(t *testing.T) {
	useSQLite(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"sideways"}},
		{name: "goto without version", args: []string{"goto"}},
		{name: "goto with bad version", args: []string{"goto", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCommand(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestRun_BadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	code, _, stderr := runCommand(t, "up")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported DB_DRIVER")
}
