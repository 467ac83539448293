// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/strpcmp

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := Command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query, pattern, want string
	}{
		{"abcd", "ab*", "yes\n"},
		{"aab", "ab*", "no\n"},
		{"dcab", "*ab", "yes\n"},
		{"ab00cd", "ab*cd", "yes\n"},
		{"ab0cdd", "ab*cd", "no\n"},
		{"", "*", "yes\n"},
	}

	for _, tc := range tests {
		stdout, _, err := execute(t, "", tc.query, tc.pattern)
		require.NoError(t, err)
		assert.Equal(t, tc.want, stdout, "query=%q pattern=%q", tc.query, tc.pattern)
	}
}

func TestMatchSubcommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "match", "ab000ab", "*000*")
	require.NoError(t, err)
	assert.Equal(t, "yes\n", stdout)

	stdout, _, err = execute(t, "", "match", "00ab", "*000*")
	require.NoError(t, err)
	assert.Equal(t, "no\n", stdout)
}

func TestMatchQuiet(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "match", "-q", "abc", "a*")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	stdout, _, err = execute(t, "", "-q", "abc", "b*")
	require.ErrorIs(t, err, ErrNoMatch)
	assert.Empty(t, stdout)
}

func TestMatchWrongArgCount(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "only-one")
	require.ErrorIs(t, err, errExpectedTwoArgs)

	_, _, err = execute(t, "", "match", "a", "b", "c")
	require.ErrorIs(t, err, errExpectedTwoArgs)
}

func TestMatchDebugLogging(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "", "--log.level=debug", "match", "abc", "a*")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, "matched=true")

	_, stderr, err = execute(t, "", "match", "abc", "a*")
	require.NoError(t, err)
	assert.Empty(t, stderr, "debug logs are filtered at the default level")
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "--log.level=loud", "match", "a", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log level")
}

func TestFilterArgsAndInlineRules(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "",
		"filter", "--rule", "*.tmp", "--rule", "!keep*",
		"a.tmp", "keep.tmp", "main.go",
	)
	require.NoError(t, err)
	assert.Equal(t, "keep.tmp\nmain.go\n", stdout)
}

func TestFilterStdinWithExtensions(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "main.go\r\nREADME.MD\nnotes.txt\n",
		"filter", "--ext", "go,md", "--default", "exclude", "-i",
	)
	require.NoError(t, err)
	assert.Equal(t, "main.go\nREADME.MD\n", stdout)
}

func TestFilterInvert(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "",
		"filter", "--rule", "*.log", "--invert",
		"a.log", "b.txt",
	)
	require.NoError(t, err)
	assert.Equal(t, "a.log\n", stdout)
}

func TestFilterConfigAndRulesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "extra.rules")
	configPath := filepath.Join(dir, "strpcmp.yaml")

	require.NoError(t, os.WriteFile(rulesPath, []byte("!*_keep.bin\n"), 0o600))
	require.NoError(t, os.WriteFile(configPath, []byte(`
rules:
  - pattern: "*.bin"
    action: exclude
options:
  default_action: include
`), 0o600))

	stdout, _, err := execute(t, "",
		"filter", "--config", configPath, "--rules", rulesPath,
		"a.bin", "a_keep.bin", "a.txt",
	)
	require.NoError(t, err)
	assert.Equal(t, "a_keep.bin\na.txt\n", stdout)

	stdout, _, err = execute(t, "",
		"filter", "--config", configPath, "--default", "exclude",
		"a.bin", "a.txt",
	)
	require.NoError(t, err)
	assert.Empty(t, stdout, "--default overrides config default")
}

func TestFilterErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "filter", "--default", "maybe", "a")
	require.Error(t, err)

	_, _, err = execute(t, "", "filter", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "a")
	require.ErrorIs(t, err, os.ErrNotExist)
}
