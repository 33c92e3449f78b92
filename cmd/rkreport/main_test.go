package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/rabinkarp/report"
)

func TestRunDefaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-o", out}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `Pattern "abc": matches=2, `))
	assert.True(t, strings.HasSuffix(lines[0], "indices=[0, 3]"))
	assert.True(t, strings.HasSuffix(lines[1], "indices=[10]"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), report.Header+"\n"))
	assert.Contains(t, stderr.String(), "report written")
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	cfg := `{
  "Options": {"Base": 31, "Modulus": 2305843009213693951},
  "Unit": "UTF16",
  "Examples": [{"Text": "ü-ü-ü", "Pattern": "ü-"}]
}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out := filepath.Join(dir, "out.csv")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(),
		[]string{"-v", "-config", cfgPath, "-o", out}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "indices=[0, 2]")
	assert.Contains(t, stderr.String(), "modulus=2305843009213693951")
	assert.Contains(t, stderr.String(), "unit=UTF16")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ü-ü-ü","ü-",5,2,2,`)

	// the flag overrides the configuration file
	stdout.Reset()
	err = run(context.Background(),
		[]string{"-config", cfgPath, "-units", "Bytes", "-o", out},
		&stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "indices=[0, 3]")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-units", "EBCDIC"},
		&stdout, &stderr)
	require.Error(t, err)

	err = run(context.Background(), []string{"-h"}, &stdout, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Equal(t, 0, exitCode(err))

	err = run(context.Background(), []string{"extra"}, &stdout, &stderr)
	require.Error(t, err)

	err = run(context.Background(),
		[]string{"-config", filepath.Join(dir, "missing.json")},
		&stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad,
		[]byte(`{"Options": {"Modulus": 12}}`), 0o644))
	err = run(context.Background(),
		[]string{"-config", bad, "-o", filepath.Join(dir, "out.csv")},
		&stdout, &stderr)
	require.ErrorContains(t, err, "must be prime")

	err = run(context.Background(),
		[]string{"-o", filepath.Join(dir, "no", "such", "dir.csv")},
		&stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 0, exitCode(flag.ErrHelp))
	assert.Equal(t, 0, exitCode(fmt.Errorf("parse: %w", flag.ErrHelp)))
	assert.Equal(t, 1, exitCode(errors.New("rkreport: failed")))
	assert.Equal(t, 1, exitCode(os.ErrNotExist))
}
