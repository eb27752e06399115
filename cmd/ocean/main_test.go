package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ocean/internal/scenario"
	"github.com/mesh-intelligence/ocean/pkg/types"
)

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "--config-dir", t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ocean v")
	assert.Contains(t, out, modulePath)
}

func TestInitCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, err := runCLI(t, "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Ocean initialized successfully")

	cfgData, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfgData), "scenario: scenario.yaml")
	assert.Contains(t, string(cfgData), "log_level: info")

	scData, err := os.ReadFile(filepath.Join(dir, "scenario.yaml"))
	require.NoError(t, err)
	assert.Equal(t, scenario.Sample, scData)
}

func TestInitKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log_level: error\n")

	_, err := runCLI(t, "--config-dir", dir, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "log_level: error\n", string(data))
}

func TestSimulateAfterInit(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "--config-dir", dir, "init")
	require.NoError(t, err)
	writeConfig(t, dir, "scenario: scenario.yaml\nlog_level: error\n")

	out, err := runCLI(t, "--config-dir", dir, "simulate")
	require.NoError(t, err)
	assert.Contains(t, out, "Beach 0 north")
	assert.Contains(t, out, "fastest: ferris (speed 30)")
	assert.Contains(t, out, "clans:   2 (largest: blue)")
	assert.Contains(t, out, "beach 0 red vs blue: winner red")
	assert.Contains(t, out, "beach 1 hermit on reef 0: ate")
	assert.Contains(t, out, "invalid: id1")
}

func TestSimulateJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log_level: error\n")
	path := filepath.Join(dir, "sc.yaml")
	require.NoError(t, os.WriteFile(path, scenario.Sample, 0o644))

	out, err := runCLI(t, "--config-dir", dir, "--json", "simulate", path)
	require.NoError(t, err)

	var report scenario.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Beaches, 2)
	assert.Equal(t, "ferris", report.Beaches[0].Fastest.Name)
	assert.Equal(t, types.DietShellfish, report.Beaches[0].Fastest.Diet)
	assert.Equal(t, 3, report.Reefs[0].Population)
}

func TestSimulateJSONFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log_level: error\noutput: json\n")
	path := filepath.Join(dir, "sc.yaml")
	require.NoError(t, os.WriteFile(path, scenario.Sample, 0o644))

	out, err := runCLI(t, "--config-dir", dir, "simulate", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected JSON output, got %q", out)
}

func TestSimulateErrors(t *testing.T) {
	t.Run("missing scenario is a user error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log_level: error\n")
		_, err := runCLI(t, "--config-dir", dir, "simulate", filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("invalid scenario is a user error", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log_level: error\n")
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hunts:\n  - {beach: 3}\n"), 0o644))

		_, err := runCLI(t, "--config-dir", dir, "simulate", path)
		assert.ErrorIs(t, err, types.ErrInvalidScenario)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("bad config value", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "output: xml\n")
		_, err := runCLI(t, "--config-dir", dir, "simulate")
		assert.ErrorIs(t, err, types.ErrOutputUnknown)
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(fmt.Errorf("x: %w", types.ErrLogLevelUnknown)))
	assert.Equal(t, exitSysError, exitCode(errors.New("disk on fire")))
}
