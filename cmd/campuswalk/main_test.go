package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campuswalk/campus"
	"github.com/katalvlaran/campuswalk/config"
)

var (
	campusMap = filepath.Join("testdata", "campus.dot")
	ansi      = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// run executes the root command with args and returns stdout, stderr and the
// command error. ANSI sequences are stripped from stdout.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return ansi.ReplaceAllString(out.String(), ""), errOut.String(), err
}

// ---- 1. route

func TestRoute_Stops(t *testing.T) {
	out, _, err := run(t, "--map", campusMap, "route", "Union South", "Atmospheric, Oceanic and Space Sciences")
	require.NoError(t, err)
	assert.Equal(t, "Results List:\n"+
		"\tUnion South\n"+
		"\tComputer Sciences and Statistics\n"+
		"\tAtmospheric, Oceanic and Space Sciences\n", out)
}

func TestRoute_Times(t *testing.T) {
	out, _, err := run(t, "--map", campusMap, "route", "--times",
		"Union South", "Atmospheric, Oceanic and Space Sciences")
	require.NoError(t, err)
	assert.Equal(t, "Results List:\n"+
		"\tUnion South\n"+
		"\t-> Computer Sciences and Statistics (176.00 seconds)\n"+
		"\t-> Atmospheric, Oceanic and Space Sciences (80.00 seconds)\n"+
		"\tTotal Time: 4.27 minutes\n", out)
}

func TestRoute_Via(t *testing.T) {
	out, _, err := run(t, "--map", campusMap, "route", "--times", "--via", "Memorial Union",
		"Union South", "Bascom Hall")
	require.NoError(t, err)
	assert.Contains(t, out, "\t-> Wendt Commons (112.80 seconds)\n")
	assert.Contains(t, out, "\t-> Memorial Union (415.20 seconds)\n")
	assert.Contains(t, out, "\t-> Bascom Hall (289.40 seconds)\n")
	assert.Contains(t, out, "Total Time: 16.56 minutes")
}

func TestRoute_NoPath(t *testing.T) {
	out, _, err := run(t, "--map", campusMap, "route", "Bascom Hall", "Observatory")
	require.NoError(t, err)
	assert.Equal(t, "Results List:\nNo Paths Found\n", out)
}

func TestRoute_UnknownLocation(t *testing.T) {
	_, _, err := run(t, "--map", campusMap, "route", "Union South", "Moon Base")
	require.ErrorIs(t, err, campus.ErrUnknownLocation)
	assert.Contains(t, err.Error(), "Moon Base")
}

func TestRoute_ArgCount(t *testing.T) {
	_, _, err := run(t, "--map", campusMap, "route", "Union South")
	require.Error(t, err)
}

// ---- 2. locations and reachable

func TestLocations(t *testing.T) {
	out, _, err := run(t, "--map", campusMap, "locations")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Union South", lines[0])
	assert.Equal(t, "Observatory", lines[6])
}

func TestReachable(t *testing.T) {
	out, _, err := run(t, "--map", campusMap, "reachable", "Bascom Hall", "--max-hops", "1")
	require.NoError(t, err)
	assert.Equal(t, "Reachable from Bascom Hall:\n"+
		"\t0  Bascom Hall\n"+
		"\t1  Memorial Union\n", out)
}

// ---- 3. setup

func TestMissingMap(t *testing.T) {
	_, _, err := run(t, "locations")
	require.ErrorIs(t, err, errNoMap)
}

func TestMapFileNotFound(t *testing.T) {
	_, _, err := run(t, "--map", filepath.Join(t.TempDir(), "nope.dot"), "locations")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "campuswalk.yaml")
	abs, err := filepath.Abs(campusMap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("map_file: "+abs+"\nlog:\n  level: debug\n"), 0o600))

	out, _, err := run(t, "--config", path, "locations")
	require.NoError(t, err)
	assert.Contains(t, out, "Bascom Hall")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, _, err := run(t, "--map", campusMap, "--log-level", "loud", "locations")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
