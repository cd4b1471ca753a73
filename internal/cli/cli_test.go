// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	mu, err := parseShape("3,2,1")
	require.NoError(t, err)
	assert.Equal(t, combin.Partition{3, 2, 1}, mu)

	mu, err = parseShape(" 2, 2 ")
	require.NoError(t, err)
	assert.Equal(t, combin.Partition{2, 2}, mu)

	_, err = parseShape("1,2")
	assert.ErrorIs(t, err, combin.ErrInvalidPartition)

	_, err = parseShape("x")
	assert.Error(t, err)
}

func TestRowsFor(t *testing.T) {
	assert.Equal(t, 2, rowsFor(combin.Partition{1, 1, 1}), "single column: n−1")
	assert.Equal(t, 1, rowsFor(combin.Partition{2, 1}), "n−2")
	assert.Equal(t, 1, rowsFor(combin.Partition{1}), "never below one")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "diagharm.toml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir = \"/tmp/dh\"\nworkers = 2\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dh", cfg.CacheDir)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 0, cfg.Rows, "unset keys keep defaults")

	require.NoError(t, os.WriteFile(path, []byte("workers = 0\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestHilbertCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"hilbert", "--rows", "2", "1,1,1"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "q0^3 + q0^2*q1 + q0*q1^2 + q1^3 + q0*q1\n", out.String())
}

func TestCharacterCommand_UsesCache(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "diagharm.toml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("cache_dir = \""+filepath.Join(dir, "cache")+"\"\nrows = 2\n"), 0o644))

	run := func() string {
		cmd := NewRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"character", "--config", cfgPath, "1,1,1"})
		require.NoError(t, cmd.Execute())

		return out.String()
	}

	first := run()
	assert.Equal(t, "q0^3 + q0*q1\n", first)

	// Second run is served from disk and must print the same series.
	assert.Equal(t, first, run())

	entries, err := os.ReadDir(filepath.Join(dir, "cache", "r2"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "diagharm.toml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("cache_dir = \""+filepath.Join(dir, "cache")+"\"\nworkers = 2\nrows = 2\n"), 0o644))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"batch", "--config", cfgPath, "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"[3]\t1\n[2,1]\tq0^2 + q0\n[1,1,1]\tq0^3 + q0*q1\n",
		out.String())

	cmd = NewRootCommand()
	cmd.SetArgs([]string{"batch", "nope"})
	assert.Error(t, cmd.Execute())
}
