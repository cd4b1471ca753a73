// SPDX-License-Identifier: MIT

package charcache_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/diagharm/charcache"
	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	s, err := charcache.Open(t.TempDir())
	require.NoError(t, err)

	mu := combin.Partition{2, 1}
	char := map[grading.Degree]int{
		grading.D(1, 0): 1,
		grading.D(2, 0): 1,
	}

	_, ok, err := s.Get(mu)
	require.NoError(t, err)
	assert.False(t, ok, "clean miss before Put")

	require.NoError(t, s.Put(mu, char))

	got, ok, err := s.Get(mu)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, char, got)

	// The entry is a plain YAML file named after the partition.
	_, err = os.Stat(filepath.Join(s.Dir(), "2-1.yaml"))
	assert.NoError(t, err)
}

func TestStore_GetOrCompute(t *testing.T) {
	s, err := charcache.Open(t.TempDir())
	require.NoError(t, err)

	mu := combin.Partition{3}
	char := map[grading.Degree]int{grading.D(0, 0): 1}
	calls := 0
	compute := func() (map[grading.Degree]int, error) {
		calls++

		return char, nil
	}

	got, err := s.GetOrCompute(mu, compute)
	require.NoError(t, err)
	assert.Equal(t, char, got)

	got, err = s.GetOrCompute(mu, compute)
	require.NoError(t, err)
	assert.Equal(t, char, got)
	assert.Equal(t, 1, calls, "second call served from disk")

	wantErr := errors.New("boom")
	_, err = s.GetOrCompute(combin.Partition{1, 1, 1}, func() (map[grading.Degree]int, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	_, ok, err := s.Get(combin.Partition{1, 1, 1})
	require.NoError(t, err)
	assert.False(t, ok, "failed compute writes nothing")
}

func TestStore_Corrupt(t *testing.T) {
	s, err := charcache.Open(t.TempDir())
	require.NoError(t, err)

	mu := combin.Partition{2}
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "2.yaml"), []byte("\t:not yaml"), 0o644))

	_, _, err = s.Get(mu)
	assert.ErrorIs(t, err, charcache.ErrCorrupt)
}
