// SPDX-License-Identifier: MIT

package ranker_test

import (
	"testing"

	"github.com/katalvlaran/diagharm/ranker"
	"github.com/stretchr/testify/assert"
)

// TestRanker_AppendOnly verifies first-seen ordering and stability of ranks.
func TestRanker_AppendOnly(t *testing.T) {
	r := ranker.New()

	assert.Equal(t, 0, r.Rank("x"), "first key gets rank 0")
	assert.Equal(t, 1, r.Rank("y"), "second key gets rank 1")
	assert.Equal(t, 0, r.Rank("x"), "ranks are stable on re-query")
	assert.Equal(t, 2, r.Rank("z"), "next fresh key continues the sequence")
	assert.Equal(t, 3, r.Len())
}

// TestRanker_Unrank checks the inverse mapping and its bounds behavior.
func TestRanker_Unrank(t *testing.T) {
	r := ranker.New()
	r.Rank(42)
	r.Rank("mixed keys are fine")

	k, ok := r.Unrank(0)
	assert.True(t, ok)
	assert.Equal(t, 42, k)

	k, ok = r.Unrank(1)
	assert.True(t, ok)
	assert.Equal(t, "mixed keys are fine", k)

	_, ok = r.Unrank(2)
	assert.False(t, ok, "out-of-range index reports absence")
	_, ok = r.Unrank(-1)
	assert.False(t, ok)
}

// TestRanker_Determinism replays a key stream and expects identical ranks.
func TestRanker_Determinism(t *testing.T) {
	stream := []any{"a", "b", "a", "c", "b", "d"}

	r1, r2 := ranker.New(), ranker.New()
	for _, k := range stream {
		assert.Equal(t, r1.Rank(k), r2.Rank(k), "same stream, same ranks")
	}
	assert.Equal(t, r1.Len(), r2.Len())
}
