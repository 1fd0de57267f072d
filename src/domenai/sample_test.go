// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestWeightTablePick(t *testing.T) {
	table := newWeightTable(map[string]int{"a": 10, "b": 5, "c": 1})
	rng := seededRand(42)

	counts := make(map[string]int)
	for range 1000 {
		choice := table.pick(rng)
		require.Contains(t, []string{"a", "b", "c"}, choice)
		counts[choice]++
	}

	// Heavily weighted outcomes dominate light ones.
	assert.Greater(t, counts["a"], counts["c"])
}

func TestWeightTablePickEmpty(t *testing.T) {
	table := newWeightTable(nil)
	assert.Equal(t, "", table.pick(seededRand(1)))
}

func TestSampleInvariants(t *testing.T) {
	const minLen, maxLen = 3, 8

	m, err := NewMarkovFromLines(markovTestCorpus,
		WithOrder(2),
		WithMarkovLengthRange(minLen, maxLen),
		WithCount(50),
		WithMinFrequency(1),
		WithMarkovTLD(""),
		WithRand(seededRand(7)),
	)
	require.NoError(t, err)

	names := m.GenerateAll()
	require.NotEmpty(t, names)
	assert.LessOrEqual(t, len(names), 50)

	seen := make(map[string]struct{})
	for _, name := range names {
		assert.GreaterOrEqual(t, len(name), minLen, "too short: %q", name)
		assert.LessOrEqual(t, len(name), maxLen, "too long: %q", name)

		assert.False(t, strings.HasPrefix(name, "-"), "leading hyphen: %q", name)
		assert.False(t, strings.HasSuffix(name, "-"), "trailing hyphen: %q", name)
		assert.NotContains(t, name, "--", "consecutive hyphens: %q", name)

		assert.False(t, m.InTrainingSet(name), "training sample leaked: %q", name)

		_, dup := seen[name]
		assert.False(t, dup, "duplicate emitted: %q", name)
		seen[name] = struct{}{}
	}
}

func TestSampleAppendsTLD(t *testing.T) {
	m, err := NewMarkovFromLines(markovTestCorpus,
		WithOrder(2),
		WithMarkovLengthRange(3, 8),
		WithCount(10),
		WithMinFrequency(1),
		WithMarkovTLD("lt"),
		WithRand(seededRand(11)),
	)
	require.NoError(t, err)

	names := m.GenerateAll()
	require.NotEmpty(t, names)
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, ".lt"), "missing TLD: %q", name)
	}
}

func TestGenerateOnDegenerateModel(t *testing.T) {
	// Every corpus line is shorter than the order, so the model trains
	// on nothing and has zero start states.
	m, err := NewMarkovFromLines([]string{"ab", "cd"},
		WithOrder(5),
		WithCount(10),
		WithMinFrequency(1),
		WithRand(seededRand(3)),
	)
	require.NoError(t, err)
	require.Zero(t, m.StartStates())

	names := m.GenerateAll()
	assert.Empty(t, names, "degenerate model must under-deliver, not fail")
}

func TestGenerateStopsAtCount(t *testing.T) {
	m, err := NewMarkovFromLines(markovTestCorpus,
		WithOrder(1),
		WithMarkovLengthRange(2, 10),
		WithCount(5),
		WithMinFrequency(1),
		WithMarkovTLD(""),
		WithRand(seededRand(99)),
	)
	require.NoError(t, err)

	names := m.GenerateAll()
	assert.LessOrEqual(t, len(names), 5)
}

func TestGenerateSequenceIsLazy(t *testing.T) {
	m, err := NewMarkovFromLines(markovTestCorpus,
		WithOrder(2),
		WithMarkovLengthRange(3, 8),
		WithCount(1000),
		WithMinFrequency(1),
		WithMarkovTLD(""),
		WithRand(seededRand(21)),
	)
	require.NoError(t, err)

	// Pull a single element; the rest of the space is never computed.
	seq := m.Generate()
	name, ok := seq.Next()
	require.True(t, ok)
	assert.NotEmpty(t, name)
}
