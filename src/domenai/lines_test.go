// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrInputNotFound)
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n\nthree\n"), 0o644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "", "three"}, lines)
}

func TestWriteBatchesRoundTrip(t *testing.T) {
	items := []string{"alpha.lt", "beta.lt", "gamma.lt"}
	path := filepath.Join(t.TempDir(), "out", "domains.txt")

	// Batch size below the item count forces an intermediate flush.
	written, err := WriteBatches(path, SliceSequence(items), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, items, lines)
}

func TestWriteBatchesEmptySequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	written, err := WriteBatches(path, SliceSequence(nil), 0)
	require.NoError(t, err)
	assert.Zero(t, written)

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSliceSequence(t *testing.T) {
	seq := SliceSequence([]string{"a", "b"})

	item, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, "a", item)

	item, ok = seq.Next()
	require.True(t, ok)
	assert.Equal(t, "b", item)

	_, ok = seq.Next()
	assert.False(t, ok)
}
