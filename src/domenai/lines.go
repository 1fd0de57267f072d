// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// defaultBatchSize is the number of lines buffered per batch write.
const defaultBatchSize = 10000

// ReadLines reads a file into a slice of lines. Missing files are
// reported eagerly as [ErrInputNotFound], before any processing begins.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// WriteBatches drains a [Sequence] to a file, one item per line,
// flushing every batchSize items so memory stays bounded regardless of
// the sequence length. It returns the number of items written.
//
// A batchSize below 1 falls back to the default of 10000. Parent
// directories are created as needed.
func WriteBatches(path string, seq *Sequence, batchSize int) (int, error) {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	count := 0
	pending := 0

	for {
		item, ok := seq.Next()
		if !ok {
			break
		}
		if _, err := w.WriteString(item); err != nil {
			return count, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return count, err
		}
		count++
		pending++
		if pending >= batchSize {
			if err := w.Flush(); err != nil {
				return count, err
			}
			pending = 0
		}
	}

	if err := w.Flush(); err != nil {
		return count, err
	}
	return count, f.Close()
}

// SliceSequence wraps a string slice as a [Sequence], so already
// materialized results can flow through [WriteBatches].
func SliceSequence(items []string) *Sequence {
	i := 0
	return &Sequence{
		next: func() (string, bool) {
			if i >= len(items) {
				return "", false
			}
			item := items[i]
			i++
			return item, true
		},
	}
}
