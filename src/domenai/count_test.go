// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateBruteWithout(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		minLen int
		maxLen int
		want   int64
	}{
		{"numbers length 1", 10, 1, 1, 10},
		{"numbers lengths 1-2", 10, 1, 2, 110},
		{"letters length 3", 26, 3, 3, 17576},
		{"alphanumeric lengths 1-3", 36, 1, 3, 36 + 1296 + 46656},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateBrute(tt.n, tt.minLen, tt.maxLen, HyphenWithout)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestEstimateBruteWithHyphens(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		minLen int
		maxLen int
		want   int64
	}{
		// Length 1 and 2 admit no hyphen placement at all.
		{"length 1 equals plain count", 26, 1, 1, 26},
		{"length 2 equals plain count", 26, 2, 2, 676},
		// Length 3 adds exactly the single-interior-hyphen strings.
		{"length 3 adds interior hyphens", 26, 3, 3, 17576 + 676},
		{"numbers length 3", 10, 3, 3, 1000 + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateBrute(tt.n, tt.minLen, tt.maxLen, HyphenWith)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestEstimateBruteOnlyHyphens(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		minLen int
		maxLen int
		want   int64
	}{
		{"length 1 has no valid placement", 26, 1, 1, 0},
		{"length 2 has no valid placement", 26, 2, 2, 0},
		{"length 3 single interior hyphen", 26, 3, 3, 676},
		// One hyphen at either interior position: 2 * 10^3.
		{"numbers length 4", 10, 4, 4, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateBrute(tt.n, tt.minLen, tt.maxLen, HyphenOnly)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestEstimateBruteDegenerateRanges(t *testing.T) {
	assert.Zero(t, EstimateBrute(0, 1, 3, HyphenWithout).Sign())
	assert.Zero(t, EstimateBrute(10, 0, 3, HyphenWithout).Sign())
	assert.Zero(t, EstimateBrute(10, 3, 2, HyphenWithout).Sign())
}

// TestEstimateBruteExceedsUint64 pins the arbitrary-precision behavior:
// the full alphanumeric length range cannot be represented in 64 bits.
func TestEstimateBruteExceedsUint64(t *testing.T) {
	got := EstimateBrute(36, 1, 63, HyphenWithout)

	maxUint64 := new(big.Int).SetUint64(^uint64(0))
	require.Equal(t, 1, got.Cmp(maxUint64), "expected count above uint64 range")
}

// TestEstimateMatchesEnumeration cross-checks the closed-form counter
// against actual enumeration over small exhaustive envelopes.
func TestEstimateMatchesEnumeration(t *testing.T) {
	tests := []struct {
		name    string
		charset Charset
		minLen  int
		maxLen  int
		mode    HyphenMode
	}{
		{"numbers without", CharsetNumbers, 1, 3, HyphenWithout},
		{"numbers with", CharsetNumbers, 1, 3, HyphenWith},
		{"numbers only", CharsetNumbers, 1, 4, HyphenOnly},
		{"letters with short", CharsetLetters, 1, 2, HyphenWith},
		{"alphanumeric only short", CharsetAlphanumeric, 1, 2, HyphenOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewBrute(
				WithCharset(tt.charset),
				WithLengthRange(tt.minLen, tt.maxLen),
				WithHyphenMode(tt.mode),
				WithTLD(""),
			)
			require.NoError(t, err)

			enumerated := int64(0)
			seq := gen.Sequence()
			for _, ok := seq.Next(); ok; _, ok = seq.Next() {
				enumerated++
			}

			assert.Equal(t, enumerated, gen.Estimate().Int64())
		})
	}
}
