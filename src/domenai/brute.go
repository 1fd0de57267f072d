// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"fmt"
	"math/big"
)

// Default brute generation parameters.
const (
	defaultBruteMinLen = 2
	defaultBruteMaxLen = 4
	defaultTLD         = "lt"
)

// Brute systematically produces every DNS-valid name in a
// charset/length envelope, suffixed with the configured TLD.
//
// Enumeration is lazy: a [Sequence] computes one name at a time, so
// memory stays bounded no matter how large the combinatorial space is.
type Brute struct {
	charset  Charset
	minLen   int
	maxLen   int
	mode     HyphenMode
	tld      string
	alphabet string
}

// BruteOption is a functional option for configuring a [Brute].
type BruteOption func(*Brute)

// WithCharset sets the character set. The default is [CharsetAlphanumeric].
func WithCharset(c Charset) BruteOption {
	return func(b *Brute) {
		b.charset = c
	}
}

// WithLengthRange sets the generated name length bounds (TLD excluded).
// The defaults are 2 and 4.
func WithLengthRange(minLen, maxLen int) BruteOption {
	return func(b *Brute) {
		b.minLen = minLen
		b.maxLen = maxLen
	}
}

// WithHyphenMode sets the hyphen handling mode. The default is [HyphenWith].
func WithHyphenMode(mode HyphenMode) BruteOption {
	return func(b *Brute) {
		b.mode = mode
	}
}

// WithTLD sets the top-level label appended to every generated name.
// The default is "lt".
func WithTLD(tld string) BruteOption {
	return func(b *Brute) {
		b.tld = tld
	}
}

// NewBrute creates a [Brute] generator. It returns
// [ErrInvalidConfiguration] when the charset or hyphen mode is unknown
// or the length range violates 1 <= min <= max <= 63.
func NewBrute(opts ...BruteOption) (*Brute, error) {
	b := &Brute{
		charset: CharsetAlphanumeric,
		minLen:  defaultBruteMinLen,
		maxLen:  defaultBruteMaxLen,
		mode:    HyphenWith,
		tld:     defaultTLD,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.minLen < 1 || b.maxLen < b.minLen || b.maxLen > 63 {
		return nil, fmt.Errorf("%w: length range must satisfy 1 <= min <= max <= 63, got %d..%d",
			ErrInvalidConfiguration, b.minLen, b.maxLen)
	}

	alphabet, err := alphabetFor(b.charset, b.mode)
	if err != nil {
		return nil, err
	}
	b.alphabet = alphabet

	return b, nil
}

// Estimate returns the exact number of names [Brute.Sequence] will
// produce, without materializing any of them.
func (b *Brute) Estimate() *big.Int {
	base, _ := baseAlphabet(b.charset)
	return EstimateBrute(len(base), b.minLen, b.maxLen, b.mode)
}

// Sequence starts a fresh enumeration from the beginning. Names come
// out lengths ascending, and within a length in lexicographic order of
// the alphabet. Sequences are restartable from scratch, not resumable.
func (b *Brute) Sequence() *Sequence {
	return &Sequence{
		next: b.enumerate(),
	}
}

// Sequence is a pull-based lazy stream of generated names.
// Call [Sequence.Next] until it reports false.
type Sequence struct {
	next func() (string, bool)
}

// Next returns the next name and true, or "" and false when the
// sequence is exhausted.
func (s *Sequence) Next() (string, bool) {
	return s.next()
}

// enumerate returns a closure stepping an odometer over the alphabet,
// one validated name per call.
func (b *Brute) enumerate() func() (string, bool) {
	length := b.minLen
	indices := make([]int, length)
	done := false
	buf := make([]byte, 0, b.maxLen)

	advance := func() {
		// Rightmost position ticks fastest, lexicographic order.
		for pos := length - 1; pos >= 0; pos-- {
			indices[pos]++
			if indices[pos] < len(b.alphabet) {
				return
			}
			indices[pos] = 0
		}
		length++
		if length > b.maxLen {
			done = true
			return
		}
		indices = make([]int, length)
	}

	return func() (string, bool) {
		for !done {
			buf = buf[:0]
			for _, idx := range indices {
				buf = append(buf, b.alphabet[idx])
			}
			name := string(buf)
			advance()

			if !validName(name, b.mode) {
				continue
			}
			if b.tld != "" {
				return name + "." + b.tld, true
			}
			return name, true
		}
		return "", false
	}
}
