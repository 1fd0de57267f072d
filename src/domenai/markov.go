// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Markov training boundary markers. The start marker pads the front of
// every training string (order times); the end marker terminates it.
const (
	startMarker = "^"
	endMarker   = "$"
)

// Default Markov parameters.
const (
	defaultOrder        = 3
	defaultMarkovMinLen = 2
	defaultMarkovMaxLen = 8
	defaultCount        = 10000
	defaultMinFrequency = 2
)

// knownTLDSuffixes are stripped from corpus lines during normalization
// so the model learns bare names. Longest first is unnecessary here;
// only the first match is removed.
var knownTLDSuffixes = []string{".lt", ".com", ".net", ".org", ".io", ".co"}

// Markov is a character-level n-gram model trained on a corpus of
// domains or words. It learns transition frequencies between
// fixed-width character windows and synthesizes novel, DNS-valid
// candidates from them.
//
// The model is immutable after training: transitions and start states
// are frozen into weighted tables once the pruning pass completes.
type Markov struct {
	order        int
	minLen       int
	maxLen       int
	count        int
	tld          string
	minFrequency int
	rng          *rand.Rand

	transitions map[string]weightTable
	startStates weightTable
	training    map[string]struct{}
}

// MarkovOption is a functional option for configuring a [Markov].
type MarkovOption func(*Markov)

// WithOrder sets the n-gram order (state window width). The default is 3.
func WithOrder(order int) MarkovOption {
	return func(m *Markov) {
		m.order = order
	}
}

// WithMarkovLengthRange sets the generated name length bounds.
// The defaults are 2 and 8.
func WithMarkovLengthRange(minLen, maxLen int) MarkovOption {
	return func(m *Markov) {
		m.minLen = minLen
		m.maxLen = maxLen
	}
}

// WithCount sets the target number of generated names. The default is 10000.
func WithCount(count int) MarkovOption {
	return func(m *Markov) {
		m.count = count
	}
}

// WithMarkovTLD sets the top-level label appended to generated names.
// The default is "lt"; pass an empty string to emit bare names.
func WithMarkovTLD(tld string) MarkovOption {
	return func(m *Markov) {
		m.tld = strings.TrimPrefix(tld, ".")
	}
}

// WithMinFrequency sets the minimum n-gram frequency kept in the model
// after training. Transitions and start states seen fewer times are
// pruned. The default is 2.
func WithMinFrequency(n int) MarkovOption {
	return func(m *Markov) {
		m.minFrequency = n
	}
}

// WithRand sets the random source used for sampling. By default the
// model seeds its own PCG source; tests inject a seeded one for
// reproducible walks.
func WithRand(rng *rand.Rand) MarkovOption {
	return func(m *Markov) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// NewMarkov trains a model on a corpus file, one word or domain per
// line. It returns [ErrCorpusNotFound] when the file does not exist and
// [ErrInvalidConfiguration] for bad parameters. The file check is
// eager: no option processing failure is discovered mid-run.
func NewMarkov(corpusPath string, opts ...MarkovOption) (*Markov, error) {
	lines, err := ReadLines(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, corpusPath)
	}
	return NewMarkovFromLines(lines, opts...)
}

// NewMarkovFromLines trains a model on corpus lines already in memory.
// Most callers want [NewMarkov]; this entry point serves collaborators
// that already hold the corpus as a sequence of strings.
func NewMarkovFromLines(lines []string, opts ...MarkovOption) (*Markov, error) {
	m := &Markov{
		order:        defaultOrder,
		minLen:       defaultMarkovMinLen,
		maxLen:       defaultMarkovMaxLen,
		count:        defaultCount,
		tld:          defaultTLD,
		minFrequency: defaultMinFrequency,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.order < 1 {
		return nil, fmt.Errorf("%w: order must be at least 1, got %d", ErrInvalidConfiguration, m.order)
	}
	if m.minLen < 1 || m.maxLen < m.minLen || m.maxLen > 63 {
		return nil, fmt.Errorf("%w: length range must satisfy 1 <= min <= max <= 63, got %d..%d",
			ErrInvalidConfiguration, m.minLen, m.maxLen)
	}
	if m.count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfiguration, m.count)
	}

	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32))
	}

	m.train(lines)
	return m, nil
}

// train builds the transition and start-state tables from corpus lines,
// then prunes below-threshold entries and freezes the weighted tables.
func (m *Markov) train(lines []string) {
	transitions := make(map[string]map[string]int)
	startStates := make(map[string]int)
	m.training = make(map[string]struct{})

	for _, line := range lines {
		text := normalizeWord(line)
		if len(text) < m.order || len(text) > 63 {
			continue
		}

		m.training[text] = struct{}{}

		padded := strings.Repeat(startMarker, m.order) + text + endMarker

		startStates[padded[:m.order]]++

		for i := 0; i+m.order < len(padded); i++ {
			state := padded[i : i+m.order]
			next := string(padded[i+m.order])
			counts, ok := transitions[state]
			if !ok {
				counts = make(map[string]int)
				transitions[state] = counts
			}
			counts[next]++
		}
	}

	if m.minFrequency > 1 {
		for state, counts := range transitions {
			for next, freq := range counts {
				if freq < m.minFrequency {
					delete(counts, next)
				}
			}
			if len(counts) == 0 {
				delete(transitions, state)
			}
		}
		for state, freq := range startStates {
			if freq < m.minFrequency {
				delete(startStates, state)
			}
		}
	}

	m.transitions = make(map[string]weightTable, len(transitions))
	for state, counts := range transitions {
		m.transitions[state] = newWeightTable(counts)
	}
	m.startStates = newWeightTable(startStates)
}

// normalizeWord cleans a corpus line: lowercase, strip one recognized
// TLD suffix, drop characters outside [a-z0-9-], trim boundary hyphens.
func normalizeWord(line string) string {
	text := strings.ToLower(strings.TrimSpace(line))

	for _, tld := range knownTLDSuffixes {
		if strings.HasSuffix(text, tld) {
			text = text[:len(text)-len(tld)]
			break
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			b.WriteRune(c)
		}
	}

	return strings.Trim(b.String(), "-")
}

// Order returns the configured n-gram order.
func (m *Markov) Order() int {
	return m.order
}

// TrainingSize returns the number of deduplicated corpus entries the
// model was trained on.
func (m *Markov) TrainingSize() int {
	return len(m.training)
}

// InTrainingSet reports whether a bare (TLD-less) name was part of the
// training corpus.
func (m *Markov) InTrainingSet(name string) bool {
	_, ok := m.training[name]
	return ok
}

// States returns the number of transition states kept after pruning.
func (m *Markov) States() int {
	return len(m.transitions)
}

// StartStates returns the number of start states kept after pruning.
func (m *Markov) StartStates() int {
	return len(m.startStates.items)
}
