// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// weightTable is an immutable frequency distribution over discrete
// outcomes, frozen after training. Sampling never mutates it.
type weightTable struct {
	items []weightedItem
	total int
}

type weightedItem struct {
	value  string
	weight int
}

// newWeightTable freezes frequency counts into an ordered weighted
// list. Entries are sorted by value so the table layout does not depend
// on map iteration order.
func newWeightTable(counts map[string]int) weightTable {
	items := make([]weightedItem, 0, len(counts))
	total := 0
	for value, weight := range counts {
		if weight <= 0 {
			continue
		}
		items = append(items, weightedItem{value: value, weight: weight})
		total += weight
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].value < items[j].value
	})
	return weightTable{items: items, total: total}
}

// pick selects one outcome with probability proportional to its
// frequency. It returns "" on an empty table.
func (t weightTable) pick(rng *rand.Rand) string {
	if t.total == 0 {
		return ""
	}
	target := rng.IntN(t.total)
	for _, item := range t.items {
		target -= item.weight
		if target < 0 {
			return item.value
		}
	}
	// Unreachable: weights sum to total.
	return t.items[len(t.items)-1].value
}

// sampleOne walks the transition table once and returns a bare
// candidate name, or "" when the walk fails (no start states, dead-end
// state, out-of-range length, or invalid hyphen placement).
//
// Drawing the end marker before minLen does not terminate the walk; the
// sampler keeps drawing for a longer completion, bounded only by the
// shared 3*maxLen attempt ceiling.
func (m *Markov) sampleOne() string {
	state := m.startStates.pick(m.rng)
	if state == "" {
		return ""
	}

	result := strings.ReplaceAll(state, startMarker, "")

	for attempts := 0; attempts < 3*m.maxLen; attempts++ {
		table, ok := m.transitions[state]
		if !ok {
			break
		}

		next := table.pick(m.rng)
		if next == "" {
			break
		}

		if next == endMarker {
			if len(result) >= m.minLen {
				break
			}
			continue
		}

		result += next
		if len(result) >= m.maxLen {
			break
		}

		// Slide the state window forward by one character.
		state = state[1:] + next
	}

	if len(result) < m.minLen || len(result) > m.maxLen {
		return ""
	}
	if !hyphensValid(result) {
		return ""
	}

	return result
}

// Generate starts a lazy stream of unique generated names. Each name is
// absent from the training corpus and from earlier output of the same
// stream, and carries the configured TLD.
//
// The stream ends after the configured count, or earlier once an
// attempt budget of count*100 samples is exhausted. Under-delivery is a
// normal outcome, not an error: a degenerate model (e.g., zero start
// states after pruning) yields an empty stream.
func (m *Markov) Generate() *Sequence {
	emitted := make(map[string]struct{})
	attempts := 0

	return &Sequence{
		next: func() (string, bool) {
			for len(emitted) < m.count && attempts < m.count*100 {
				attempts++

				name := m.sampleOne()
				if name == "" {
					continue
				}
				if _, ok := m.training[name]; ok {
					continue
				}
				if _, ok := emitted[name]; ok {
					continue
				}

				emitted[name] = struct{}{}
				if m.tld != "" {
					return name + "." + m.tld, true
				}
				return name, true
			}
			return "", false
		},
	}
}

// GenerateAll drains [Markov.Generate] into a slice. Convenience for
// callers that want the whole batch at once.
func (m *Markov) GenerateAll() []string {
	names := make([]string, 0, m.count)
	seq := m.Generate()
	for {
		name, ok := seq.Next()
		if !ok {
			return names
		}
		names = append(names, name)
	}
}

// Estimate returns the target generation count. Unlike the brute
// generator there is no deterministic total; the target is the best
// available figure.
func (m *Markov) Estimate() int {
	return m.count
}
