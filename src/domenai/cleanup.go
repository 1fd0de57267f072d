// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"sort"
	"strings"
)

// CleanResult summarizes a batch cleanup run.
type CleanResult struct {
	// Domains is the deduplicated, sorted set of accepted canonical
	// domains.
	Domains []string

	// Rejections records every rejected line with its reason, in input
	// order.
	Rejections []Rejection

	// Processed counts non-blank input lines.
	Processed int

	// Skipped counts rejected lines.
	Skipped int
}

// CleanLines runs every input line through the validator, collecting
// accepted canonical domains (deduplicated, sorted) and per-line
// rejections. Blank lines are skipped without counting.
//
// Every producer that emits candidate strings shares this validator:
// batch cleanup here and the word transformer both delegate to
// [Validator.Process], so one policy governs all output.
func CleanLines(lines []string, v *Validator) CleanResult {
	if v == nil {
		v = NewValidator()
	}

	seen := make(map[string]struct{})
	var result CleanResult

	for i, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		result.Processed++

		domain, reason := v.Process(raw)
		if reason != ReasonNone {
			result.Skipped++
			result.Rejections = append(result.Rejections, Rejection{
				Line:   i + 1,
				Raw:    raw,
				Reason: reason,
			})
			continue
		}
		seen[domain] = struct{}{}
	}

	result.Domains = make([]string, 0, len(seen))
	for domain := range seen {
		result.Domains = append(result.Domains, domain)
	}
	sort.Strings(result.Domains)

	return result
}

// RemoveDomains subtracts removees from parent using case-insensitive
// matching on trimmed lines. It preserves the parent ordering and
// returns the kept lines plus the number removed.
func RemoveDomains(parent, removees []string) ([]string, int) {
	drop := make(map[string]struct{}, len(removees))
	for _, line := range removees {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		drop[strings.ToLower(line)] = struct{}{}
	}

	kept := make([]string, 0, len(parent))
	removed := 0

	for _, line := range parent {
		domain := strings.TrimSpace(line)
		if domain == "" {
			continue
		}
		if _, ok := drop[strings.ToLower(domain)]; ok {
			removed++
			continue
		}
		kept = append(kept, domain)
	}

	return kept, removed
}
