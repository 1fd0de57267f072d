// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"strings"
)

// lithuanianToLatin maps Lithuanian diacritics to their Latin
// equivalents for domain transliteration.
var lithuanianToLatin = map[rune]rune{
	'ą': 'a', 'č': 'c', 'ę': 'e', 'ė': 'e', 'į': 'i',
	'š': 's', 'ų': 'u', 'ū': 'u', 'ž': 'z',
	'Ą': 'A', 'Č': 'C', 'Ę': 'E', 'Ė': 'E', 'Į': 'I',
	'Š': 'S', 'Ų': 'U', 'Ū': 'U', 'Ž': 'Z',
}

// WordTransformer turns dictionary words into candidate domains:
// lowercase, Lithuanian diacritics transliterated, invalid characters
// stripped, TLD appended, then validated through the shared [Validator]
// policy so its output obeys exactly the same rules as every other
// producer.
type WordTransformer struct {
	tld       string
	validator *Validator
}

// NewWordTransformer creates a transformer appending the given TLD.
// Foreign TLDs are tolerated during validation (the transformer itself
// chose the suffix); subdomains are not.
func NewWordTransformer(tld string, opts ...ValidatorOption) *WordTransformer {
	tld = strings.TrimPrefix(tld, ".")
	base := []ValidatorOption{
		WithTargetTLD(tld),
		WithAllowOtherTLDs(true),
	}
	return &WordTransformer{
		tld:       tld,
		validator: NewValidator(append(base, opts...)...),
	}
}

// Transform converts one word into a canonical domain. It returns the
// domain and [ReasonNone] on success, or the rejection reason.
func (t *WordTransformer) Transform(word string) (string, Reason) {
	lowered := strings.ToLower(word)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, c := range lowered {
		if latin, ok := lithuanianToLatin[c]; ok {
			c = latin
		}
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' {
			b.WriteRune(c)
		}
	}

	candidate := b.String()
	if t.tld != "" {
		candidate += "." + t.tld
	}

	return t.validator.Process(candidate)
}

// TransformLines converts input words line by line, returning the
// accepted canonical domains in input order and the rejections.
// Blank lines are skipped.
func (t *WordTransformer) TransformLines(lines []string) ([]string, []Rejection) {
	var (
		domains    []string
		rejections []Rejection
	)

	for i, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}

		domain, reason := t.Transform(word)
		if reason != ReasonNone {
			rejections = append(rejections, Rejection{Line: i + 1, Raw: line, Reason: reason})
			continue
		}
		domains = append(domains, domain)
	}

	return domains, rejections
}

// EstimateLines returns the number of non-blank input lines, the upper
// bound on how many domains [WordTransformer.TransformLines] can yield.
func EstimateLines(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
