// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"fmt"
	"strings"

	psl "github.com/weppos/publicsuffix-go/publicsuffix"
	"golang.org/x/net/publicsuffix"
)

// SuffixSplitter splits an already-normalized (lowercase, trimmed) domain
// into subdomain, registrable name, and public suffix using longest-match
// public suffix rules.
//
// Empty name or suffix components signal that no registrable name could
// be extracted (e.g., the input is itself a public suffix).
type SuffixSplitter interface {
	Split(domain string) (sub, name, suffix string)
}

// pslSplitter is the default [SuffixSplitter], backed by the public
// suffix list embedded in golang.org/x/net/publicsuffix.
type pslSplitter struct{}

// Split implements [SuffixSplitter] using the embedded public suffix list.
func (pslSplitter) Split(domain string) (sub, name, suffix string) {
	suffix, _ = publicsuffix.PublicSuffix(domain)
	if suffix == "" || suffix == domain {
		return "", "", suffix
	}

	rest, ok := strings.CutSuffix(domain, "."+suffix)
	if !ok {
		return "", "", suffix
	}

	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		return rest[:i], rest[i+1:], suffix
	}
	return "", rest, suffix
}

// ListSplitter is a [SuffixSplitter] backed by an explicit suffix rule
// list instead of the embedded public suffix list. Use it to pin
// validation to a fixed rule set (tests, air-gapped runs, or a custom
// registry policy loaded from configuration).
type ListSplitter struct {
	list *psl.List
}

// NewListSplitter builds a [ListSplitter] from suffix rules in public
// suffix list syntax (e.g., "lt", "gov.lt", "*.example").
func NewListSplitter(rules ...string) (*ListSplitter, error) {
	list := psl.NewList()
	for _, raw := range rules {
		rule, err := psl.NewRule(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: suffix rule %q: %v", ErrInvalidConfiguration, raw, err)
		}
		if err := list.AddRule(rule); err != nil {
			return nil, fmt.Errorf("%w: suffix rule %q: %v", ErrInvalidConfiguration, raw, err)
		}
	}
	return &ListSplitter{list: list}, nil
}

// NewListSplitterFromFile builds a [ListSplitter] from a file in public
// suffix list format.
func NewListSplitterFromFile(path string) (*ListSplitter, error) {
	list, err := psl.NewListFromFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	return &ListSplitter{list: list}, nil
}

// Split implements [SuffixSplitter] over the configured rule list.
// Matching is strict: no wildcard fallback applies, so names outside
// the rule list yield no suffix at all.
func (s *ListSplitter) Split(domain string) (sub, name, suffix string) {
	parsed, err := psl.ParseFromListWithOptions(s.list, domain, &psl.FindOptions{DefaultRule: nil})
	if err != nil {
		// No registrable name under the rule list, e.g. the input is
		// itself a suffix.
		return "", "", ""
	}
	return parsed.TRD, parsed.SLD, parsed.TLD
}
