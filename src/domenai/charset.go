// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"fmt"
	"strings"
)

// Charset selects the base alphabet for brute-force generation.
type Charset string

// Supported character sets.
const (
	CharsetNumbers      Charset = "numbers"
	CharsetLetters      Charset = "letters"
	CharsetAlphanumeric Charset = "alphanumeric"
)

// HyphenMode controls hyphen placement in generated names.
type HyphenMode string

// Supported hyphen modes.
const (
	// HyphenWith allows hyphens at valid (interior, non-consecutive)
	// positions.
	HyphenWith HyphenMode = "with"

	// HyphenWithout excludes hyphens entirely.
	HyphenWithout HyphenMode = "without"

	// HyphenOnly requires at least one hyphen at a valid position.
	HyphenOnly HyphenMode = "only"
)

// characterSets maps each [Charset] to its hyphen-free alphabet,
// in enumeration order.
var characterSets = map[Charset]string{
	CharsetNumbers:      "0123456789",
	CharsetLetters:      "abcdefghijklmnopqrstuvwxyz",
	CharsetAlphanumeric: "abcdefghijklmnopqrstuvwxyz0123456789",
}

// baseAlphabet returns the hyphen-free alphabet for a charset.
func baseAlphabet(c Charset) (string, error) {
	chars, ok := characterSets[c]
	if !ok {
		return "", fmt.Errorf("%w: unknown charset %q", ErrInvalidConfiguration, c)
	}
	return chars, nil
}

// alphabetFor returns the full generation alphabet for a charset and
// hyphen mode. Modes that place hyphens append '-' after the base
// characters, preserving enumeration order.
func alphabetFor(c Charset, mode HyphenMode) (string, error) {
	chars, err := baseAlphabet(c)
	if err != nil {
		return "", err
	}
	switch mode {
	case HyphenWith, HyphenOnly:
		return chars + "-", nil
	case HyphenWithout:
		return chars, nil
	default:
		return "", fmt.Errorf("%w: unknown hyphen mode %q", ErrInvalidConfiguration, mode)
	}
}

// hyphensValid reports whether s satisfies the DNS hyphen placement
// rules: no leading or trailing hyphen and no consecutive hyphens.
func hyphensValid(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	return !strings.Contains(s, "--")
}

// validName reports whether a generated name satisfies the hyphen
// placement rules plus the mode requirement (mode [HyphenOnly] demands
// at least one hyphen).
func validName(s string, mode HyphenMode) bool {
	if !hyphensValid(s) {
		return false
	}
	if mode == HyphenOnly && !strings.Contains(s, "-") {
		return false
	}
	return true
}
