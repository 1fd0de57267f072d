// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/miekg/dns"
)

// Default government allowlists for the .lt registry policy.
// Second-level authority names keep their subdomains during cleanup.
var (
	defaultGovDomains  = []string{"lrv", "edu", "mil"}
	defaultGovSuffixes = []string{"lrv.lt", "edu.lt", "mil.lt", "gov.lt"}
)

var (
	schemeRe    = regexp.MustCompile(`^[a-zA-Z]+://`)
	ipv4Re      = regexp.MustCompile(`^\d+(\.\d+){3}$`)
	wordCharsRe = regexp.MustCompile(`^[\p{L}\p{N}_\-.]+$`)
)

// punycodePrefix is the ASCII-compatible-encoding prefix. Labels carrying
// it are exempt from the consecutive-hyphen rule.
const punycodePrefix = "xn--"

// Validator normalizes raw candidate strings and classifies them as
// accepted canonical domains or rejected with a [Reason].
//
// Validation is a pure function of the configured policy: accepted output
// re-validates to itself, and a rejection never carries a domain.
type Validator struct {
	targetTLD       string
	allowOtherTLDs  bool
	allowSubdomains bool
	govDomains      map[string]struct{}
	govSuffixes     map[string]struct{}
	splitter        SuffixSplitter
}

// ValidatorOption is a functional option for configuring a [Validator].
type ValidatorOption func(*Validator)

// WithTargetTLD sets the enforced top-level suffix. The default is "lt".
// Pass an empty string to disable suffix enforcement entirely.
func WithTargetTLD(tld string) ValidatorOption {
	return func(v *Validator) {
		v.targetTLD = strings.TrimPrefix(tld, ".")
	}
}

// WithAllowOtherTLDs accepts suffixes other than the target TLD.
// The default is false.
func WithAllowOtherTLDs(allow bool) ValidatorOption {
	return func(v *Validator) {
		v.allowOtherTLDs = allow
	}
}

// WithAllowSubdomains accepts subdomains on non-governmental names.
// The default is false.
func WithAllowSubdomains(allow bool) ValidatorOption {
	return func(v *Validator) {
		v.allowSubdomains = allow
	}
}

// WithGovDomains replaces the government second-level label allowlist.
// The defaults are lrv, edu, and mil.
func WithGovDomains(labels ...string) ValidatorOption {
	return func(v *Validator) {
		v.govDomains = toSet(labels)
	}
}

// WithGovSuffixes replaces the government suffix allowlist.
// The defaults are lrv.lt, edu.lt, mil.lt, and gov.lt.
func WithGovSuffixes(suffixes ...string) ValidatorOption {
	return func(v *Validator) {
		v.govSuffixes = toSet(suffixes)
	}
}

// WithSuffixSplitter sets a custom public-suffix splitter, e.g. a
// [ListSplitter] pinned to a fixed rule set. The default uses the
// public suffix list embedded in golang.org/x/net/publicsuffix.
func WithSuffixSplitter(s SuffixSplitter) ValidatorOption {
	return func(v *Validator) {
		if s != nil {
			v.splitter = s
		}
	}
}

// NewValidator creates a [Validator] with the Lithuanian registry
// defaults: target TLD "lt", government allowlists for lrv/edu/mil/gov,
// no foreign suffixes, no subdomains.
//
//	// Default policy:
//	v := domenai.NewValidator()
//
//	// Accept any TLD and subdomains:
//	v := domenai.NewValidator(
//	    domenai.WithAllowOtherTLDs(true),
//	    domenai.WithAllowSubdomains(true),
//	)
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{
		targetTLD:   "lt",
		govDomains:  toSet(defaultGovDomains),
		govSuffixes: toSet(defaultGovSuffixes),
		splitter:    pslSplitter{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Process normalizes raw input and validates it against the configured
// policy. It returns the canonical domain and [ReasonNone] on acceptance,
// or an empty string and the rejection reason otherwise.
//
// Normalization strips whitespace, trailing dots, URL schemes, and a
// leading "www." label, then lowercases. Policy checks run in order:
// IPv4 literal, character set, suffix extraction, TLD enforcement,
// subdomain policy, per-label length, and hyphen placement.
func (v *Validator) Process(raw string) (string, Reason) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", ReasonEmptyLine
	}

	cleaned = strings.TrimRight(cleaned, ".")

	if schemeRe.MatchString(cleaned) {
		if u, err := url.Parse(cleaned); err == nil && u.Host != "" {
			cleaned = u.Host
		}
	}

	if len(cleaned) >= 4 && strings.EqualFold(cleaned[:4], "www.") {
		cleaned = cleaned[4:]
	}

	if ipv4Re.MatchString(cleaned) {
		return "", ReasonIPAddress
	}

	if !wordCharsRe.MatchString(cleaned) {
		return "", ReasonInvalidChars
	}

	cleaned = strings.ToLower(cleaned)

	sub, name, suffix := v.splitter.Split(cleaned)
	if name == "" || suffix == "" {
		return "", ReasonInvalidSuffix
	}

	domain := name + "." + suffix

	if v.targetTLD != "" && suffix != v.targetTLD && !v.isGovSuffix(suffix) && !v.allowOtherTLDs {
		return "", ReasonDisallowedTLD
	}

	// Subdomain policy. Government authorities under the lt family keep
	// their subdomain prefix; everything else needs explicit permission.
	if suffix == "lt" || v.isGovSuffix(suffix) {
		if v.isGovSuffix(suffix) || v.isGovDomain(name) {
			if sub != "" {
				domain = sub + "." + domain
			}
		} else if sub != "" && !v.allowSubdomains {
			return "", ReasonGovSubdomain
		}
	} else if sub != "" && !v.allowSubdomains {
		return "", ReasonSubdomain
	}

	labels := strings.Split(domain, ".")

	// Length rules apply to every label except the final suffix label.
	for _, label := range labels[:len(labels)-1] {
		if len(label) < 3 {
			return "", ReasonLabelTooShort
		}
		if len(label) > 63 {
			return "", ReasonLabelTooLong
		}
	}

	// Hyphen rules apply to every label, the suffix included.
	for _, label := range labels {
		if strings.HasPrefix(label, "-") {
			return "", ReasonHyphenStart
		}
		if strings.HasSuffix(label, "-") {
			return "", ReasonHyphenEnd
		}
		if strings.Contains(label, "--") && !strings.HasPrefix(label, punycodePrefix) {
			return "", ReasonDoubleHyphen
		}
	}

	// Structural guard; purely syntactic, no resolution.
	if _, ok := dns.IsDomainName(domain); !ok {
		return "", ReasonInvalidChars
	}

	return domain, ReasonNone
}

func (v *Validator) isGovSuffix(suffix string) bool {
	_, ok := v.govSuffixes[suffix]
	return ok
}

func (v *Validator) isGovDomain(name string) bool {
	_, ok := v.govDomains[name]
	return ok
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = struct{}{}
	}
	return set
}
