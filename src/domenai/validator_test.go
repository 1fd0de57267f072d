// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"testing"
)

func TestValidatorProcess(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		raw        string
		wantDomain string
		wantReason Reason
	}{
		// Accepted
		{"plain domain", "example.lt", "example.lt", ReasonNone},
		{"uppercase with www", "WWW.Example.LT", "example.lt", ReasonNone},
		{"trailing dot", "example.lt.", "example.lt", ReasonNone},
		{"url with path", "https://vilnius.lt/naujienos", "vilnius.lt", ReasonNone},
		{"scheme and www", "http://www.delfi.lt/zinios", "delfi.lt", ReasonNone},
		{"surrounding whitespace", "  kaunas.lt  ", "kaunas.lt", ReasonNone},
		{"punycode prefix exempt from double hyphen", "xn--abc.lt", "xn--abc.lt", ReasonNone},
		{"interior hyphen", "mano-svetaine.lt", "mano-svetaine.lt", ReasonNone},
		{"gov suffix keeps subdomain", "sub.ministerija.lrv.lt", "sub.ministerija.lrv.lt", ReasonNone},
		{"gov label keeps subdomain", "fakultetas.edu.lt", "fakultetas.edu.lt", ReasonNone},

		// Rejected
		{"empty", "", "", ReasonEmptyLine},
		{"whitespace only", "   ", "", ReasonEmptyLine},
		{"ipv4 literal", "192.168.1.1", "", ReasonIPAddress},
		{"invalid characters", "exa!mple.lt", "", ReasonInvalidChars},
		{"space inside", "exa mple.lt", "", ReasonInvalidChars},
		{"bare suffix", "lt", "", ReasonInvalidSuffix},
		{"foreign tld", "example.com", "", ReasonDisallowedTLD},
		{"foreign cctld", "example.de", "", ReasonDisallowedTLD},
		{"non-gov subdomain", "blog.example.lt", "", ReasonGovSubdomain},
		{"label too short", "ab.lt", "", ReasonLabelTooShort},
		{"label too long", "thislabeliswaytoolongbecausethelimitissixtythreecharactersexactlyx.lt", "", ReasonLabelTooLong},
		{"leading hyphen", "-example.lt", "", ReasonHyphenStart},
		{"trailing hyphen", "example-.lt", "", ReasonHyphenEnd},
		{"consecutive hyphens", "bad--name.lt", "", ReasonDoubleHyphen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, reason := v.Process(tt.raw)
			if domain != tt.wantDomain || reason != tt.wantReason {
				t.Errorf("Process(%q) = (%q, %q), want (%q, %q)",
					tt.raw, domain, reason, tt.wantDomain, tt.wantReason)
			}
		})
	}
}

func TestValidatorIdempotence(t *testing.T) {
	v := NewValidator()

	inputs := []string{
		"WWW.Example.LT",
		"https://vilnius.lt/naujienos",
		"sub.ministerija.lrv.lt",
		"xn--abc.lt",
		"mano-svetaine.lt",
	}

	for _, raw := range inputs {
		domain, reason := v.Process(raw)
		if reason != ReasonNone {
			t.Fatalf("Process(%q) unexpectedly rejected: %q", raw, reason)
		}

		again, reason := v.Process(domain)
		if again != domain || reason != ReasonNone {
			t.Errorf("Process(%q) = (%q, %q), want accepted fixpoint (%q)",
				domain, again, reason, domain)
		}
	}
}

func TestValidatorMutualExclusivity(t *testing.T) {
	v := NewValidator()

	inputs := []string{
		"", "192.168.1.1", "exa!mple.lt", "lt", "example.com",
		"blog.example.lt", "ab.lt", "-example.lt", "bad--name.lt",
		"example.lt", "sub.ministerija.lrv.lt",
	}

	for _, raw := range inputs {
		domain, reason := v.Process(raw)
		if (domain == "") == (reason == ReasonNone) {
			t.Errorf("Process(%q) = (%q, %q): exactly one of domain and reason must be set",
				raw, domain, reason)
		}
	}
}

func TestValidatorPolicyOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []ValidatorOption
		raw        string
		wantDomain string
		wantReason Reason
	}{
		{
			"other tlds allowed",
			[]ValidatorOption{WithAllowOtherTLDs(true)},
			"example.com", "example.com", ReasonNone,
		},
		{
			"subdomain allowed drops the prefix",
			[]ValidatorOption{WithAllowSubdomains(true)},
			"blog.example.lt", "example.lt", ReasonNone,
		},
		{
			"no target tld accepts anything registrable",
			[]ValidatorOption{WithTargetTLD("")},
			"example.org", "example.org", ReasonNone,
		},
		{
			"custom gov label",
			[]ValidatorOption{WithGovDomains("vrm")},
			"skyrius.vrm.lt", "skyrius.vrm.lt", ReasonNone,
		},
		{
			"default gov label removed",
			[]ValidatorOption{WithGovDomains("vrm")},
			"sub.ministerija.lrv.lt", "", ReasonGovSubdomain,
		},
		{
			"different target tld",
			[]ValidatorOption{WithTargetTLD("de")},
			"example.de", "example.de", ReasonNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(tt.opts...)
			domain, reason := v.Process(tt.raw)
			if domain != tt.wantDomain || reason != tt.wantReason {
				t.Errorf("Process(%q) = (%q, %q), want (%q, %q)",
					tt.raw, domain, reason, tt.wantDomain, tt.wantReason)
			}
		})
	}
}

func TestValidatorWithListSplitter(t *testing.T) {
	splitter, err := NewListSplitter("lt", "gov.lt", "lrv.lt")
	if err != nil {
		t.Fatalf("NewListSplitter failed: %v", err)
	}

	v := NewValidator(WithSuffixSplitter(splitter))

	tests := []struct {
		raw        string
		wantDomain string
		wantReason Reason
	}{
		{"example.lt", "example.lt", ReasonNone},
		// lrv.lt is both a list suffix and a government suffix, so the
		// registrable name keeps exactly one subdomain label.
		{"sub.ministerija.lrv.lt", "sub.ministerija.lrv.lt", ReasonNone},
		{"example.com", "", ReasonInvalidSuffix},
	}

	for _, tt := range tests {
		domain, reason := v.Process(tt.raw)
		if domain != tt.wantDomain || reason != tt.wantReason {
			t.Errorf("Process(%q) = (%q, %q), want (%q, %q)",
				tt.raw, domain, reason, tt.wantDomain, tt.wantReason)
		}
	}
}
