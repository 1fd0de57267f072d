// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

// Reason classifies why a candidate domain was rejected.
//
// Rejections are values, not errors: a run records them and continues.
// The zero value [ReasonNone] marks an accepted candidate.
type Reason string

// Rejection reason codes, in the order the validation pipeline
// can emit them.
const (
	// ReasonNone marks an accepted candidate.
	ReasonNone Reason = ""

	// ReasonEmptyLine marks blank or whitespace-only input.
	// It is conventionally suppressed from persisted error logs.
	ReasonEmptyLine Reason = "empty line"

	// ReasonIPAddress marks a dotted-quad IPv4 literal.
	ReasonIPAddress Reason = "ip address"

	// ReasonInvalidChars marks input containing characters outside
	// word characters, hyphen, and dot.
	ReasonInvalidChars Reason = "invalid characters"

	// ReasonInvalidSuffix marks input whose registrable name or
	// public suffix component is empty after extraction.
	ReasonInvalidSuffix Reason = "invalid domain/suffix"

	// ReasonDisallowedTLD marks a suffix that is neither the target
	// TLD nor a government suffix while other TLDs are not allowed.
	ReasonDisallowedTLD Reason = "disallowed tld"

	// ReasonGovSubdomain marks a subdomain on a non-governmental
	// lt-family name while subdomains are not allowed.
	ReasonGovSubdomain Reason = "non-govt subdomain"

	// ReasonSubdomain marks a subdomain on a foreign-suffix name
	// while subdomains are not allowed.
	ReasonSubdomain Reason = "subdomain not allowed"

	// ReasonLabelTooShort marks a label below the 3-character minimum.
	ReasonLabelTooShort Reason = "domain label too short (min 3 chars)"

	// ReasonLabelTooLong marks a label above the 63-character maximum.
	ReasonLabelTooLong Reason = "label exceeds 63 characters"

	// ReasonHyphenStart marks a label beginning with a hyphen.
	ReasonHyphenStart Reason = "hyphen at start of label"

	// ReasonHyphenEnd marks a label ending with a hyphen.
	ReasonHyphenEnd Reason = "hyphen at end of label"

	// ReasonDoubleHyphen marks consecutive hyphens in a label that is
	// not a punycode (xn--) label.
	ReasonDoubleHyphen Reason = "consecutive hyphens"
)

// Rejection pairs a rejected input line with its classification.
// Line numbering starts at 1.
type Rejection struct {
	// Line is the 1-based input line number.
	Line int

	// Raw is the original, unnormalized input line.
	Raw string

	// Reason is the rejection classification.
	Reason Reason
}
