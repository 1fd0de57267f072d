// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a YAML generation profile. Zero fields keep their package
// defaults, so a profile only needs to name what it changes:
//
//	tld: lt
//	charset: alphanumeric
//	min_len: 2
//	max_len: 4
//	hyphen_mode: with
//	markov:
//	  order: 3
//	  count: 10000
//	  min_frequency: 2
type Config struct {
	// TLD is the top-level label appended to generated names.
	TLD string `yaml:"tld"`

	// Charset selects the brute-force alphabet.
	Charset Charset `yaml:"charset"`

	// MinLen and MaxLen bound generated name lengths (TLD excluded).
	MinLen int `yaml:"min_len"`
	MaxLen int `yaml:"max_len"`

	// HyphenMode controls hyphen placement for brute-force generation.
	HyphenMode HyphenMode `yaml:"hyphen_mode"`

	// AllowOtherTLDs and AllowSubdomains relax the cleanup policy.
	AllowOtherTLDs  bool `yaml:"allow_other_tlds"`
	AllowSubdomains bool `yaml:"allow_subdomains"`

	// GovDomains and GovSuffixes override the government allowlists.
	GovDomains  []string `yaml:"gov_domains"`
	GovSuffixes []string `yaml:"gov_suffixes"`

	// SuffixList optionally pins validation to a suffix rule file
	// instead of the embedded public suffix list.
	SuffixList string `yaml:"suffix_list"`

	// Markov holds the n-gram model parameters.
	Markov MarkovConfig `yaml:"markov"`
}

// MarkovConfig holds the Markov model profile section.
type MarkovConfig struct {
	Order        int `yaml:"order"`
	Count        int `yaml:"count"`
	MinFrequency int `yaml:"min_frequency"`
}

// LoadConfig reads and validates a YAML profile. Missing files are
// reported as [ErrInputNotFound]; invalid field combinations as
// [ErrInvalidConfiguration].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field combinations that are never valid regardless of
// which generator consumes the profile.
func (c *Config) Validate() error {
	if c.Charset != "" {
		if _, err := baseAlphabet(c.Charset); err != nil {
			return err
		}
	}
	if c.HyphenMode != "" {
		switch c.HyphenMode {
		case HyphenWith, HyphenWithout, HyphenOnly:
		default:
			return fmt.Errorf("%w: unknown hyphen mode %q", ErrInvalidConfiguration, c.HyphenMode)
		}
	}
	if c.MinLen != 0 || c.MaxLen != 0 {
		if c.MinLen < 1 || c.MaxLen < c.MinLen || c.MaxLen > 63 {
			return fmt.Errorf("%w: length range must satisfy 1 <= min <= max <= 63, got %d..%d",
				ErrInvalidConfiguration, c.MinLen, c.MaxLen)
		}
	}
	if c.Markov.Order < 0 {
		return fmt.Errorf("%w: order must be at least 1, got %d", ErrInvalidConfiguration, c.Markov.Order)
	}
	if c.Markov.Count < 0 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfiguration, c.Markov.Count)
	}
	if c.Markov.MinFrequency < 0 {
		return fmt.Errorf("%w: min frequency must be at least 1, got %d", ErrInvalidConfiguration, c.Markov.MinFrequency)
	}
	return nil
}

// ValidatorOptions translates the profile into validator options.
func (c *Config) ValidatorOptions() ([]ValidatorOption, error) {
	var opts []ValidatorOption
	if c.TLD != "" {
		opts = append(opts, WithTargetTLD(c.TLD))
	}
	opts = append(opts,
		WithAllowOtherTLDs(c.AllowOtherTLDs),
		WithAllowSubdomains(c.AllowSubdomains),
	)
	if len(c.GovDomains) > 0 {
		opts = append(opts, WithGovDomains(c.GovDomains...))
	}
	if len(c.GovSuffixes) > 0 {
		opts = append(opts, WithGovSuffixes(c.GovSuffixes...))
	}
	if c.SuffixList != "" {
		splitter, err := NewListSplitterFromFile(c.SuffixList)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSuffixSplitter(splitter))
	}
	return opts, nil
}

// BruteOptions translates the profile into brute generator options.
func (c *Config) BruteOptions() []BruteOption {
	var opts []BruteOption
	if c.Charset != "" {
		opts = append(opts, WithCharset(c.Charset))
	}
	if c.MinLen != 0 || c.MaxLen != 0 {
		opts = append(opts, WithLengthRange(c.MinLen, c.MaxLen))
	}
	if c.HyphenMode != "" {
		opts = append(opts, WithHyphenMode(c.HyphenMode))
	}
	if c.TLD != "" {
		opts = append(opts, WithTLD(c.TLD))
	}
	return opts
}

// MarkovOptions translates the profile into Markov model options.
func (c *Config) MarkovOptions() []MarkovOption {
	var opts []MarkovOption
	if c.Markov.Order != 0 {
		opts = append(opts, WithOrder(c.Markov.Order))
	}
	if c.MinLen != 0 || c.MaxLen != 0 {
		opts = append(opts, WithMarkovLengthRange(c.MinLen, c.MaxLen))
	}
	if c.Markov.Count != 0 {
		opts = append(opts, WithCount(c.Markov.Count))
	}
	if c.Markov.MinFrequency != 0 {
		opts = append(opts, WithMinFrequency(c.Markov.MinFrequency))
	}
	if c.TLD != "" {
		opts = append(opts, WithMarkovTLD(c.TLD))
	}
	return opts
}
