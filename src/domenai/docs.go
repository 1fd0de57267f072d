// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package domenai generates and validates candidate domain names under
// DNS naming rules and the Lithuanian (.lt) registry policy.
//
// It combines a shared normalization/validation pipeline with three
// generators: systematic brute-force enumeration over a character
// alphabet, dictionary word transformation, and a character-level
// n-gram (Markov chain) model that learns transition probabilities from
// a training corpus and synthesizes novel, DNS-valid names.
//
// # Validation Policy
//
// Every producer that emits candidate strings funnels through the same
// [Validator]: whitespace and scheme stripping, "www." removal, IPv4
// literal rejection, character-set checks, public-suffix extraction
// (longest match over a known suffix list), target-TLD enforcement with
// a government-suffix carve-out, subdomain policy, per-label length
// limits (3-63 characters), and hyphen placement rules with an
// exemption for the punycode "xn--" prefix. Rejections are classified
// [Reason] values, never errors; a run records them and continues.
//
// Validation is purely syntactic. This package never performs network
// resolution or DNS queries of any kind.
//
// # Generators
//
//   - Brute enumeration — every name in a charset/length envelope,
//     lengths ascending then lexicographic, with exact closed-form
//     count estimation ([EstimateBrute]) that needs no enumeration
//   - Word transformation — Lithuanian dictionary words transliterated
//     and cleaned into valid .lt candidates
//   - Markov synthesis — n-gram transition tables trained from a
//     corpus, frequency-pruned, sampled with bounded retry budgets and
//     novelty checks against the training set
//
// # Lazy Sequences
//
// Generators hand out pull-based [Sequence] streams: each element is
// computed on demand, so memory stays bounded to one in-flight element
// plus a small write buffer even when the space holds billions of
// names. [WriteBatches] drains a sequence to disk in batched writes.
//
// # Quick Start
//
//	v := domenai.NewValidator()
//	domain, reason := v.Process("WWW.Example.LT")
//	// domain == "example.lt", reason == domenai.ReasonNone
//
//	b, err := domenai.NewBrute(
//	    domenai.WithCharset(domenai.CharsetLetters),
//	    domenai.WithLengthRange(2, 3),
//	    domenai.WithHyphenMode(domenai.HyphenWithout),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("estimated:", b.Estimate())
//
//	seq := b.Sequence()
//	for name, ok := seq.Next(); ok; name, ok = seq.Next() {
//	    fmt.Println(name)
//	}
//
//	m, err := domenai.NewMarkov("corpus.txt",
//	    domenai.WithOrder(3),
//	    domenai.WithCount(1000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range m.GenerateAll() {
//	    fmt.Println(name)
//	}
//
// # Errors
//
// Construction-time failures use sentinel errors for [errors.Is]
// matching: [ErrInvalidConfiguration] for bad parameters,
// [ErrCorpusNotFound] and [ErrInputNotFound] for missing files (checked
// eagerly, before any processing). Sampler under-delivery is a normal
// outcome reported as a shorter stream, not a failure.
package domenai
