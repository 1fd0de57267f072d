// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import "errors"

// Sentinel errors for the domenai generator package.
var (
	// ErrInvalidConfiguration is returned when a generator is constructed
	// with invalid arguments (unknown charset, bad length range, order < 1,
	// count < 1, unknown hyphen mode). It is never retried.
	ErrInvalidConfiguration = errors.New("domenai: invalid configuration")

	// ErrCorpusNotFound is returned when the Markov training corpus
	// file does not exist. The check happens eagerly, before any
	// processing begins.
	ErrCorpusNotFound = errors.New("domenai: corpus file not found")

	// ErrInputNotFound is returned when an input word or domain list
	// file does not exist.
	ErrInputNotFound = errors.New("domenai: input file not found")
)
