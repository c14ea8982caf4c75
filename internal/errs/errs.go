// Copyright ©2026 The Asgart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs classifies the error conditions the pipeline can raise.
// InvalidAlphabet is never wrapped in a Kind: it signals a programmer
// error (the caller failed to normalize input before it reached an
// alphabet-sensitive component) and is always a panic, never a
// returned error.
package errs

import "fmt"

// Kind distinguishes recoverable error conditions.
type Kind int

const (
	// InvalidInput marks malformed or semantically invalid user input,
	// e.g. an empty FASTA file or a trim range outside the strand.
	InvalidInput Kind = iota
	// ConfigurationError marks a combination of flags or settings that
	// cannot be honored, e.g. a probe size smaller than the cache prefix.
	ConfigurationError
	// IoError marks a failure reading or writing a file, mmap region,
	// or store.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case ConfigurationError:
		return "configuration error"
	case IoError:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is a Kind-tagged error that wraps an underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for op, wrapping err (which may be nil).
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
