// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Resume is the success record written to stdout for a processed document.
// Text is always present, even when empty; Name is omitted when no candidate
// name was found.
type Resume struct {
	// Text is the raw text layer of the document, pages joined by newlines.
	Text string `json:"text" yaml:"text"`

	// Name is the guessed candidate name ("First Last"), if any.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ErrorRecord is the failure record written to stdout when processing fails.
// The process exits non-zero after emitting it.
type ErrorRecord struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error" yaml:"error"`
}
