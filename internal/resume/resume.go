// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resume turns a PDF resume into the JSON record consumed by the
// intake system: the raw text layer plus a best-effort candidate name.
package resume

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/cvextract/internal/nameguess"
	"github.com/pdiddy/cvextract/internal/pdftext"
	"github.com/pdiddy/cvextract/pkg/types"
)

// Stdout contract messages. The intake system matches on these strings, so
// they are fixed.
const (
	MsgMissingPath  = "Missing file path argument."
	MsgFileNotFound = "File does not exist."
)

// Options controls how records are written.
type Options struct {
	// Pretty indents the JSON record for human reading. The default is the
	// compact form the intake system parses.
	Pretty bool
}

// Process extracts the text layer of the PDF at path and guesses the
// candidate name from it. The name is empty when nothing plausible is found.
func Process(ex pdftext.Extractor, path string) (types.Resume, error) {
	pages, err := ex.ExtractPages(path)
	if err != nil {
		return types.Resume{}, err
	}
	text := pdftext.JoinPages(pages)
	return types.Resume{Text: text, Name: nameguess.Guess(text)}, nil
}

// Run executes the whole intake step for one file: extract, guess, emit.
// Every failure is written to w as an error record and also returned, so
// the caller can exit non-zero while stdout still carries a parseable
// record.
func Run(ex pdftext.Extractor, path string, w io.Writer, opts Options) error {
	if _, err := os.Stat(path); err != nil {
		return fail(w, opts, MsgFileNotFound, err)
	}

	rec, err := Process(ex, path)
	if err != nil {
		return fail(w, opts, fmt.Sprintf("Failed to read PDF: %v", err), err)
	}

	return WriteRecord(w, rec, opts)
}

// WriteError writes the failure record for msg to w.
func WriteError(w io.Writer, msg string, opts Options) error {
	return WriteRecord(w, types.ErrorRecord{Error: msg}, opts)
}

// WriteRecord encodes rec as a single JSON document on w followed by a
// newline. HTML escaping is off so document text passes through unmangled.
func WriteRecord(w io.Writer, rec any, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return nil
}

// fail writes the error record for msg and returns cause. A failure to
// write the record itself is returned instead.
func fail(w io.Writer, opts Options, msg string, cause error) error {
	if err := WriteError(w, msg, opts); err != nil {
		return err
	}
	return cause
}
