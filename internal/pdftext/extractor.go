// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the embedded text layer of PDF files through
// pluggable backends.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/pdiddy/cvextract/pkg/types"
)

// Extractor turns a PDF file into per-page text. Different backends
// (in-process pdf library, poppler pdftotext) implement this interface.
type Extractor interface {
	// Name returns the backend name ("pdflib" or "pdftotext").
	Name() string

	// ExtractPages returns the text of each page in document order. A page
	// whose text cannot be decoded contributes an empty string; the slice
	// always has one entry per page.
	ExtractPages(path string) ([]string, error)
}

// JoinPages flattens per-page text into whole-document text: pages joined
// by a newline, surrounding whitespace trimmed.
func JoinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, "\n"))
}

// ForConfig builds the extractor selected by cfg. An empty backend means
// pdflib. When fallback is enabled, a failed pdflib extraction is retried
// with pdftotext.
func ForConfig(cfg types.ExtractionConfig) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendPDFLib, "":
		primary := NewPDFLib()
		if cfg.FallbackPdftotext {
			return &Fallback{Primary: primary, Secondary: NewPdftotext(cfg.PdftotextPath)}, nil
		}
		return primary, nil
	case types.BackendPdftotext:
		return NewPdftotext(cfg.PdftotextPath), nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q (want %s or %s)",
			cfg.Backend, types.BackendPDFLib, types.BackendPdftotext)
	}
}

// Fallback chains two extractors: when Primary fails, the whole file is
// retried with Secondary. The error of the second attempt is the one
// reported.
type Fallback struct {
	Primary   Extractor
	Secondary Extractor
}

func (f *Fallback) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

func (f *Fallback) ExtractPages(path string) ([]string, error) {
	pages, err := f.Primary.ExtractPages(path)
	if err != nil {
		return f.Secondary.ExtractPages(path)
	}
	return pages, nil
}
