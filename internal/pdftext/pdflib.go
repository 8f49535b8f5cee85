// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/cvextract/pkg/types"
)

// PDFLib extracts text in-process with the pure-Go pdf library. Only the
// embedded text layer is read; scanned pages without one come back empty.
type PDFLib struct{}

// NewPDFLib creates the in-process extraction backend.
func NewPDFLib() *PDFLib {
	return &PDFLib{}
}

func (p *PDFLib) Name() string {
	return string(types.BackendPDFLib)
}

func (p *PDFLib) ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// a page that fails to decode keeps its empty slot
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
