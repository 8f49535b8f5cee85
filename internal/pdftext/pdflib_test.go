// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFLibExtractPages(t *testing.T) {
	path := writePDF(t, "Jane Doe", "Second page with project notes")

	pages, err := NewPDFLib().ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	// GetPlainText emits a newline before each text row, so every page's
	// text carries a leading "\n".
	assert.Equal(t, "\nJane Doe", pages[0])
	assert.Equal(t, "\nSecond page with project notes", pages[1])
}

func TestPDFLibSinglePage(t *testing.T) {
	path := writePDF(t, "John Smith")

	pages, err := NewPDFLib().ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "\nJohn Smith", pages[0])
}

func TestPDFLibNullPageKeepsEmptySlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, buildPDFNullKid(t, "Jane Doe"), 0o644))

	pages, err := NewPDFLib().ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "\nJane Doe", pages[0])
	assert.Equal(t, "", pages[1])
}

func TestPDFLibMissingFile(t *testing.T) {
	_, err := NewPDFLib().ExtractPages(filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening PDF")
}

func TestPDFLibRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no header"), 0o644))

	_, err := NewPDFLib().ExtractPages(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening PDF")
}

// writePDF builds a minimal PDF with one page per text and writes it to a
// temp file, returning its path.
func writePDF(t *testing.T, pageTexts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(t, pageTexts...), 0o644))
	return path
}

// pdfEscape protects the delimiters of PDF literal strings.
var pdfEscape = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// buildPDF assembles an uncompressed PDF document: a catalog, a page tree,
// one Helvetica font, and one page plus content stream per text.
func buildPDF(t *testing.T, pageTexts ...string) []byte {
	t.Helper()

	n := len(pageTexts)
	kids := make([]string, n)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i)
	}

	bodies := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	for i := range pageTexts {
		bodies = append(bodies, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			4+n+i))
	}
	for _, text := range pageTexts {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", pdfEscape.Replace(text))
		bodies = append(bodies, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}
	return assemblePDF(bodies)
}

// buildPDFNullKid assembles a document whose page tree advertises two pages
// but whose second /Kids entry resolves to the null object, the shape of a
// PDF with an unrecoverable page.
func buildPDFNullKid(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", pdfEscape.Replace(text))
	bodies := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [4 0 R 6 0 R] /Count 2 >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents 5 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"null",
	}
	return assemblePDF(bodies)
}

// assemblePDF serializes numbered objects, the cross-reference table, and
// the trailer. Offsets are computed while writing, so the output is always
// structurally valid.
func assemblePDF(bodies []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(bodies))
	for _, body := range bodies {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	xrefAt := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefAt)
	return buf.Bytes()
}
