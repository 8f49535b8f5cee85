// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/cvextract/pkg/types"
)

const defaultPdftotextBin = "pdftotext"

// runner abstracts command execution for testing.
type runner interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osRunner is the production runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) Output(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, err
	}
	return out, nil
}

var defaultRunner runner = osRunner{}

// Pdftotext extracts text by invoking the poppler pdftotext tool. Output is
// requested in layout mode with UTF-8 encoding and Unix line endings; pages
// arrive separated by form feeds.
type Pdftotext struct {
	bin string
	run runner
}

// NewPdftotext creates the pdftotext backend. An empty bin means look up
// "pdftotext" on PATH.
func NewPdftotext(bin string) *Pdftotext {
	if bin == "" {
		bin = defaultPdftotextBin
	}
	return &Pdftotext{bin: bin, run: defaultRunner}
}

func (p *Pdftotext) Name() string {
	return string(types.BackendPdftotext)
}

// Available reports whether the pdftotext binary can be found.
func (p *Pdftotext) Available() bool {
	_, err := p.run.LookPath(p.bin)
	return err == nil
}

func (p *Pdftotext) ExtractPages(path string) ([]string, error) {
	if _, err := p.run.LookPath(p.bin); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", p.bin, err)
	}
	out, err := p.run.Output(p.bin, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", p.bin, path, err)
	}
	return strings.Split(string(out), "\f"), nil
}
