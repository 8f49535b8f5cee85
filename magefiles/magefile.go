//go:build mage

// Package main contains Mage build targets for cvextract developer tooling.
package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "cvextract"
	cmdPkg  = "./cmd/cvextract"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Smoke builds the binary and exercises it: version output, then a
// no-argument run that must emit the missing-path record and exit non-zero.
func Smoke() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)

	out, err := sh.Output(bin, "version")
	if err != nil {
		return fmt.Errorf("%s version: %w", bin, err)
	}
	fmt.Println(out)

	record, err := sh.Output(bin)
	if err == nil {
		return fmt.Errorf("%s with no arguments should exit non-zero", bin)
	}
	fmt.Printf("no-argument record: %s\n", record)
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prod, tests, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and test totals. Directories the Go toolchain ignores
// (underscore- and dot-prefixed) and bin/ are skipped.
func countGoLines(root string) (prod, tests int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == binDir {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" {
			return nil
		}
		n, err := countNonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(name, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, tests, err
}

func countNonBlankLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	total := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			total++
		}
	}
	return total, sc.Err()
}
