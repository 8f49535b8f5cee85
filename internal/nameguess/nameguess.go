// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nameguess derives a candidate name from the raw text of a
// resume-like document. The heuristic favors short header lines near the top
// of the document and never fails: when nothing qualifies it returns "".
package nameguess

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// maxHeaderLines is how many candidate lines from the top of the
	// document are scanned before giving up on the header.
	maxHeaderLines = 20
	// maxLineRunes is the longest a line may be (in characters, after
	// trimming) to count as a candidate. Longer lines are prose, not
	// headers.
	maxLineRunes = 60
)

// skipKeywords mark a header line as metadata rather than a name. Matching
// is case-insensitive substring matching on the line after label stripping.
var skipKeywords = []string{
	"location",
	"country",
	"phone",
	"email",
	"summary",
	"profile",
	"experience",
	"skills",
	"tech",
	"stack",
	"linkedin",
	"github",
	"contact",
}

// Guess scans text for a plausible candidate name and returns it formatted
// as two capitalized tokens ("First Last"), or "" when no candidate is
// found. The header scan looks at the first 20 trimmed non-empty lines of
// at most 60 characters; if none qualifies, the first two alphabetic words
// of the whole document are used as a last resort.
func Guess(text string) string {
	candidates := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || utf8.RuneCountInString(line) > maxLineRunes {
			continue
		}
		candidates++
		if candidates > maxHeaderLines {
			break
		}
		if name := fromHeaderLine(line); name != "" {
			return name
		}
	}

	words := alphaTokens(text, 2)
	if len(words) < 2 {
		return ""
	}
	return capitalize(words[0]) + " " + capitalize(words[1])
}

// fromHeaderLine extracts a name from a single candidate line, or returns
// "". A line with a colon is treated as a labeled field: only the part after
// the first colon is considered. Lines mentioning contact or section
// keywords are rejected outright.
func fromHeaderLine(line string) string {
	normalized := line
	if i := strings.Index(line, ":"); i >= 0 {
		normalized = strings.TrimSpace(line[i+1:])
	}

	lower := strings.ToLower(normalized)
	for _, kw := range skipKeywords {
		if strings.Contains(lower, kw) {
			return ""
		}
	}

	tokens := alphaTokens(normalized, 2)
	if len(tokens) < 2 {
		return ""
	}
	return capitalize(tokens[0]) + " " + capitalize(tokens[1])
}

// alphaTokens returns up to limit whitespace-separated tokens of s that are
// alphabetic. Hyphens are ignored when testing, so "Smith-Jones" counts.
func alphaTokens(s string, limit int) []string {
	var tokens []string
	for _, tok := range strings.Fields(s) {
		if !isAlpha(tok) {
			continue
		}
		tokens = append(tokens, tok)
		if len(tokens) == limit {
			break
		}
	}
	return tokens
}

// isAlpha reports whether tok, with hyphens removed, is a non-empty run of
// Unicode letters. A token that is only hyphens is not alphabetic.
func isAlpha(tok string) bool {
	stripped := strings.ReplaceAll(tok, "-", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// capitalize uppercases the first rune of tok and lowercases the rest.
func capitalize(tok string) string {
	r, size := utf8.DecodeRuneInString(tok)
	if size == 0 {
		return tok
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(tok[size:])
}
