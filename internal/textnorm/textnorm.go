// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm strips markup, collapses whitespace, removes punctuation,
// and tokenizes article text into words.
package textnorm

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// maxMarkupPasses bounds the strip-and-unescape loop. Each pass only
// shrinks the text, so real input settles in two or three passes.
const maxMarkupPasses = 8

// strictPolicy removes every tag. bluemonday policies are safe for
// concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

// punctuation is the fixed set removed by StripPunctuation.
var punctuation = map[rune]bool{
	'.': true, ',': true, ';': true, ':': true, '!': true, '?': true,
	'"': true, '\'': true, '(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true,
	'‘': true, '’': true, '“': true, '”': true,
}

// Options selects which normalization steps Normalize applies.
type Options struct {
	RemoveMarkup       bool
	RemovePunctuation  bool
	CollapseWhitespace bool
}

// Plain removes markup and collapses whitespace, keeping punctuation.
var Plain = Options{RemoveMarkup: true, CollapseWhitespace: true}

// Normalize applies the selected steps in order: markup removal,
// punctuation removal, whitespace collapse. The result is always in Unicode
// NFC form.
func Normalize(text string, opts Options) string {
	if opts.RemoveMarkup {
		text = StripMarkup(text)
	}
	if opts.RemovePunctuation {
		text = StripPunctuation(text)
	}
	if opts.CollapseWhitespace {
		text = CollapseWhitespace(text)
	}
	return norm.NFC.String(text)
}

// StripMarkup removes all tags and decodes HTML entities. It repeats until
// the text stops changing, so entity-encoded markup is removed as well and
// a second call is a no-op.
func StripMarkup(text string) string {
	for i := 0; i < maxMarkupPasses; i++ {
		if !strings.ContainsAny(text, "<&") {
			return text
		}
		next := html.UnescapeString(strictPolicy.Sanitize(text))
		if next == text {
			return text
		}
		text = next
	}
	return text
}

// StripPunctuation removes the fixed punctuation set.
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if IsPunctuation(r) {
			return -1
		}
		return r
	}, text)
}

// IsPunctuation reports whether r is in the set StripPunctuation removes.
func IsPunctuation(r rune) bool {
	return punctuation[r]
}

// CollapseWhitespace replaces every run of Unicode whitespace with one space
// and trims both ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Tokenize splits text on whitespace. Empty or blank input yields an empty,
// non-nil slice.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(text, unicode.IsSpace)
	if words == nil {
		return []string{}
	}
	return words
}

// StripTokenPunctuation removes punctuation from every token and drops
// tokens that become empty.
func StripTokenPunctuation(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if s := StripPunctuation(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}
