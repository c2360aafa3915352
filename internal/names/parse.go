// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names parses person names and resolves them against a person
// store with a sequence of progressively looser lookups.
package names

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/sourcenet/internal/textnorm"
	"github.com/pdiddy/sourcenet/pkg/types"
)

var titles = wordSet(
	"mr", "mrs", "ms", "miss", "mx", "dr", "doctor", "prof", "professor",
	"rev", "reverend", "fr", "father", "sister", "brother", "pastor", "rabbi",
	"imam", "bishop", "sir", "dame", "lord", "lady", "hon", "honorable",
	"gov", "governor", "lt", "sen", "senator", "rep", "representative",
	"pres", "president", "mayor", "judge", "justice", "gen", "general",
	"col", "colonel", "maj", "major", "capt", "captain", "cmdr", "adm",
	"sgt", "sergeant", "cpl", "pvt", "officer", "det", "detective", "chief",
	"sheriff", "deputy", "supt", "commissioner", "atty", "coach", "councilman",
	"councilwoman", "alderman", "trustee",
)

var suffixes = wordSet(
	"jr", "sr", "ii", "iii", "iv", "phd", "md", "esq", "dds", "cpa", "jd",
	"mba", "rn", "ret",
)

// particles join the following word into the last name.
var particles = wordSet(
	"van", "von", "de", "del", "della", "der", "den", "di", "da", "du", "la",
	"le", "st", "ste", "bin", "ibn", "dos", "das", "ter", "ten",
)

var nicknamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]+)"`),
	regexp.MustCompile(`“([^”]+)”`),
	regexp.MustCompile(`\(([^)]+)\)`),
	regexp.MustCompile(`(?:^|\s)'([^']+)'(?:\s|$)`),
}

// ParseName splits a name string into its parts. It recognizes a quoted or
// parenthesized nickname, the "Last, First Middle" comma form, trailing
// comma-separated suffixes ("Smith, Jr."), leading titles (several may be
// stacked, as in "Lt. Gov."), trailing suffixes, and last-name particles
// ("van", "de la"). A lone word is a first name unless a title precedes
// it, in which case it is the last name. Every part is standardized with
// periods kept. Parsing is deterministic; blank input yields an empty
// ParsedName.
func ParseName(name string) types.ParsedName {
	var p types.ParsedName
	name = textnorm.CollapseWhitespace(name)
	if name == "" {
		return p
	}

	var nicks []string
	for _, re := range nicknamePatterns {
		for _, m := range re.FindAllStringSubmatch(name, -1) {
			nicks = append(nicks, m[1])
		}
		name = re.ReplaceAllString(name, " ")
	}
	p.Nickname = strings.Join(nicks, " ")

	var parts []string
	for _, s := range strings.Split(name, ",") {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	var prefix, suffix []string
	switch {
	case len(parts) == 0:
	case len(parts) == 1 || allSuffixes(parts[1:]):
		tokens := strings.Fields(parts[0])
		for _, s := range parts[1:] {
			suffix = append(suffix, strings.Fields(s)...)
		}
		prefix, tokens = leadingTitles(tokens)
		var trailing []string
		tokens, trailing = trailingSuffixes(tokens)
		suffix = append(trailing, suffix...)
		switch len(tokens) {
		case 0:
		case 1:
			if len(prefix) > 0 {
				p.Last = tokens[0]
			} else {
				p.First = tokens[0]
			}
		default:
			start := lastNameStart(tokens)
			p.First = tokens[0]
			p.Middle = strings.Join(tokens[1:start], " ")
			p.Last = strings.Join(tokens[start:], " ")
		}
	default:
		// Last, First Middle[, Suffix...]
		lastTokens := strings.Fields(parts[0])
		prefix, lastTokens = leadingTitles(lastTokens)
		p.Last = strings.Join(lastTokens, " ")

		rest := strings.Fields(parts[1])
		var more []string
		more, rest = leadingTitles(rest)
		prefix = append(prefix, more...)
		rest, suffix = trailingSuffixes(rest)
		for _, s := range parts[2:] {
			suffix = append(suffix, strings.Fields(s)...)
		}
		if len(rest) > 0 {
			p.First = rest[0]
			p.Middle = strings.Join(rest[1:], " ")
		}
	}
	p.Prefix = strings.Join(prefix, " ")
	p.Suffix = strings.Join(suffix, " ")
	return StandardizeName(p, false)
}

// Standardize removes commas, collapses whitespace, and with stripPeriods
// also removes periods from one name part.
func Standardize(part string, stripPeriods bool) string {
	part = strings.ReplaceAll(part, ",", "")
	if stripPeriods {
		part = strings.ReplaceAll(part, ".", "")
	}
	return textnorm.CollapseWhitespace(part)
}

// StandardizeName applies Standardize to every part of p.
func StandardizeName(p types.ParsedName, stripPeriods bool) types.ParsedName {
	return types.ParsedName{
		Prefix:   Standardize(p.Prefix, stripPeriods),
		First:    Standardize(p.First, stripPeriods),
		Middle:   Standardize(p.Middle, stripPeriods),
		Last:     Standardize(p.Last, stripPeriods),
		Suffix:   Standardize(p.Suffix, stripPeriods),
		Nickname: Standardize(p.Nickname, stripPeriods),
	}
}

// NewPerson builds an unsaved person record for name. The record has no id.
func NewPerson(name string, stripPeriods bool) types.PersonRecord {
	parsed := StandardizeName(ParseName(name), stripPeriods)
	return types.PersonRecord{
		ParsedName:   parsed,
		FullName:     parsed.FullName(),
		OriginalName: name,
		Gender:       types.GenderUnknown,
	}
}

// Fold returns s case-folded for comparison.
func Fold(s string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Fold().String(s)
}

func leadingTitles(tokens []string) (titleTokens, rest []string) {
	i := 0
	for i < len(tokens) && titles[key(tokens[i])] {
		i++
	}
	return tokens[:i], tokens[i:]
}

// trailingSuffixes splits off trailing suffix words, always leaving at
// least one token.
func trailingSuffixes(tokens []string) (rest, suffixTokens []string) {
	i := len(tokens)
	for i > 1 && suffixes[key(tokens[i-1])] {
		i--
	}
	return tokens[:i], tokens[i:]
}

// lastNameStart returns the index of the first last-name token, pulling
// preceding particles into the last name but never the first token.
func lastNameStart(tokens []string) int {
	start := len(tokens) - 1
	for start > 1 && particles[key(tokens[start-1])] {
		start--
	}
	return start
}

func allSuffixes(parts []string) bool {
	for _, part := range parts {
		for _, tok := range strings.Fields(part) {
			if !suffixes[key(tok)] {
				return false
			}
		}
	}
	return true
}

func key(token string) string {
	return strings.ToLower(strings.Trim(token, "."))
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
