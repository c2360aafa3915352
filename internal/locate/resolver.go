// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate finds quotations and names inside article text. It
// searches three renderings of a document (paragraph-tagged canonical text,
// plain text, and the word index) and resolves targets that cross a
// paragraph boundary.
package locate

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/sourcenet/internal/textnorm"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// Locator resolves target strings against document views. It holds only
// configuration, so one Locator may serve concurrent calls.
type Locator struct {
	cfg types.LocatorConfig
	log *zap.Logger
}

// NewLocator returns a Locator. A nil logger disables logging.
func NewLocator(cfg types.LocatorConfig, log *zap.Logger) *Locator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Locator{cfg: cfg, log: log.Named("locate")}
}

// Config returns the locator settings.
func (l *Locator) Config() types.LocatorConfig {
	return l.cfg
}

// Locate finds target in the document behind v. The target is normalized
// the same way paragraphs are, so stray markup and whitespace in it do not
// matter. An empty target is never found. Multiple equally valid matches
// are returned as LocateAmbiguous with every candidate; the resolver never
// picks one.
func (l *Locator) Locate(v *Views, target string) types.Location {
	target = textnorm.Normalize(target, textnorm.Plain)
	if target == "" {
		l.log.Debug("empty target")
		return types.NotFound()
	}
	return l.locate(v, target, l.cfg.Reconcile)
}

// locate runs the resolver passes in order. reconcile enables the
// prefix-trimming pass; recursive calls from that pass disable it, which
// bounds the recursion to one level.
func (l *Locator) locate(v *Views, target string, reconcile bool) types.Location {
	ic := l.cfg.IgnoreCase

	direct := l.directMatches(v, target)
	l.log.Debug("direct search", zap.String("target", target), zap.Int("hits", len(direct)))
	switch {
	case len(direct) == 1:
		return types.Found(direct[0])
	case len(direct) > 1:
		return types.Ambiguous(direct)
	}

	// Absent from every paragraph but present in the plain text means the
	// target crosses a paragraph boundary.
	plainHits := FindAllSubstrings(v.plain, target, ic)
	if len(plainHits) == 0 {
		l.log.Debug("not in plain text", zap.String("target", target))
		return types.NotFound()
	}

	words := textnorm.Tokenize(target)
	if loc, ok := l.growWords(v, target, words, plainHits); ok {
		return loc
	}

	if !reconcile {
		return types.NotFound()
	}
	return l.trimPrefix(v, target, words)
}

// directMatches returns the canonical hits that lie entirely inside one
// paragraph's text. Hits that touch the paragraph markers are dropped.
func (l *Locator) directMatches(v *Views, target string) []types.MatchResult {
	var out []types.MatchResult
	for _, hit := range FindAllSubstrings(v.canonical, target, l.cfg.IgnoreCase) {
		n := v.canonicalParagraphAt(hit)
		if n == 0 {
			continue
		}
		size := matchLen(v.canonical, hit, target, l.cfg.IgnoreCase)
		if hit+size > v.canonicalSpans[n-1].end {
			continue
		}
		plainStart := v.canonicalToPlain(n, hit)
		out = append(out, types.MatchResult{
			Target:         target,
			Method:         types.MethodDirect,
			CanonicalIndex: hit,
			PlainTextIndex: plainStart,
			Words:          v.wordRange(plainStart, plainStart+size),
			Paragraphs:     []int{n},
		})
	}
	return out
}

// growWords builds the target one word at a time and searches every
// paragraph for the growing prefix, stopping once at most one paragraph
// contains it. A single surviving paragraph is where a boundary-straddling
// match starts; the plain-text hits starting there are the candidates.
// It reports false when no candidate survives.
func (l *Locator) growWords(v *Views, target string, words []string, plainHits []int) (types.Location, bool) {
	var paragraphs []int
	for n := 1; n <= len(words); n++ {
		prefix := strings.Join(words[:n], " ")
		paragraphs = l.paragraphsContaining(v, prefix)
		l.log.Debug("word growth",
			zap.String("prefix", prefix),
			zap.Int("paragraphs", len(paragraphs)),
			zap.Int("remaining", len(words)-n),
		)
		if len(paragraphs) <= 1 {
			break
		}
	}
	if len(paragraphs) != 1 {
		return types.Location{}, false
	}

	start := paragraphs[0]
	var matches []types.MatchResult
	for _, hit := range plainHits {
		if v.plainParagraphAt(hit) != start {
			continue
		}
		m := l.plainMatch(v, target, hit, types.MethodWordGrowth)
		if m.Straddles() {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return types.Location{}, false
	case 1:
		return types.Found(matches[0]), true
	default:
		return types.Ambiguous(matches), true
	}
}

// plainMatch builds a MatchResult for a plain-text hit.
func (l *Locator) plainMatch(v *Views, target string, hit int, method types.MatchMethod) types.MatchResult {
	size := matchLen(v.plain, hit, target, l.cfg.IgnoreCase)
	first := v.plainParagraphAt(hit)
	last := v.plainParagraphAt(hit + size - 1)
	return types.MatchResult{
		Target:         target,
		Method:         method,
		CanonicalIndex: v.plainToCanonical(first, hit),
		PlainTextIndex: hit,
		Words:          v.wordRange(hit, hit+size),
		Paragraphs:     paragraphRange(first, last),
	}
}

// trimPrefix removes leading words from the target one at a time and
// locates the remainder without further reconciliation. The first trim
// level that finds the remainder decides: each candidate is accepted only
// if the removed words appear, in order, in the paragraph before it. The
// word list shrinks every iteration, so the loop always terminates.
func (l *Locator) trimPrefix(v *Views, target string, words []string) types.Location {
	for k := 1; k < len(words); k++ {
		remainder := strings.Join(words[k:], " ")
		sub := l.locate(v, remainder, false)
		l.log.Debug("prefix trim",
			zap.Int("removed", k),
			zap.String("remainder", remainder),
			zap.String("status", string(sub.Status)),
		)

		var candidates []types.MatchResult
		switch sub.Status {
		case types.LocateNotFound:
			continue
		case types.LocateFound:
			candidates = []types.MatchResult{*sub.Match}
		case types.LocateAmbiguous:
			candidates = sub.Candidates
		}

		var verified []types.MatchResult
		for _, c := range candidates {
			if m, ok := l.reconcile(v, target, words[:k], c, len(words)); ok {
				verified = append(verified, m)
			}
		}
		switch len(verified) {
		case 0:
			l.log.Debug("removed words not found before match", zap.String("target", target))
			return types.NotFound()
		case 1:
			return types.Found(verified[0])
		default:
			return types.Ambiguous(verified)
		}
	}
	return types.NotFound()
}

// reconcile checks that removed, the leading words trimmed from target,
// appear in order just before sub and extends sub to cover them. The words
// are searched in sub's first paragraph before its start, or in the whole
// nearest non-blank preceding paragraph when sub begins at the start of
// its paragraph. A result spanning more paragraphs than the target has
// words is rejected.
func (l *Locator) reconcile(v *Views, target string, removed []string, sub types.MatchResult, maxSpan int) (types.MatchResult, bool) {
	host := sub.FirstParagraph()
	lo, hi := v.paragraphWords(host)
	for hi > lo && v.wordStarts[hi-1] >= sub.PlainTextIndex {
		hi--
	}
	for hi == lo {
		host--
		if host < 1 {
			return types.MatchResult{}, false
		}
		lo, hi = v.paragraphWords(host)
	}
	startWord, ok := l.findInOrder(v.words.Words[lo:hi], removed)
	if !ok {
		return types.MatchResult{}, false
	}
	startWord += lo

	paragraphs := paragraphRange(host, sub.LastParagraph())
	if len(paragraphs) > maxSpan {
		return types.MatchResult{}, false
	}

	plainStart := v.wordStarts[startWord]
	plainIndex := -1
	if matchLen(v.plain, plainStart, target, l.cfg.IgnoreCase) >= 0 {
		plainIndex = plainStart
	} else {
		for _, hit := range FindAllSubstrings(v.plain, target, l.cfg.IgnoreCase) {
			if v.plainParagraphAt(hit) == host {
				plainIndex = hit
				break
			}
		}
	}

	return types.MatchResult{
		Target:         target,
		Method:         types.MethodPrefixTrim,
		CanonicalIndex: v.plainToCanonical(host, plainStart),
		PlainTextIndex: plainIndex,
		Words:          types.WordRange{First: startWord + 1, Last: sub.Words.Last},
		Paragraphs:     paragraphs,
	}, true
}

// findInOrder looks for want as an in-order (not necessarily contiguous)
// subsequence of tokens, matching from the end so the occurrence closest
// to the boundary wins. Tokens compare with punctuation stripped. It
// returns the index of the token matching want[0].
func (l *Locator) findInOrder(tokens, want []string) (int, bool) {
	j := len(want) - 1
	for i := len(tokens) - 1; i >= 0 && j >= 0; i-- {
		if l.sameWord(tokens[i], want[j]) {
			if j == 0 {
				return i, true
			}
			j--
		}
	}
	return 0, false
}

func (l *Locator) sameWord(a, b string) bool {
	a, b = textnorm.StripPunctuation(a), textnorm.StripPunctuation(b)
	if a == "" || b == "" {
		return false
	}
	if l.cfg.IgnoreCase {
		return matchLen(a, 0, b, true) == len(a)
	}
	return a == b
}

// paragraphsContaining returns the paragraph numbers whose text contains s.
func (l *Locator) paragraphsContaining(v *Views, s string) []int {
	var out []int
	for i, p := range v.doc.Paragraphs {
		if ContainsString(p, s, l.cfg.IgnoreCase) {
			out = append(out, i+1)
		}
	}
	return out
}

func paragraphRange(first, last int) []int {
	if last < first {
		last = first
	}
	out := make([]int, 0, last-first+1)
	for n := first; n <= last; n++ {
		out = append(out, n)
	}
	return out
}
