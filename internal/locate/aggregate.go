// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/sourcenet/internal/textnorm"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// Report locates target and aggregates the result. Inconsistencies are
// logged at Warn level and returned in the report.
func (l *Locator) Report(v *Views, target string) types.LocationReport {
	loc := l.Locate(v, target)
	r := l.Aggregate(v, target, loc)
	for _, inc := range r.Inconsistencies {
		l.log.Warn("coordinate systems disagree",
			zap.String("doc", v.doc.ID),
			zap.String("target", target),
			zap.String("kind", string(inc.Kind)),
			zap.Int("expected", inc.Expected),
			zap.Int("actual", inc.Actual),
		)
	}
	return r
}

// Aggregate counts target independently in every coordinate system of v
// and checks the counts against loc. A found location implies exactly one
// hit in each system; any other count is recorded as an Inconsistency.
// Ambiguous and not-found locations are reported without validation.
func (l *Locator) Aggregate(v *Views, target string, loc types.Location) types.LocationReport {
	r := types.LocationReport{Location: loc}
	target = textnorm.Normalize(target, textnorm.Plain)
	if target == "" {
		return r
	}
	ic := l.cfg.IgnoreCase

	direct := l.directMatches(v, target)
	r.CanonicalCount = len(direct)
	if r.CanonicalCount == 0 {
		// A straddling match never appears inside one canonical paragraph;
		// the resolver's results are its canonical placements.
		r.CanonicalCount = straddlingResults(loc)
	}

	plainHits := FindAllSubstrings(v.plain, target, ic)
	r.PlainTextCount = len(plainHits)

	r.ParagraphCount = len(l.paragraphsContaining(v, target))
	for _, hit := range plainHits {
		size := matchLen(v.plain, hit, target, ic)
		if v.plainParagraphAt(hit) != v.plainParagraphAt(hit+size-1) {
			r.ParagraphCount++
		}
	}

	needle := textnorm.Tokenize(target)
	starts := FindWordSequence(v.words.Words, needle, ic)
	if len(starts) == 0 && l.cfg.PunctuationFallback {
		needle = textnorm.StripTokenPunctuation(needle)
		starts = l.findWordsIgnoringPunctuation(v.words.Words, needle)
	}
	r.WordMatchCount = len(starts)
	for _, s := range starts {
		r.WordRanges = append(r.WordRanges, types.WordRange{First: s + 1, Last: s + len(needle)})
	}

	if loc.Status == types.LocateFound {
		r.Inconsistencies = validate(r)
	}
	return r
}

// findWordsIgnoringPunctuation matches needle, already stripped of
// punctuation, against haystack tokens with their punctuation removed, so
// "Smith," matches "Smith". Haystack tokens are compared in place, which
// keeps the returned indexes valid for the unmodified word index; a token
// that is all punctuation never matches.
func (l *Locator) findWordsIgnoringPunctuation(haystack, needle []string) []int {
	return findSubsequenceFunc(haystack, needle, func(a, b string) bool {
		a = textnorm.StripPunctuation(a)
		if a == "" {
			return false
		}
		if l.cfg.IgnoreCase {
			return matchLen(a, 0, b, true) == len(a)
		}
		return a == b
	})
}

func straddlingResults(loc types.Location) int {
	switch loc.Status {
	case types.LocateFound:
		if loc.Match.Straddles() {
			return 1
		}
	case types.LocateAmbiguous:
		n := 0
		for _, c := range loc.Candidates {
			if c.Straddles() {
				n++
			}
		}
		return n
	}
	return 0
}

func validate(r types.LocationReport) []types.Inconsistency {
	var out []types.Inconsistency
	check := func(kind types.InconsistencyKind, actual int, system string) {
		if actual == 1 {
			return
		}
		out = append(out, types.Inconsistency{
			Kind:     kind,
			Expected: 1,
			Actual:   actual,
			Message:  fmt.Sprintf("unique match but %s search found %d hits", system, actual),
		})
	}
	check(types.InconsistentCanonical, r.CanonicalCount, "canonical text")
	check(types.InconsistentPlainText, r.PlainTextCount, "plain text")
	check(types.InconsistentWords, r.WordMatchCount, "word index")
	check(types.InconsistentParagraph, r.ParagraphCount, "paragraph")
	return out
}
