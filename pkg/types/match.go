// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LocateStatus is the outcome tag of a text location attempt.
type LocateStatus string

const (
	LocateFound     LocateStatus = "found"
	LocateAmbiguous LocateStatus = "ambiguous"
	LocateNotFound  LocateStatus = "not_found"
)

// MatchMethod records which resolver pass produced a match.
type MatchMethod string

const (
	// MethodDirect is a hit on the canonical text inside one paragraph.
	MethodDirect MatchMethod = "direct"

	// MethodWordGrowth is a paragraph-straddling match found by growing the
	// target one word at a time until a single paragraph remained.
	MethodWordGrowth MatchMethod = "word_growth"

	// MethodPrefixTrim is a paragraph-straddling match found by trimming
	// leading words and verifying them against the preceding paragraph.
	MethodPrefixTrim MatchMethod = "prefix_trim"
)

// MatchResult describes one located span in all coordinate systems.
// Offsets are byte offsets into the respective rendering.
type MatchResult struct {
	Target string      `json:"target" yaml:"target"`
	Method MatchMethod `json:"method" yaml:"method"`

	// CanonicalIndex is the offset of the match start in the canonical
	// (paragraph-tagged) rendering.
	CanonicalIndex int `json:"canonical_index" yaml:"canonical_index"`

	// PlainTextIndex is the offset of the match start in the plain
	// rendering, or -1 when the target is absent from it.
	PlainTextIndex int `json:"plain_text_index" yaml:"plain_text_index"`

	// Words is the 1-based word range, zero when the word index could not
	// place the target.
	Words WordRange `json:"words" yaml:"words"`

	// Paragraphs lists the 1-based paragraph numbers the match covers, in
	// order. Length one for a match inside a single paragraph.
	Paragraphs []int `json:"paragraphs" yaml:"paragraphs"`
}

// Straddles reports whether the match crosses a paragraph boundary.
func (m MatchResult) Straddles() bool {
	return len(m.Paragraphs) > 1
}

// FirstParagraph returns the paragraph the match starts in, or 0.
func (m MatchResult) FirstParagraph() int {
	if len(m.Paragraphs) == 0 {
		return 0
	}
	return m.Paragraphs[0]
}

// LastParagraph returns the paragraph the match ends in, or 0.
func (m MatchResult) LastParagraph() int {
	if len(m.Paragraphs) == 0 {
		return 0
	}
	return m.Paragraphs[len(m.Paragraphs)-1]
}

// Location is the result of locating a target string in a document.
// Match is set when Status is LocateFound; Candidates is set when Status
// is LocateAmbiguous.
type Location struct {
	Status     LocateStatus  `json:"status" yaml:"status"`
	Match      *MatchResult  `json:"match,omitempty" yaml:"match,omitempty"`
	Candidates []MatchResult `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// NotFound returns a Location with status LocateNotFound.
func NotFound() Location {
	return Location{Status: LocateNotFound}
}

// Found wraps a single match.
func Found(m MatchResult) Location {
	return Location{Status: LocateFound, Match: &m}
}

// Ambiguous wraps multiple candidate matches.
func Ambiguous(candidates []MatchResult) Location {
	return Location{Status: LocateAmbiguous, Candidates: candidates}
}

// InconsistencyKind names the coordinate system that disagreed.
type InconsistencyKind string

const (
	InconsistentCanonical InconsistencyKind = "canonical"
	InconsistentPlainText InconsistencyKind = "plain_text"
	InconsistentWords     InconsistencyKind = "words"
	InconsistentParagraph InconsistencyKind = "paragraph"
)

// Inconsistency reports that one coordinate system found a different number
// of hits than the location result implies.
type Inconsistency struct {
	Kind     InconsistencyKind `json:"kind" yaml:"kind"`
	Expected int               `json:"expected" yaml:"expected"`
	Actual   int               `json:"actual" yaml:"actual"`
	Message  string            `json:"message" yaml:"message"`
}
