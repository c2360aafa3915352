// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sourcenet/pkg/types"
)

// --- test helpers ---

func defaultLocator() *Locator {
	return NewLocator(types.DefaultConfig().Locator, nil)
}

func views(paragraphs ...string) *Views {
	return Index(types.NewDocument("test", paragraphs...))
}

func requireFound(t *testing.T, loc types.Location) types.MatchResult {
	t.Helper()
	require.Equal(t, types.LocateFound, loc.Status, "location %+v", loc)
	require.NotNil(t, loc.Match)
	return *loc.Match
}

// --- tests ---

func TestLocateSingleParagraph(t *testing.T) {
	v := views("Alice said hello.", "Bob replied.")
	m := requireFound(t, defaultLocator().Locate(v, "Bob replied."))

	assert.Equal(t, types.MethodDirect, m.Method)
	assert.Equal(t, []int{2}, m.Paragraphs)
	assert.Equal(t, 42, m.CanonicalIndex)
	assert.Equal(t, 18, m.PlainTextIndex)
	assert.Equal(t, types.WordRange{First: 4, Last: 5}, m.Words)
	assert.Equal(t, "Bob replied.", v.Canonical()[m.CanonicalIndex:m.CanonicalIndex+len(m.Target)])
}

func TestLocateWholeParagraph(t *testing.T) {
	v := views("Alice said hello.", "Bob replied.")
	m := requireFound(t, defaultLocator().Locate(v, "Alice said hello."))
	assert.Equal(t, []int{1}, m.Paragraphs)
	assert.Equal(t, types.WordRange{First: 1, Last: 3}, m.Words)
}

func TestLocateStraddlingByWordGrowth(t *testing.T) {
	v := views("The team celebrated after the game", "ended in a tie.")
	m := requireFound(t, defaultLocator().Locate(v, "the game ended in a tie"))

	assert.Equal(t, types.MethodWordGrowth, m.Method)
	assert.Equal(t, []int{1, 2}, m.Paragraphs)
	assert.True(t, m.Straddles())
	assert.Equal(t, 26, m.PlainTextIndex)
	assert.Equal(t, 36, m.CanonicalIndex)
	assert.Equal(t, types.WordRange{First: 5, Last: 10}, m.Words)
}

func TestLocateStraddlingAcrossBlankParagraph(t *testing.T) {
	v := views("The team celebrated after the game", "", "ended in a tie.")
	l := defaultLocator()
	m := requireFound(t, l.Locate(v, "the game ended in a tie"))

	assert.Equal(t, types.MethodWordGrowth, m.Method)
	assert.Equal(t, []int{1, 2, 3}, m.Paragraphs)
	assert.Equal(t, 26, m.PlainTextIndex)
	assert.Equal(t, 36, m.CanonicalIndex)
	assert.Equal(t, types.WordRange{First: 5, Last: 10}, m.Words)

	r := l.Report(v, "the game ended in a tie")
	assert.True(t, r.Consistent(), "inconsistencies %+v", r.Inconsistencies)
}

func TestLocatePrefixTrimSkipsBlankParagraph(t *testing.T) {
	v := views("it was the", "", "game ended early", "by the river")
	m := requireFound(t, defaultLocator().Locate(v, "the game ended"))

	assert.Equal(t, types.MethodPrefixTrim, m.Method)
	assert.Equal(t, []int{1, 2, 3}, m.Paragraphs)
	assert.Equal(t, 7, m.PlainTextIndex)
	assert.Equal(t, 17, m.CanonicalIndex)
	assert.Equal(t, types.WordRange{First: 3, Last: 5}, m.Words)
}

func TestLocateStraddlingByPrefixTrim(t *testing.T) {
	// "the" occurs in two paragraphs and "the game" in none, so word growth
	// cannot narrow to one paragraph.
	v := views("it was the", "game ended early", "by the river")
	m := requireFound(t, defaultLocator().Locate(v, "the game ended"))

	assert.Equal(t, types.MethodPrefixTrim, m.Method)
	assert.Equal(t, []int{1, 2}, m.Paragraphs)
	assert.Equal(t, 7, m.PlainTextIndex)
	assert.Equal(t, 17, m.CanonicalIndex)
	assert.Equal(t, types.WordRange{First: 3, Last: 5}, m.Words)
}

func TestLocateReconcileDisabled(t *testing.T) {
	cfg := types.DefaultConfig().Locator
	cfg.Reconcile = false
	v := views("it was the", "game ended early", "by the river")

	loc := NewLocator(cfg, nil).Locate(v, "the game ended")
	assert.Equal(t, types.LocateNotFound, loc.Status)
}

func TestLocateReconcileAcrossThreeParagraphs(t *testing.T) {
	v := views("and so the", "game", "ended there", "the end")
	m := requireFound(t, defaultLocator().Locate(v, "the game ended"))

	assert.Equal(t, []int{1, 2, 3}, m.Paragraphs)
	assert.LessOrEqual(t, len(m.Paragraphs), 3)
}

func TestLocateAmbiguous(t *testing.T) {
	v := views("Bob replied.", "Alice waited.", "Bob replied.")
	loc := defaultLocator().Locate(v, "Bob replied.")

	require.Equal(t, types.LocateAmbiguous, loc.Status)
	assert.Nil(t, loc.Match)
	require.Len(t, loc.Candidates, 2)
	assert.Equal(t, []int{1}, loc.Candidates[0].Paragraphs)
	assert.Equal(t, []int{3}, loc.Candidates[1].Paragraphs)
}

func TestLocateNotFound(t *testing.T) {
	v := views("The team celebrated after the game", "ended in a tie.")
	tests := []struct {
		name   string
		target string
	}{
		{"absent phrase", "the quick brown fox"},
		{"empty", ""},
		{"blank", " \n\t"},
		{"markup only", "<b></b>"},
		{"paragraph markup", `id="1"`},
		{"punctuation differs", "celebrated, after the game"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := defaultLocator().Locate(v, tt.target)
			assert.Equal(t, types.LocateNotFound, loc.Status)
			assert.Nil(t, loc.Match)
			assert.Empty(t, loc.Candidates)
		})
	}
}

func TestLocateNormalizesTarget(t *testing.T) {
	v := views("Alice said hello.", "Bob replied.")
	m := requireFound(t, defaultLocator().Locate(v, "  <i>Bob</i>\n replied. "))
	assert.Equal(t, "Bob replied.", m.Target)
}

func TestLocateIgnoreCase(t *testing.T) {
	cfg := types.DefaultConfig().Locator
	cfg.IgnoreCase = true
	v := views("Alice said hello.", "Bob replied.")

	m := requireFound(t, NewLocator(cfg, nil).Locate(v, "bob REPLIED."))
	assert.Equal(t, []int{2}, m.Paragraphs)

	loc := defaultLocator().Locate(v, "bob REPLIED.")
	assert.Equal(t, types.LocateNotFound, loc.Status)
}

func TestLocateEmptyDocument(t *testing.T) {
	loc := defaultLocator().Locate(views(), "anything")
	assert.Equal(t, types.LocateNotFound, loc.Status)
}
