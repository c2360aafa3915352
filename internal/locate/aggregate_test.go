// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sourcenet/pkg/types"
)

func TestReportConsistent(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []string
		target     string
		wantWords  []types.WordRange
	}{
		{
			name:       "single paragraph",
			paragraphs: []string{"Alice said hello.", "Bob replied."},
			target:     "Bob replied.",
			wantWords:  []types.WordRange{{First: 4, Last: 5}},
		},
		{
			name:       "word growth straddle with trailing punctuation",
			paragraphs: []string{"The team celebrated after the game", "ended in a tie."},
			target:     "the game ended in a tie",
			wantWords:  []types.WordRange{{First: 5, Last: 10}},
		},
		{
			name:       "prefix trim straddle",
			paragraphs: []string{"it was the", "game ended early", "by the river"},
			target:     "the game ended",
			wantWords:  []types.WordRange{{First: 3, Last: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := defaultLocator().Report(views(tt.paragraphs...), tt.target)
			require.Equal(t, types.LocateFound, r.Status)
			assert.True(t, r.Consistent(), "inconsistencies: %+v", r.Inconsistencies)
			assert.Equal(t, 1, r.CanonicalCount)
			assert.Equal(t, 1, r.PlainTextCount)
			assert.Equal(t, 1, r.WordMatchCount)
			assert.Equal(t, 1, r.ParagraphCount)
			assert.Equal(t, tt.wantWords, r.WordRanges)
		})
	}
}

func TestAggregateReportsDisagreement(t *testing.T) {
	v := views("Bob replied. Bob left.")
	claimed := types.Found(types.MatchResult{Target: "Bob", Method: types.MethodDirect, Paragraphs: []int{1}})

	r := defaultLocator().Aggregate(v, "Bob", claimed)

	assert.False(t, r.Consistent())
	kinds := make([]types.InconsistencyKind, 0, len(r.Inconsistencies))
	for _, inc := range r.Inconsistencies {
		assert.Equal(t, 1, inc.Expected)
		assert.Equal(t, 2, inc.Actual)
		assert.NotEmpty(t, inc.Message)
		kinds = append(kinds, inc.Kind)
	}
	assert.ElementsMatch(t, []types.InconsistencyKind{
		types.InconsistentCanonical,
		types.InconsistentPlainText,
		types.InconsistentWords,
	}, kinds)
}

func TestAggregateAmbiguousNotValidated(t *testing.T) {
	v := views("Bob replied.", "Bob replied.")
	r := defaultLocator().Report(v, "Bob replied.")

	assert.Equal(t, types.LocateAmbiguous, r.Status)
	assert.Equal(t, 2, r.CanonicalCount)
	assert.Equal(t, 2, r.ParagraphCount)
	assert.True(t, r.Consistent())
}

func TestAggregatePunctuationFallback(t *testing.T) {
	v := views("Smith, the mayor, spoke.")
	target := "Smith the mayor"

	r := defaultLocator().Aggregate(v, target, types.NotFound())
	assert.Equal(t, 1, r.WordMatchCount)
	assert.Equal(t, []types.WordRange{{First: 1, Last: 3}}, r.WordRanges)

	// A needle token that is only punctuation is dropped.
	r = defaultLocator().Aggregate(v, "Smith , the mayor", types.NotFound())
	assert.Equal(t, []types.WordRange{{First: 1, Last: 3}}, r.WordRanges)

	cfg := types.DefaultConfig().Locator
	cfg.PunctuationFallback = false
	r = NewLocator(cfg, nil).Aggregate(v, target, types.NotFound())
	assert.Equal(t, 0, r.WordMatchCount)
}

func TestAggregateEmptyTarget(t *testing.T) {
	r := defaultLocator().Aggregate(views("text"), "", types.NotFound())
	assert.Equal(t, types.LocateNotFound, r.Status)
	assert.Zero(t, r.PlainTextCount)
	assert.True(t, r.Consistent())
}
