// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Locator.PunctuationFallback)
	assert.True(t, cfg.Locator.Reconcile)
	assert.False(t, cfg.Locator.IgnoreCase)
	assert.Equal(t, "data", cfg.Store.DataDir)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
		{"no data dir", func(c *Config) { c.Store.DataDir = "" }, "data_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDocumentParagraph(t *testing.T) {
	doc := NewDocument("a1", "one", "two")
	assert.Equal(t, 2, doc.ParagraphCount())

	p, ok := doc.Paragraph(2)
	assert.True(t, ok)
	assert.Equal(t, "two", p)

	_, ok = doc.Paragraph(0)
	assert.False(t, ok)
	_, ok = doc.Paragraph(3)
	assert.False(t, ok)
}

func TestParsedNameFullName(t *testing.T) {
	tests := []struct {
		name string
		p    ParsedName
		want string
	}{
		{"empty", ParsedName{}, ""},
		{"first only", ParsedName{First: "Cher"}, "Cher"},
		{"all parts", ParsedName{Prefix: "Dr.", First: "Martin", Middle: "Luther", Last: "King", Suffix: "Jr."}, "Dr. Martin Luther King, Jr."},
		{"nickname", ParsedName{First: "Robert", Nickname: "Bob", Last: "Smith"}, `Robert "Bob" Smith`},
		{"suffix alone", ParsedName{Suffix: "III"}, "III"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.FullName())
		})
	}
	assert.True(t, ParsedName{}.IsEmpty())
	assert.False(t, ParsedName{Last: "Smith"}.IsEmpty())
}

func TestPersonRecordField(t *testing.T) {
	r := PersonRecord{ParsedName: ParsedName{First: "Ann", Last: "Lee"}, FullName: "Ann Lee"}
	assert.Equal(t, "Ann", r.Field(FieldFirst))
	assert.Equal(t, "Lee", r.Field(FieldLast))
	assert.Equal(t, "", r.Field(FieldMiddle))
	assert.Equal(t, "Ann Lee", r.Field(FieldFullName))
}

func TestMatchResultParagraphs(t *testing.T) {
	var m MatchResult
	assert.False(t, m.Straddles())
	assert.Equal(t, 0, m.FirstParagraph())
	assert.Equal(t, 0, m.LastParagraph())

	m.Paragraphs = []int{2, 3}
	assert.True(t, m.Straddles())
	assert.Equal(t, 2, m.FirstParagraph())
	assert.Equal(t, 3, m.LastParagraph())
}

func TestLocationConstructors(t *testing.T) {
	assert.Equal(t, LocateNotFound, NotFound().Status)

	loc := Found(MatchResult{Target: "x"})
	require.NotNil(t, loc.Match)
	assert.Equal(t, LocateFound, loc.Status)
	assert.Equal(t, "x", loc.Match.Target)

	amb := Ambiguous([]MatchResult{{}, {}})
	assert.Equal(t, LocateAmbiguous, amb.Status)
	assert.Len(t, amb.Candidates, 2)
	assert.Nil(t, amb.Match)
}

func TestCandidateIDs(t *testing.T) {
	o := MatchOutcome{Candidates: []PersonRecord{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, []string{"a", "b"}, o.CandidateIDs())
	assert.Empty(t, MatchOutcome{}.CandidateIDs())
}
