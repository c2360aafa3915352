// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sourcenet/internal/article"
	"github.com/pdiddy/sourcenet/internal/names"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func addPeople(t *testing.T, s *Store, fullNames ...string) []types.PersonRecord {
	t.Helper()
	out := make([]types.PersonRecord, 0, len(fullNames))
	for _, n := range fullNames {
		p, err := s.AddPerson(context.Background(), names.NewPerson(n, false))
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

// --- tests ---

func TestAddAndGetPerson(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	added := addPeople(t, s, "Dr. Jane A. Smith Jr.")[0]
	require.NotEmpty(t, added.ID)

	got, err := s.GetPerson(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
	assert.Equal(t, "Dr.", got.Prefix)
	assert.Equal(t, "Dr. Jane A. Smith, Jr.", got.FullName)

	_, err = s.GetPerson(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddPersonReplacesByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	p := addPeople(t, s, "John Smith")[0]
	p.Title = "mayor"
	_, err := s.AddPerson(ctx, p)
	require.NoError(t, err)

	all, err := s.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "mayor", all[0].Title)
}

// The SQLite store must agree with names.Matches on every query shape.
func TestFindPeopleMatchesMemorySemantics(t *testing.T) {
	s := testStore(t)
	people := addPeople(t, s, "John Smith", "John Q. Smith", "Jonathan Smithers", "Jane Doe", "Ölaf Ångström")
	mem := names.NewMemoryStore(people...)
	ctx := context.Background()

	queries := map[string]names.PersonQuery{
		"strict exact":      names.BuildQuery(names.ParseName("John Smith"), true, false),
		"loose exact":       names.BuildQuery(names.ParseName("john smith"), false, false),
		"loose partial":     names.BuildQuery(names.ParseName("Jon Smith"), false, true),
		"any contains":      names.AnyContainsQuery("smith"),
		"unicode fold":      names.AnyContainsQuery("ÅNGSTRÖM"),
		"empty query":       {},
		"no match":          names.BuildQuery(names.ParseName("Robert Jones"), false, false),
		"middle empty only": {All: []names.FieldFilter{{Field: types.FieldMiddle, Mode: names.ModeEmpty}}},
	}
	for name, q := range queries {
		t.Run(name, func(t *testing.T) {
			want, err := mem.FindPeople(ctx, q)
			require.NoError(t, err)
			got, err := s.FindPeople(ctx, q)
			require.NoError(t, err)
			assert.Equal(t, ids(want), ids(got))
		})
	}
}

func TestFindPeopleUnknownField(t *testing.T) {
	s := testStore(t)
	_, err := s.FindPeople(context.Background(), names.PersonQuery{
		All: []names.FieldFilter{{Field: "email", Value: "x", Mode: names.ModeExact}},
	})
	assert.Error(t, err)
}

func TestMatcherOverStore(t *testing.T) {
	s := testStore(t)
	addPeople(t, s, "John Smith", "John Smith")
	m := names.NewMatcher(s, types.MatcherConfig{}, nil)

	out, err := m.FindPerson(context.Background(), "John Smith")
	require.NoError(t, err)
	assert.Equal(t, types.MatchAmbiguous, out.Status)
	assert.Len(t, out.CandidateIDs(), 2)
}

func TestImportPeople(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	existing := addPeople(t, s, "Jane Doe")[0]

	file := `
- Dr. Jane A. Smith Jr.
- name: Robert "Bob" Jones
  gender: male
  title: coach
- first: Mary
  last: O'Brien
  notes: from the sports desk
- id: ` + existing.ID + `
  name: Jane Q. Doe
- ""
- [not, a, person]
`
	var log bytes.Buffer
	summary, err := s.ImportPeople(ctx, strings.NewReader(file), &log, false)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Added)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 6, summary.Total())
	assert.Contains(t, log.String(), "added: 3, updated: 1, failed: 2")

	all, err := s.ListPeople(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Jane Q. Doe", all[0].FullName)
	assert.Equal(t, "Dr. Jane A. Smith, Jr.", all[1].FullName)
	assert.Equal(t, "Bob", all[2].Nickname)
	assert.Equal(t, types.GenderMale, all[2].Gender)
	assert.Equal(t, "Mary O'Brien", all[3].FullName)
	assert.Equal(t, types.GenderUnknown, all[3].Gender)
}

func TestImportPeopleBadFile(t *testing.T) {
	s := testStore(t)
	_, err := s.ImportPeople(context.Background(), strings.NewReader("key: value"), &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestExportPeople(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	addPeople(t, s, "John Smith", "Jane Doe")

	var y bytes.Buffer
	require.NoError(t, s.ExportPeople(ctx, &y, "yaml"))
	var fromYAML []types.PersonRecord
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "Smith", fromYAML[0].Last)

	var j bytes.Buffer
	require.NoError(t, s.ExportPeople(ctx, &j, "json"))
	var fromJSON []types.PersonRecord
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	assert.Equal(t, "Doe", fromJSON[1].Last)

	assert.Error(t, s.ExportPeople(ctx, &bytes.Buffer{}, "xml"))
}

func TestArticleContent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.GetContent(ctx, "a1")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = article.Save(ctx, s, "a1", `<p id="1">The team celebrated after the game</p><p id="2">ended in a tie.</p>`)
	require.NoError(t, err)
	_, err = s.SetContent(ctx, "a2", "<p>Other.</p>")
	require.NoError(t, err)

	doc, err := article.Load(ctx, s, "a1")
	require.NoError(t, err)
	assert.Equal(t, []string{"The team celebrated after the game", "ended in a tie."}, doc.Paragraphs)

	stored, err := s.SetContent(ctx, "a1", "<p>Replaced.</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>Replaced.</p>", stored)
	content, err := s.GetContent(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "<p>Replaced.</p>", content)
}

func ids(people []types.PersonRecord) []string {
	out := []string{}
	for _, p := range people {
		out = append(out, p.ID)
	}
	return out
}
