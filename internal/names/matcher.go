// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/pdiddy/sourcenet/internal/textnorm"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// LookupStatus describes the record returned by GetPersonForName.
type LookupStatus string

const (
	// LookupFound means an existing, stored person was returned.
	LookupFound LookupStatus = "found"

	// LookupNew means no person matched and a new, unsaved record was
	// returned.
	LookupNew LookupStatus = "new"

	// LookupNone means nothing was returned: the name was empty, several
	// people matched, or nothing matched and creation was not requested.
	LookupNone LookupStatus = "none"
)

// Matcher resolves names against a PersonStore. It keeps no per-call
// state, so concurrent calls are safe when the store allows concurrent
// reads.
type Matcher struct {
	store PersonStore
	cfg   types.MatcherConfig
	log   *zap.Logger
}

// NewMatcher returns a Matcher over store. A nil logger disables logging.
func NewMatcher(store PersonStore, cfg types.MatcherConfig, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{store: store, cfg: cfg, log: log.Named("names")}
}

// Parse parses and standardizes name with the matcher's settings.
func (m *Matcher) Parse(name string) types.ParsedName {
	return StandardizeName(ParseName(name), m.cfg.StripPeriods)
}

type stage struct {
	id    types.LookupStage
	query func(parsed types.ParsedName, name string, singleWord bool) (PersonQuery, bool)
}

// stages run in order; the first returning any record decides the outcome.
var stages = []stage{
	{types.StageStrictExact, func(p types.ParsedName, _ string, _ bool) (PersonQuery, bool) {
		return BuildQuery(p, true, false), true
	}},
	{types.StageSingleWord, func(_ types.ParsedName, name string, single bool) (PersonQuery, bool) {
		return AnyContainsQuery(name), single
	}},
	{types.StageLooseExact, func(p types.ParsedName, _ string, _ bool) (PersonQuery, bool) {
		return BuildQuery(p, false, false), true
	}},
	{types.StageLoosePartial, func(p types.ParsedName, _ string, _ bool) (PersonQuery, bool) {
		return BuildQuery(p, false, true), true
	}},
	{types.StageAnyContains, func(_ types.ParsedName, name string, _ bool) (PersonQuery, bool) {
		return AnyContainsQuery(name), true
	}},
}

// FindPerson resolves name with staged lookups: strict exact, then (for a
// single word) an OR-contains over first, middle, last, and full name,
// then loose exact, loose partial, and finally the OR-contains with the
// whole name. The first stage returning any record decides: one record is
// Found, several are Ambiguous and no looser stage is tried. When every
// stage is empty the outcome is New with the parsed name. A blank name, or
// one with no name parts (such as ","), is New with an empty parsed name
// and never reaches the store.
func (m *Matcher) FindPerson(ctx context.Context, name string) (types.MatchOutcome, error) {
	name = textnorm.CollapseWhitespace(name)
	out := types.MatchOutcome{Status: types.MatchNew, Name: name}
	if name == "" {
		m.log.Debug("empty name")
		return out, nil
	}
	out.Parsed = m.Parse(name)
	if out.Parsed.IsEmpty() {
		// An empty query matches every record.
		m.log.Debug("name has no parts", zap.String("name", name))
		return out, nil
	}
	single := len(textnorm.Tokenize(name)) == 1

	for _, s := range stages {
		q, ok := s.query(out.Parsed, name, single)
		if !ok {
			continue
		}
		people, err := m.store.FindPeople(ctx, q)
		if err != nil {
			return types.MatchOutcome{}, fmt.Errorf("finding %q at stage %s: %w", name, s.id, err)
		}
		m.log.Debug("lookup stage",
			zap.String("name", name),
			zap.String("stage", string(s.id)),
			zap.Int("matches", len(people)),
		)
		switch {
		case len(people) == 0:
			continue
		case len(people) == 1:
			out.Status = types.MatchFound
			out.Stage = s.id
			out.Person = &people[0]
			out.Confidence = Confidence(out.Parsed.FullName(), people[0])
		default:
			out.Status = types.MatchAmbiguous
			out.Stage = s.id
			out.Candidates = people
		}
		return out, nil
	}
	return out, nil
}

// GetPersonForName returns the one person matching name with a single
// lookup (strict or loose, always exact). With no match and
// createIfNoMatch it returns a new, unsaved record for name. Several
// matches return no record.
func (m *Matcher) GetPersonForName(ctx context.Context, name string, createIfNoMatch, strict bool) (*types.PersonRecord, LookupStatus, error) {
	name = textnorm.CollapseWhitespace(name)
	if name == "" {
		return nil, LookupNone, nil
	}
	parsed := m.Parse(name)
	if parsed.IsEmpty() {
		return nil, LookupNone, nil
	}
	people, err := Lookup(ctx, m.store, parsed, strict, false)
	if err != nil {
		return nil, LookupNone, err
	}
	switch len(people) {
	case 0:
		if !createIfNoMatch {
			return nil, LookupNone, nil
		}
		p := NewPerson(name, m.cfg.StripPeriods)
		return &p, LookupNew, nil
	case 1:
		return &people[0], LookupFound, nil
	default:
		m.log.Debug("several people match", zap.String("name", name), zap.Int("matches", len(people)))
		return nil, LookupNone, nil
	}
}

// Confidence scores how closely name matches p's full name: 1 for equal
// (ignoring case), falling toward 0 with edit distance.
func Confidence(name string, p types.PersonRecord) float64 {
	full := p.FullName
	if full == "" {
		full = p.ParsedName.FullName()
	}
	a, b := Fold(strings.TrimSpace(name)), Fold(strings.TrimSpace(full))
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
