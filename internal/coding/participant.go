// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coding records who wrote an article and who appears in it, and
// whether each person resolved to a stored person.
package coding

import (
	"slices"

	"github.com/pdiddy/sourcenet/pkg/types"
)

// Participant is a person coded on an article. The set of implementations
// is closed: Author and Subject.
type Participant interface {
	// IsConnected reports whether the participant counts as connected
	// under c.
	IsConnected(c types.ConnectionCriteria) bool

	// Alternates returns the other people the name could refer to when the
	// lookup was ambiguous.
	Alternates() []types.PersonRecord

	participant()
}

// Author is a byline on the article.
type Author struct {
	Input   types.AuthorInput
	Outcome types.MatchOutcome
}

// IsConnected reports whether the author resolved to a person. Criteria
// apply to subjects only.
func (a *Author) IsConnected(types.ConnectionCriteria) bool {
	return a.Outcome.Person != nil
}

// Alternates returns the ambiguous candidates for the author's name.
func (a *Author) Alternates() []types.PersonRecord {
	return a.Outcome.Candidates
}

func (*Author) participant() {}

// Subject is a person quoted or mentioned in the article.
type Subject struct {
	Input   types.SubjectInput
	Kind    types.SubjectKind
	Outcome types.MatchOutcome
}

// NewSubject builds a subject from in. Without an explicit kind, a subject
// with quotations is quoted and one without is mentioned.
func NewSubject(in types.SubjectInput, outcome types.MatchOutcome) *Subject {
	kind := in.Kind
	if kind == "" {
		kind = types.SubjectMentioned
		if len(in.Quotations) > 0 {
			kind = types.SubjectQuoted
		}
	}
	return &Subject{Input: in, Kind: kind, Outcome: outcome}
}

// IsConnected reports whether the subject resolved to a person, is an
// individual, was contacted directly or at an event, and spoke in a
// capacity c allows.
func (s *Subject) IsConnected(c types.ConnectionCriteria) bool {
	if s.Outcome.Person == nil || s.Input.SourceType != types.SourceIndividual {
		return false
	}
	switch s.Input.ContactType {
	case types.ContactDirect, types.ContactEvent:
	default:
		return false
	}
	if c.IncludeCapacities != nil && !slices.Contains(c.IncludeCapacities, s.Input.Capacity) {
		return false
	}
	return !slices.Contains(c.ExcludeCapacities, s.Input.Capacity)
}

// Alternates returns the ambiguous candidates for the subject's name.
func (s *Subject) Alternates() []types.PersonRecord {
	return s.Outcome.Candidates
}

func (*Subject) participant() {}

func alternateIDs(p Participant) []string {
	alts := p.Alternates()
	if len(alts) == 0 {
		return nil
	}
	ids := make([]string, len(alts))
	for i, a := range alts {
		ids[i] = a.ID
	}
	return ids
}
