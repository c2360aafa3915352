// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// ParsedName is a person name decomposed into its parts. Empty string means
// the part is absent.
type ParsedName struct {
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	First    string `json:"first,omitempty" yaml:"first,omitempty"`
	Middle   string `json:"middle,omitempty" yaml:"middle,omitempty"`
	Last     string `json:"last,omitempty" yaml:"last,omitempty"`
	Suffix   string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Nickname string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
}

// IsEmpty reports whether no part is set.
func (p ParsedName) IsEmpty() bool {
	return p == ParsedName{}
}

// FullName joins the parts in canonical order: prefix, first, middle,
// nickname in quotes, last, then suffix after a comma.
func (p ParsedName) FullName() string {
	parts := make([]string, 0, 5)
	for _, s := range []string{p.Prefix, p.First, p.Middle} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.Nickname != "" {
		parts = append(parts, `"`+p.Nickname+`"`)
	}
	if p.Last != "" {
		parts = append(parts, p.Last)
	}
	full := strings.Join(parts, " ")
	if p.Suffix != "" {
		if full == "" {
			return p.Suffix
		}
		full += ", " + p.Suffix
	}
	return full
}

// Part returns the value of the named field.
func (p ParsedName) Part(f NameField) string {
	switch f {
	case FieldPrefix:
		return p.Prefix
	case FieldFirst:
		return p.First
	case FieldMiddle:
		return p.Middle
	case FieldLast:
		return p.Last
	case FieldSuffix:
		return p.Suffix
	case FieldNickname:
		return p.Nickname
	case FieldFullName:
		return p.FullName()
	}
	return ""
}

// NameField identifies a searchable person field.
type NameField string

const (
	FieldPrefix   NameField = "name_prefix"
	FieldFirst    NameField = "first_name"
	FieldMiddle   NameField = "middle_name"
	FieldLast     NameField = "last_name"
	FieldSuffix   NameField = "name_suffix"
	FieldNickname NameField = "nickname"
	FieldFullName NameField = "full_name_string"
)

// NamePartFields lists the structured name fields in lookup order.
var NamePartFields = []NameField{
	FieldPrefix, FieldFirst, FieldMiddle, FieldLast, FieldSuffix, FieldNickname,
}

// Gender values carried on person records.
type Gender string

const (
	GenderUnknown Gender = "na"
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
)

// PersonRecord is a stored person. The matcher compares it field by field
// and otherwise treats it as opaque.
type PersonRecord struct {
	ID string `json:"id" yaml:"id"`
	ParsedName `yaml:",inline"`

	// FullName is the standardized full name string.
	FullName string `json:"full_name" yaml:"full_name"`

	// OriginalName is the name string as first seen, before parsing.
	OriginalName string `json:"original_name,omitempty" yaml:"original_name,omitempty"`

	Gender      Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	IsAmbiguous bool   `json:"is_ambiguous,omitempty" yaml:"is_ambiguous,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Field returns the stored value of the named field.
func (r PersonRecord) Field(f NameField) string {
	if f == FieldFullName {
		return r.FullName
	}
	return r.ParsedName.Part(f)
}

// MatchStatus is the outcome tag of a person lookup.
type MatchStatus string

const (
	MatchFound     MatchStatus = "found"
	MatchNew       MatchStatus = "new"
	MatchAmbiguous MatchStatus = "ambiguous"
)

// LookupStage identifies which staged lookup produced an outcome.
type LookupStage string

const (
	StageNone         LookupStage = ""
	StageStrictExact  LookupStage = "strict_exact"
	StageSingleWord   LookupStage = "single_word"
	StageLooseExact   LookupStage = "loose_exact"
	StageLoosePartial LookupStage = "loose_partial"
	StageAnyContains  LookupStage = "any_contains"
)

// MatchOutcome is the result of resolving a name against a person store.
// Person is set for MatchFound, Candidates for MatchAmbiguous. Parsed is
// always set.
type MatchOutcome struct {
	Status     MatchStatus    `json:"status" yaml:"status"`
	Name       string         `json:"name" yaml:"name"`
	Parsed     ParsedName     `json:"parsed" yaml:"parsed"`
	Stage      LookupStage    `json:"stage,omitempty" yaml:"stage,omitempty"`
	Person     *PersonRecord  `json:"person,omitempty" yaml:"person,omitempty"`
	Candidates []PersonRecord `json:"candidates,omitempty" yaml:"candidates,omitempty"`

	// Confidence is the similarity between the queried name and the matched
	// person's full name, from 0 to 1. Zero unless Status is MatchFound.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// CandidateIDs returns the ids of all ambiguous candidates.
func (o MatchOutcome) CandidateIDs() []string {
	ids := make([]string, len(o.Candidates))
	for i, c := range o.Candidates {
		ids[i] = c.ID
	}
	return ids
}
