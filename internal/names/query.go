// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/sourcenet/pkg/types"
)

// FilterMode selects how a FieldFilter compares a stored field.
type FilterMode string

const (
	// ModeExact matches a field equal to Value, ignoring case.
	ModeExact FilterMode = "exact"

	// ModeContains matches a field containing Value, ignoring case.
	ModeContains FilterMode = "contains"

	// ModeEmpty matches a field that is unset. Value is ignored; a null and
	// an empty string are the same thing.
	ModeEmpty FilterMode = "empty"
)

// FieldFilter constrains one person field.
type FieldFilter struct {
	Field types.NameField
	Value string
	Mode  FilterMode
}

// PersonQuery selects records matching every filter in All and, when Any
// is non-empty, at least one filter in Any. An empty query matches every
// record.
type PersonQuery struct {
	All []FieldFilter
	Any []FieldFilter
}

// PersonStore looks up stored people. Implementations must apply
// FieldFilter semantics exactly as Matches does.
type PersonStore interface {
	FindPeople(ctx context.Context, q PersonQuery) ([]types.PersonRecord, error)
}

// searchFields are the fields an OR-contains query looks at.
var searchFields = []types.NameField{
	types.FieldFirst, types.FieldMiddle, types.FieldLast, types.FieldFullName,
}

// BuildQuery builds the filter for one lookup of parsed. Each present part
// must match its field, by substring when partial and exactly otherwise.
// With strict, each absent part must be absent from the record too;
// without it, absent parts are unconstrained.
func BuildQuery(parsed types.ParsedName, strict, partial bool) PersonQuery {
	var q PersonQuery
	for _, f := range types.NamePartFields {
		v := parsed.Part(f)
		switch {
		case v != "" && partial:
			q.All = append(q.All, FieldFilter{Field: f, Value: v, Mode: ModeContains})
		case v != "":
			q.All = append(q.All, FieldFilter{Field: f, Value: v, Mode: ModeExact})
		case strict:
			q.All = append(q.All, FieldFilter{Field: f, Mode: ModeEmpty})
		}
	}
	return q
}

// AnyContainsQuery matches records whose first, middle, last, or full name
// contains s.
func AnyContainsQuery(s string) PersonQuery {
	q := PersonQuery{Any: make([]FieldFilter, 0, len(searchFields))}
	for _, f := range searchFields {
		q.Any = append(q.Any, FieldFilter{Field: f, Value: s, Mode: ModeContains})
	}
	return q
}

// Lookup runs BuildQuery(parsed, strict, partial) against store.
func Lookup(ctx context.Context, store PersonStore, parsed types.ParsedName, strict, partial bool) ([]types.PersonRecord, error) {
	people, err := store.FindPeople(ctx, BuildQuery(parsed, strict, partial))
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", parsed.FullName(), err)
	}
	return people, nil
}

// Matches reports whether r satisfies q.
func Matches(r types.PersonRecord, q PersonQuery) bool {
	for _, f := range q.All {
		if !f.Matches(r) {
			return false
		}
	}
	if len(q.Any) == 0 {
		return true
	}
	for _, f := range q.Any {
		if f.Matches(r) {
			return true
		}
	}
	return false
}

// Matches reports whether r satisfies the filter.
func (f FieldFilter) Matches(r types.PersonRecord) bool {
	v := strings.TrimSpace(r.Field(f.Field))
	switch f.Mode {
	case ModeEmpty:
		return v == ""
	case ModeExact:
		return Fold(v) == Fold(strings.TrimSpace(f.Value))
	case ModeContains:
		return strings.Contains(Fold(v), Fold(strings.TrimSpace(f.Value)))
	}
	return false
}
