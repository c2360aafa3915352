// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/sourcenet/internal/names"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// ImportSummary holds counts from a person import.
type ImportSummary struct {
	Added   int
	Updated int
	Failed  int
}

// Total returns the number of entries processed.
func (s ImportSummary) Total() int {
	return s.Added + s.Updated + s.Failed
}

// importEntry is one element of an import file: either a bare name string
// or a person mapping. A mapping with a name and no parts is parsed.
type importEntry struct {
	Name               string `yaml:"name"`
	types.PersonRecord `yaml:",inline"`
}

// ImportPeople reads a YAML list of people from r and stores them in one
// transaction. Each element is a name string ("Dr. Jane A. Smith Jr.") or
// a mapping of person fields. Entries that cannot be decoded are counted
// as failed and skipped; progress lines go to w.
func (s *Store) ImportPeople(ctx context.Context, r io.Reader, w io.Writer, stripPeriods bool) (ImportSummary, error) {
	var nodes []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		return ImportSummary{}, fmt.Errorf("parsing people file: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var summary ImportSummary
	for i := range nodes {
		p, err := decodeEntry(&nodes[i], stripPeriods)
		if err != nil {
			fmt.Fprintf(w, "failed  entry %d (line %d): %v\n", i+1, nodes[i].Line, err)
			summary.Failed++
			continue
		}

		existing := false
		if p.ID != "" {
			var n int
			if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM people WHERE id = ?`, p.ID).Scan(&n); err != nil {
				return summary, fmt.Errorf("checking person %s: %w", p.ID, err)
			}
			existing = n > 0
		}

		p = prepare(p)
		if err := upsertPerson(ctx, tx, p); err != nil {
			return summary, err
		}
		if existing {
			fmt.Fprintf(w, "updated %s (%s)\n", p.FullName, p.ID)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "added   %s (%s)\n", p.FullName, p.ID)
			summary.Added++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing import: %w", err)
	}
	fmt.Fprintf(w, "\nadded: %d, updated: %d, failed: %d\n", summary.Added, summary.Updated, summary.Failed)
	return summary, nil
}

func decodeEntry(n *yaml.Node, stripPeriods bool) (types.PersonRecord, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "" {
			return types.PersonRecord{}, fmt.Errorf("empty name")
		}
		return names.NewPerson(n.Value, stripPeriods), nil
	}

	var e importEntry
	if err := n.Decode(&e); err != nil {
		return types.PersonRecord{}, err
	}
	p := e.PersonRecord
	if p.ParsedName.IsEmpty() {
		if e.Name == "" {
			return types.PersonRecord{}, fmt.Errorf("entry has neither a name nor name parts")
		}
		parsed := names.NewPerson(e.Name, stripPeriods)
		p.ParsedName = parsed.ParsedName
		p.FullName = parsed.FullName
		if p.OriginalName == "" {
			p.OriginalName = e.Name
		}
	} else {
		p.ParsedName = names.StandardizeName(p.ParsedName, stripPeriods)
	}
	return p, nil
}

// ExportPeople writes every person to w as YAML or JSON.
func (s *Store) ExportPeople(ctx context.Context, w io.Writer, format string) error {
	people, err := s.ListPeople(ctx)
	if err != nil {
		return err
	}
	if people == nil {
		people = []types.PersonRecord{}
	}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(people); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(people); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q: use yaml or json", format)
}
