// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/sourcenet/pkg/types"
)

var (
	okLabel   = color.New(color.FgGreen, color.Bold)
	warnLabel = color.New(color.FgYellow, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
	dimLabel  = color.New(color.FgCyan)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func locateLabel(s types.LocateStatus) string {
	switch s {
	case types.LocateFound:
		return okLabel.Sprint("FOUND")
	case types.LocateAmbiguous:
		return warnLabel.Sprint("AMBIGUOUS")
	}
	return failLabel.Sprint("NOT FOUND")
}

func matchLabel(s types.MatchStatus) string {
	switch s {
	case types.MatchFound:
		return okLabel.Sprint("FOUND")
	case types.MatchAmbiguous:
		return warnLabel.Sprint("AMBIGUOUS")
	}
	return dimLabel.Sprint("NEW")
}

func formatMatch(m types.MatchResult) string {
	return fmt.Sprintf("method=%s paragraphs=%v canonical=%d plain=%d words=%d-%d",
		m.Method, m.Paragraphs, m.CanonicalIndex, m.PlainTextIndex, m.Words.First, m.Words.Last)
}

func printLocationReport(w io.Writer, target string, r types.LocationReport) {
	fmt.Fprintf(w, "%s  %q\n", locateLabel(r.Status), target)
	switch r.Status {
	case types.LocateFound:
		fmt.Fprintf(w, "  %s\n", formatMatch(*r.Match))
	case types.LocateAmbiguous:
		for i, c := range r.Candidates {
			fmt.Fprintf(w, "  %d. %s\n", i+1, formatMatch(c))
		}
	}
	fmt.Fprintf(w, "  counts: canonical=%d plain=%d words=%d paragraphs=%d\n",
		r.CanonicalCount, r.PlainTextCount, r.WordMatchCount, r.ParagraphCount)
	for _, inc := range r.Inconsistencies {
		fmt.Fprintf(w, "  %s %s\n", warnLabel.Sprint("inconsistent:"), inc.Message)
	}
}

func printParsedName(w io.Writer, p types.ParsedName) {
	rows := []struct{ label, value string }{
		{"prefix", p.Prefix},
		{"first", p.First},
		{"middle", p.Middle},
		{"last", p.Last},
		{"suffix", p.Suffix},
		{"nickname", p.Nickname},
	}
	for _, r := range rows {
		if r.value != "" {
			fmt.Fprintf(w, "  %-9s %s\n", r.label+":", r.value)
		}
	}
}

func printOutcome(w io.Writer, o types.MatchOutcome) {
	stage := ""
	if o.Stage != types.StageNone {
		stage = fmt.Sprintf(" (stage %s)", o.Stage)
	}
	fmt.Fprintf(w, "%s  %q%s\n", matchLabel(o.Status), o.Name, stage)
	switch o.Status {
	case types.MatchFound:
		fmt.Fprintf(w, "  %s  %s  confidence=%.2f\n", o.Person.ID, o.Person.FullName, o.Confidence)
	case types.MatchAmbiguous:
		for _, c := range o.Candidates {
			fmt.Fprintf(w, "  %s  %s\n", c.ID, c.FullName)
		}
	case types.MatchNew:
		printParsedName(w, o.Parsed)
	}
}

func printPeople(w io.Writer, people []types.PersonRecord) {
	if len(people) == 0 {
		fmt.Fprintln(w, "No people found.")
		return
	}
	fmt.Fprintf(w, "%-36s  %s\n", "ID", "Name")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, p := range people {
		fmt.Fprintf(w, "%-36s  %s\n", p.ID, p.FullName)
	}
	fmt.Fprintf(w, "\n%d people\n", len(people))
}
