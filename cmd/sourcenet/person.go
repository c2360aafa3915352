// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sourcenet/internal/names"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Parse names and manage the people database",
	Long: `Person parses name strings, resolves them against the people database
with staged lookups, and adds or imports people.`,
}

// --- parse subcommand ---

var personParseCmd = &cobra.Command{
	Use:   "parse NAME...",
	Short: "Split a name into prefix, first, middle, last, suffix, and nickname",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		parsed := names.StandardizeName(names.ParseName(name), appConfig.Matcher.StripPeriods)
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(os.Stdout, parsed)
		}
		fmt.Printf("%q\n", parsed.FullName())
		printParsedName(os.Stdout, parsed)
		return nil
	},
}

// --- find subcommand ---

var personFindCmd = &cobra.Command{
	Use:   "find NAME...",
	Short: "Resolve a name against the people database",
	Long: `Find runs the staged lookup (strict exact, single-word contains, loose
exact, loose partial, any-field contains) and reports whether the name
matched one person, several, or nobody.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPersonFind,
}

func runPersonFind(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	m := names.NewMatcher(s, appConfig.Matcher, logger)
	outcome, err := m.FindPerson(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(os.Stdout, outcome)
	}
	printOutcome(os.Stdout, outcome)
	return nil
}

// --- add subcommand ---

var personAddCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add a person unless the name already matches someone",
	Long: `Add looks the name up first and stores a new person only when nobody
matches. Use --force to store the person regardless.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPersonAdd,
}

func runPersonAdd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	strict, _ := cmd.Flags().GetBool("strict")
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("name required")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	m := names.NewMatcher(s, appConfig.Matcher, logger)
	p, status, err := m.GetPersonForName(cmd.Context(), name, true, strict)
	if err != nil {
		return err
	}
	switch {
	case status == names.LookupFound && !force:
		fmt.Printf("%s  %s  %s\n", okLabel.Sprint("EXISTS"), p.ID, p.FullName)
		return nil
	case status == names.LookupNone && !force:
		return fmt.Errorf("%q matches several people: use --force to add anyway", name)
	case force:
		created := names.NewPerson(name, appConfig.Matcher.StripPeriods)
		p = &created
	}

	stored, err := s.AddPerson(cmd.Context(), *p)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s  %s\n", okLabel.Sprint("ADDED"), stored.ID, stored.FullName)
	return nil
}

// --- import subcommand ---

var personImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import people from a YAML list",
	Long: `Import reads a YAML list whose elements are name strings or person
mappings (id, prefix, first, middle, last, suffix, nickname, gender, title,
notes, or name to have it parsed). Entries with an existing id are updated.`,
	Args: cobra.ExactArgs(1),
	RunE: runPersonImport,
}

func runPersonImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening people file: %w", err)
	}
	defer f.Close()

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.ImportPeople(cmd.Context(), f, os.Stdout, appConfig.Matcher.StripPeriods)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d entries failed to import", summary.Failed, summary.Total())
	}
	return nil
}

// --- list subcommand ---

var personListCmd = &cobra.Command{
	Use:   "list",
	Short: "List or export every person",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if format != "" {
			return s.ExportPeople(cmd.Context(), os.Stdout, format)
		}
		people, err := s.ListPeople(cmd.Context())
		if err != nil {
			return err
		}
		printPeople(os.Stdout, people)
		return nil
	},
}

func init() {
	personParseCmd.Flags().Bool("json", false, "output as JSON")
	personFindCmd.Flags().Bool("json", false, "output as JSON")
	personAddCmd.Flags().Bool("force", false, "add even when the name matches existing people")
	personAddCmd.Flags().Bool("strict", false, "require absent name parts to be absent on the match")
	personListCmd.Flags().String("format", "", "export format: yaml or json (default: table)")

	personCmd.AddCommand(personParseCmd)
	personCmd.AddCommand(personFindCmd)
	personCmd.AddCommand(personAddCmd)
	personCmd.AddCommand(personImportCmd)
	personCmd.AddCommand(personListCmd)
	rootCmd.AddCommand(personCmd)
}
