// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sourcenet/internal/coding"
	"github.com/pdiddy/sourcenet/internal/locate"
	"github.com/pdiddy/sourcenet/internal/names"
)

var codeCmd = &cobra.Command{
	Use:   "code REQUEST",
	Short: "Code an article's authors and subjects",
	Long: `Code reads a coding request (YAML or JSON) naming an article, its
authors, and its subjects with their quotations. Every person is resolved
against the people database, every quotation and mention is located in the
article, and the resulting report is written to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runCode,
}

func runCode(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening coding request: %w", err)
	}
	defer f.Close()

	req, err := coding.ReadRequest(f)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	coder := coding.NewCoder(
		names.NewMatcher(s, appConfig.Matcher, logger),
		locate.NewLocator(appConfig.Locator, logger),
		s,
		logger,
	)
	report, err := coder.CodeArticle(cmd.Context(), req)
	if err != nil {
		return err
	}
	return coding.WriteReport(os.Stdout, report, format)
}

func init() {
	codeCmd.Flags().String("format", "yaml", "report format: yaml or json")

	rootCmd.AddCommand(codeCmd)
}
