// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sourcenet/internal/article"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Store and inspect article body text",
}

var articleSetCmd = &cobra.Command{
	Use:   "set ID FILE",
	Short: "Store an article body from an HTML file",
	Long: `Set cleans the HTML body (only <p id="N"> markup survives), checks that
the paragraphs can be read back, and stores it under ID, replacing any
previous body.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading article file: %w", err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if _, err := article.Save(cmd.Context(), s, args[0], string(data)); err != nil {
			return err
		}
		doc, err := article.Load(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s (%d paragraphs)\n", okLabel.Sprint("STORED"), args[0], len(doc.Paragraphs))
		return nil
	},
}

var articleShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print an article's paragraphs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadArticle(cmd.Context(), "", args[0])
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return writeJSON(os.Stdout, doc)
		}
		for i, p := range doc.Paragraphs {
			fmt.Printf("%s %s\n", dimLabel.Sprintf("[%d]", i+1), p)
		}
		return nil
	},
}

func init() {
	articleShowCmd.Flags().Bool("json", false, "output as JSON")

	articleCmd.AddCommand(articleSetCmd)
	articleCmd.AddCommand(articleShowCmd)
	rootCmd.AddCommand(articleCmd)
}
