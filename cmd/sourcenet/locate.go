// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sourcenet/internal/article"
	"github.com/pdiddy/sourcenet/internal/locate"
	"github.com/pdiddy/sourcenet/pkg/types"
)

var locateCmd = &cobra.Command{
	Use:   "locate TARGET...",
	Short: "Find quotations or names in an article",
	Long: `Locate finds each target string in an article and reports its position
in every coordinate system: canonical offset, plain-text offset, word range,
and paragraph numbers. Targets that cross a paragraph break are resolved.

The article comes from an HTML file (--file) or from the database (--article).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	articleID, _ := cmd.Flags().GetString("article")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	doc, err := loadArticle(cmd.Context(), file, articleID)
	if err != nil {
		return err
	}

	l := locate.NewLocator(appConfig.Locator, logger)
	v := locate.Index(doc)
	reports := make([]types.LocationReport, len(args))
	for i, target := range args {
		reports[i] = l.Report(v, target)
	}

	if jsonOutput {
		return writeJSON(os.Stdout, reports)
	}
	for i, r := range reports {
		printLocationReport(os.Stdout, args[i], r)
	}
	return nil
}

// loadArticle reads the document from file when set, else from the
// database by id.
func loadArticle(ctx context.Context, file, articleID string) (types.Document, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return types.Document{}, fmt.Errorf("reading article file: %w", err)
		}
		id := articleID
		if id == "" {
			id = file
		}
		return article.Parse(id, string(data))
	}
	if articleID == "" {
		return types.Document{}, fmt.Errorf("article required: provide --file or --article")
	}

	s, err := openStore()
	if err != nil {
		return types.Document{}, err
	}
	defer s.Close()
	return article.Load(ctx, s, articleID)
}

func init() {
	locateCmd.Flags().String("file", "", "HTML file holding the article body")
	locateCmd.Flags().String("article", "", "article id in the database")
	locateCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(locateCmd)
}
