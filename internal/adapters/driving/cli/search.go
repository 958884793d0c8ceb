package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/services"
)

var (
	searchInput    []string
	searchCategory string
	searchByID     bool
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Extract and search the resolved records",
	Long: `Runs the extraction pipeline over the input documents, then
searches the resolved records. Matching is case-insensitive substring
containment against the record ID (--by-id) or against the resolved
name and description text (default). An empty query lists the whole
category.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchInput, "input", "i", nil, "XML documents or directories to extract from (required)")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "items", "category to search (items, npcs, quests, other)")
	searchCmd.Flags().BoolVar(&searchByID, "by-id", false, "match against record IDs instead of names")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	_ = searchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	files, err := collectDocuments(searchInput)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pipeline := services.NewExtractionPipeline()
	events, results := pipeline.Run(ctx, files)

	var abortMsg string
	for ev := range events {
		if ev.Stage == domain.StageAborted {
			abortMsg = ev.Message
		}
	}
	rs, ok := <-results
	if !ok {
		cmd.Println(abortMsg)
		return nil
	}

	mode := domain.SearchByName
	if searchByID {
		mode = domain.SearchByID
	}

	engine := services.NewQueryEngine(rs)
	matches := engine.Search(ctx, domain.Category(searchCategory), query, mode)

	if searchJSON {
		return outputSearchJSON(cmd, matches)
	}
	return outputSearchTable(cmd, matches)
}

func outputSearchJSON(cmd *cobra.Command, matches []*domain.Record) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, matches []*domain.Record) error {
	if len(matches) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results: %d\n", len(matches))
	cmd.Println()
	for i, rec := range matches {
		cmd.Printf("  [%d] %s (ID %s)\n", i+1, rec.NameText, rec.ID)
		if rec.DescText != "" && rec.DescText != domain.Unknown {
			cmd.Printf("      %s\n", rec.DescText)
		}
		for _, field := range rec.ExtraFields() {
			if field.Value != domain.Unknown {
				cmd.Printf("      %s: %s\n", field.Key, field.Value)
			}
		}
		cmd.Println()
	}
	return nil
}
