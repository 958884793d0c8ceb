package cli

import (
	"context"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ant-admin92/AionDataExtractor/internal/adapters/driven/storage/sqlite"
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driven"
	"github.com/ant-admin92/AionDataExtractor/internal/core/services"
	"github.com/ant-admin92/AionDataExtractor/internal/report"
)

var (
	extractOut string
	extractDB  string
)

var extractCmd = &cobra.Command{
	Use:   "extract [paths...]",
	Short: "Run the extraction pipeline and write reports",
	Long: `Classifies the given XML documents, builds the string table,
resolves item, NPC, quest and other entity records against it, buckets
items into the taxonomy and writes one report file per category plus
the item subcategory breakdown.

The batch must contain at least one string document and at least one
item document; otherwise the run aborts with a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "report output directory (default from config, \"results\")")
	extractCmd.Flags().StringVar(&extractDB, "db", "", "also export the result set to a SQLite file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outDir := cfg.OutputDir
	if extractOut != "" {
		outDir = extractOut
	}
	dbPath := cfg.Database
	if extractDB != "" {
		dbPath = extractDB
	}

	files, err := collectDocuments(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pipeline := services.NewExtractionPipeline()
	events, results := pipeline.Run(ctx, files)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("classifying"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionClearOnFinish(),
	)
	for ev := range events {
		if ev.Stage == domain.StageClassifying && ev.Document != "" {
			_ = bar.Add(1)
		}
		if ev.Stage == domain.StageAborted {
			cmd.Println(ev.Message)
		}
	}
	_ = bar.Finish()

	rs, ok := <-results
	if !ok {
		// Aborted runs deliver no result and no error; the warning
		// above is the only signal.
		return nil
	}

	sinks := []driven.ReportSink{report.NewWriter(outDir)}
	if dbPath != "" {
		sinks = append(sinks, sqlite.NewExporter(dbPath))
	}
	for _, sink := range sinks {
		if err := sink.Write(ctx, rs); err != nil {
			return err
		}
	}

	cmd.Printf("Extraction complete (run %s)\n", rs.RunID)
	for _, cat := range domain.Categories {
		if n := rs.Len(cat); n > 0 {
			cmd.Printf("  %-8s %d\n", cat, n)
		}
	}
	cmd.Printf("Reports written to %s\n", outDir)
	if dbPath != "" {
		cmd.Printf("SQLite export written to %s\n", dbPath)
	}
	return nil
}
