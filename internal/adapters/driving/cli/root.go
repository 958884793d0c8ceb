// Package cli implements the cobra command-line interface for the
// extractor.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ant-admin92/AionDataExtractor/internal/adapters/driven/config/file"
	"github.com/ant-admin92/AionDataExtractor/internal/logger"
)

var (
	version = "dev"

	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "aiondata",
	Short: "Extract and search Aion client data",
	Long: `aiondata ingests a batch of Aion client XML documents (string
tables, item, NPC and quest definitions), resolves symbolic string
codes to localized text, classifies items into a two-level taxonomy and
writes text reports. The resolved data can be searched ad hoc from the
command line or the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger.SetVerbose(verboseFlag || cfg.Verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.aiondata)")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// loadConfig reads the TOML configuration, falling back to defaults
// when no file exists.
func loadConfig() (*file.Config, error) {
	store, err := file.NewStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// collectDocuments expands the path arguments into an ordered XML file
// list. Directory arguments contribute their *.xml entries sorted by
// name; file arguments are taken as-is.
func collectDocuments(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.xml"))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", arg, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no XML documents found")
	}
	return files, nil
}
