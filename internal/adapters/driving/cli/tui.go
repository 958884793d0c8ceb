package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ant-admin92/AionDataExtractor/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [directory]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Pick a document directory, watch the extraction progress log, then
search the resolved records by category without leaving the terminal.

Controls:
  Enter    - Extract / Search
  Tab      - Cycle category
  Ctrl+R   - Toggle ID/name matching
  Esc      - Back
  Ctrl+C   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Panic recovery so a TUI crash still prints a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	app := tui.NewApp(dir)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
