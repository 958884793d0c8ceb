// Package tui implements the interactive terminal UI: pick a document
// directory, follow the extraction progress log, then search the
// resolved records without leaving the terminal.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driving"
	"github.com/ant-admin92/AionDataExtractor/internal/core/services"
)

// appState tracks which screen the app is on.
type appState int

const (
	statePicking appState = iota
	stateRunning
	stateSearching
)

// App is the bubbletea model for the whole TUI.
type App struct {
	state  appState
	styles *appStyles

	dirInput   textinput.Model
	queryInput textinput.Model
	spin       spinner.Model
	log        viewport.Model

	events  <-chan driving.Progress
	results <-chan *domain.ResultSet
	lines   []string

	query    driving.QueryService
	rs       *domain.ResultSet
	category int
	mode     domain.SearchMode
	matches  []*domain.Record

	width  int
	height int
	err    error
}

// NewApp creates the TUI model. dir pre-fills the directory prompt.
func NewApp(dir string) *App {
	dirInput := textinput.New()
	dirInput.Placeholder = "path to XML documents"
	dirInput.SetValue(dir)
	dirInput.Focus()

	queryInput := textinput.New()
	queryInput.Placeholder = "search query (empty lists everything)"

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		state:      statePicking,
		styles:     defaultStyles(),
		dirInput:   dirInput,
		queryInput: queryInput,
		spin:       spin,
		log:        viewport.New(80, 16),
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.log.Width = msg.Width - 2
		a.log.Height = msg.Height - 6
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case progressMsg:
		a.lines = append(a.lines, msg.Message)
		a.log.SetContent(strings.Join(a.lines, "\n"))
		a.log.GotoBottom()
		return a, listen(a.events, a.results)

	case completedMsg:
		a.rs = msg.rs
		a.query = services.NewQueryEngine(msg.rs)
		a.state = stateSearching
		a.queryInput.Focus()
		return a, textinput.Blink

	case abortedMsg:
		// No result; stay on the log so the warning remains visible.
		a.state = statePicking
		a.dirInput.Focus()
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	return a.updateInputs(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case statePicking:
		if msg.String() == "enter" {
			return a, a.startExtraction()
		}
	case stateSearching:
		switch msg.String() {
		case "enter":
			a.runSearch()
			return a, nil
		case "tab":
			a.category = (a.category + 1) % len(domain.Categories)
			a.runSearch()
			return a, nil
		case "ctrl+r":
			if a.mode == domain.SearchByName {
				a.mode = domain.SearchByID
			} else {
				a.mode = domain.SearchByName
			}
			a.runSearch()
			return a, nil
		case "esc":
			a.queryInput.SetValue("")
			a.matches = nil
			return a, nil
		}
	}
	return a.updateInputs(msg)
}

func (a *App) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch a.state {
	case statePicking:
		a.dirInput, cmd = a.dirInput.Update(msg)
		cmds = append(cmds, cmd)
	case stateSearching:
		a.queryInput, cmd = a.queryInput.Update(msg)
		cmds = append(cmds, cmd)
	case stateRunning:
		a.log, cmd = a.log.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// startExtraction collects the documents and kicks off a pipeline run.
func (a *App) startExtraction() tea.Cmd {
	files, err := collectXML(a.dirInput.Value())
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}

	a.err = nil
	a.lines = nil
	a.state = stateRunning

	pipeline := services.NewExtractionPipeline()
	a.events, a.results = pipeline.Run(context.Background(), files)

	return tea.Batch(a.spin.Tick, listen(a.events, a.results))
}

func (a *App) runSearch() {
	if a.query == nil {
		return
	}
	cat := domain.Categories[a.category]
	a.matches = a.query.Search(context.Background(), cat, a.queryInput.Value(), a.mode)
}

// listen waits for the next pipeline event. Progress messages arrive
// first; once the event channel closes either the result or an abort
// follows, never both.
func listen(events <-chan driving.Progress, results <-chan *domain.ResultSet) tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-events; ok {
			return progressMsg(ev)
		}
		if rs, ok := <-results; ok {
			return completedMsg{rs}
		}
		return abortedMsg{}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Aion Data Extractor"))
	b.WriteString("\n\n")

	switch a.state {
	case statePicking:
		b.WriteString(a.styles.Label.Render("Document directory") + "\n")
		b.WriteString(a.dirInput.View() + "\n")
		if a.err != nil {
			b.WriteString(a.styles.Warning.Render(a.err.Error()) + "\n")
		}
		if len(a.lines) > 0 {
			b.WriteString("\n" + a.log.View() + "\n")
		}
		b.WriteString("\n" + a.styles.Status.Render("enter: extract  ctrl+c: quit"))

	case stateRunning:
		b.WriteString(a.spin.View() + " extracting...\n\n")
		b.WriteString(a.log.View() + "\n")
		b.WriteString(a.styles.Status.Render("ctrl+c: quit"))

	case stateSearching:
		cat := domain.Categories[a.category]
		b.WriteString(a.styles.Label.Render(fmt.Sprintf("Search %s (%s)", cat, a.mode)) + "\n")
		b.WriteString(a.queryInput.View() + "\n\n")
		b.WriteString(a.renderMatches())
		b.WriteString("\n" + a.styles.Status.Render(
			"enter: search  tab: category  ctrl+r: id/name  esc: clear  ctrl+c: quit"))
	}

	return b.String()
}

func (a *App) renderMatches() string {
	if a.matches == nil {
		return a.styles.Muted.Render("Type a query and press enter.")
	}
	if len(a.matches) == 0 {
		return a.styles.Muted.Render("No results found.")
	}

	limit := a.height - 10
	if limit < 1 {
		limit = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d results\n\n", len(a.matches))
	for i, rec := range a.matches {
		if i >= limit {
			b.WriteString(a.styles.Muted.Render(fmt.Sprintf("... and %d more", len(a.matches)-limit)))
			break
		}
		b.WriteString(a.styles.Selected.Render(rec.NameText))
		fmt.Fprintf(&b, "  %s\n", a.styles.Muted.Render("ID "+rec.ID))
	}
	return b.String()
}

// collectXML lists the *.xml files under dir, sorted by name.
func collectXML(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("enter a directory path")
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no XML documents in %s", dir)
	}
	sort.Strings(matches)
	return matches, nil
}
