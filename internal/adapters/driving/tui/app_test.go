package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driving"
)

func TestApp_StartsOnPicker(t *testing.T) {
	app := NewApp("/tmp/docs")

	assert.Equal(t, statePicking, app.state)
	assert.Equal(t, "/tmp/docs", app.dirInput.Value())
	assert.Contains(t, app.View(), "Document directory")
}

func TestApp_ProgressAppendsToLog(t *testing.T) {
	app := NewApp("")
	app.state = stateRunning

	model, cmd := app.Update(progressMsg(driving.Progress{
		Stage:   domain.StageClassifying,
		Message: "Classifying 3 documents...",
	}))
	app = model.(*App)

	require.Len(t, app.lines, 1)
	assert.Equal(t, "Classifying 3 documents...", app.lines[0])
	assert.NotNil(t, cmd, "keeps listening for the next event")
}

func TestApp_CompletionEntersSearch(t *testing.T) {
	rs := domain.NewResultSet("run-1")
	rs.Put(&domain.Record{Kind: domain.KindItem, ID: "700000", NameText: "Iron Sword", Item: &domain.ItemDetails{}})

	app := NewApp("")
	app.state = stateRunning

	model, _ := app.Update(completedMsg{rs})
	app = model.(*App)

	assert.Equal(t, stateSearching, app.state)
	require.NotNil(t, app.query)
	assert.Contains(t, app.View(), "Search items")
}

func TestApp_AbortReturnsToPicker(t *testing.T) {
	app := NewApp("")
	app.state = stateRunning
	app.lines = []string{"warning: no string documents in batch"}

	model, _ := app.Update(abortedMsg{})
	app = model.(*App)

	assert.Equal(t, statePicking, app.state)
	// The log stays visible so the warning is not lost.
	assert.NotEmpty(t, app.lines)
}

func TestApp_TabCyclesCategories(t *testing.T) {
	rs := domain.NewResultSet("run-1")
	app := NewApp("")
	model, _ := app.Update(completedMsg{rs})
	app = model.(*App)

	for i := 1; i <= len(domain.Categories); i++ {
		model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
		app = model.(*App)
		assert.Equal(t, i%len(domain.Categories), app.category)
	}
}

func TestApp_CtrlRTogglesSearchMode(t *testing.T) {
	rs := domain.NewResultSet("run-1")
	app := NewApp("")
	model, _ := app.Update(completedMsg{rs})
	app = model.(*App)

	initial := app.mode
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	app = model.(*App)
	assert.NotEqual(t, initial, app.mode)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	app = model.(*App)
	assert.Equal(t, initial, app.mode)
}
