package tui

import (
	"github.com/ant-admin92/AionDataExtractor/internal/core/domain"
	"github.com/ant-admin92/AionDataExtractor/internal/core/ports/driving"
)

// progressMsg carries one pipeline status message.
type progressMsg driving.Progress

// completedMsg carries the final result set of a successful run.
type completedMsg struct {
	rs *domain.ResultSet
}

// abortedMsg signals the run ended without a result.
type abortedMsg struct{}

// errMsg carries a startup failure (bad directory, no documents).
type errMsg struct {
	err error
}
