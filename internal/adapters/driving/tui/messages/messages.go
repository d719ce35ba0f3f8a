// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// MatchCompleted carries ranked investors back to the model.
type MatchCompleted struct {
	Results []domain.MatchResult
	Err     error
}

// ProjectsLoaded carries the projects a search can target.
type ProjectsLoaded struct {
	Projects []domain.Project
	Err      error
}

// InvestorSelected is sent when a match result is opened.
type InvestorSelected struct {
	Result  domain.MatchResult
	Project domain.Project
}

// MessageRefined carries a refined draft.
type MessageRefined struct {
	Body string
	Err  error
}

// MessageSent signals the outreach message went out.
type MessageSent struct {
	Message *domain.OutreachMessage
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewMatch is the preference input and ranked results view.
	ViewMatch
	// ViewMessage is the generated message preview.
	ViewMessage
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewMatch:
		return "match"
	case ViewMessage:
		return "message"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
