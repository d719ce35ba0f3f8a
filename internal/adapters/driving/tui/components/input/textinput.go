// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
)

// PreferenceInput wraps a bubbles textinput for the founder's description
// of their ideal investor.
type PreferenceInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewPreferenceInput creates a new preference input component.
func NewPreferenceInput(s *styles.Styles) *PreferenceInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Describe your ideal investor..."
	ti.Focus()
	ti.CharLimit = 280
	ti.Width = 50

	return &PreferenceInput{
		textinput: ti,
		styles:    s,
		label:     "Looking for: ",
		width:     50,
	}
}

// Init initialises the input.
func (p *PreferenceInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PreferenceInput) Update(msg tea.Msg) (*PreferenceInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the input.
func (p *PreferenceInput) View() string {
	label := p.styles.Title.Render(p.label)
	field := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (p *PreferenceInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PreferenceInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PreferenceInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PreferenceInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PreferenceInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the width of the input.
func (p *PreferenceInput) SetWidth(width int) {
	p.width = width
	// Account for label and padding
	inputWidth := width - lipgloss.Width(p.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PreferenceInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PreferenceInput) Reset() {
	p.textinput.Reset()
}
