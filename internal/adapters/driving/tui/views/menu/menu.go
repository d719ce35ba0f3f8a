// Package menu provides the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
)

// Item is one entry of the start screen. An item without a target view
// quits the program.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

var defaultItems = []Item{
	{Label: "Find investors", Hint: "rank the catalog against a project", View: messages.ViewMatch},
	{Label: "Help", Hint: "key bindings", View: messages.ViewHelp},
	{Label: "Quit", Quit: true},
}

// View is the start screen.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	founder  string
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the start screen greeting founder.
func NewView(s *styles.Styles, km *keymap.KeyMap, founder string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keys:    km,
		founder: founder,
		items:   defaultItems,
		width:   80,
		height:  24,
	}
}

// Init implements the view lifecycle. The menu has nothing to load.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and opens the chosen item.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.selected = max(v.selected-1, 0)
		case key.Matches(msg, v.keys.Down):
			v.selected = min(v.selected+1, len(v.items)-1)
		case key.Matches(msg, v.keys.Select):
			return v, v.open(v.items[v.selected])
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v *View) open(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the start screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	greeting := "Find the investors who fit your startup"
	if v.founder != "" {
		greeting = fmt.Sprintf("Welcome, %s. %s", v.founder, greeting)
	}

	lines := []string{
		v.styles.Title.Render("pitchmatch"),
		"",
		v.styles.Muted.Render(greeting),
		"",
	}
	for i, item := range v.items {
		label := "  " + v.styles.Normal.Render(item.Label)
		if i == v.selected {
			label = "> " + v.styles.Selected.Render(item.Label)
		}
		if item.Hint != "" {
			label += "  " + v.styles.Muted.Render(item.Hint)
		}
		lines = append(lines, label)
	}
	lines = append(lines, "", v.styles.Help.Render(v.helpLine()))
	return strings.Join(lines, "\n")
}

func (v *View) helpLine() string {
	entries := []struct {
		binding key.Binding
		desc    string
	}{
		{v.keys.Up, "up"},
		{v.keys.Down, "down"},
		{v.keys.Select, "open"},
		{v.keys.Quit, "quit"},
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("[%s] %s", e.binding.Help().Key, e.desc)
	}
	return strings.Join(parts, "  ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the index under the cursor.
func (v *View) Selected() int {
	return v.selected
}
