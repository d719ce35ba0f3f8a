// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// MatchList displays ranked investors in a navigable list.
type MatchList struct {
	results  []domain.MatchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMatchList creates a new match list component.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the match list.
func (r *MatchList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *MatchList) Update(msg tea.Msg) (*MatchList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the match list.
func (r *MatchList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No matching investors")
	}

	lines := make([]string, 0, len(r.results)*3+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(r.results)))
	lines = append(lines, header, "")

	// Each match takes three lines: name, reason and insight.
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single match with its first reason and insight.
func (r *MatchList) renderResult(index int, result *domain.MatchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := fmt.Sprintf("%s, %s", result.Investor.Name, result.Investor.Firm)
	maxTitleLen := r.width - 12
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title = truncate(title, maxTitleLen)

	score := fmt.Sprintf("%d%%", result.Score)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, score))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Score(result.Score).Render(score)
	}

	maxDetailLen := r.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}

	reason := ""
	if len(result.Reasons) > 0 {
		reason = result.Reasons[0]
		if extra := len(result.Reasons) - 1; extra > 0 {
			reason = fmt.Sprintf("%s (+%d more)", reason, extra)
		}
	}
	reasonLine := r.styles.Subtitle.Render("    " + truncate(reason, maxDetailLen))
	insightLine := r.styles.Muted.Render("    " + truncate(result.Insight, maxDetailLen))

	return titleLine + "\n" + reasonLine + "\n" + insightLine
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// SetResults updates the match list.
func (r *MatchList) SetResults(results []domain.MatchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *MatchList) Results() []domain.MatchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *MatchList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *MatchList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *MatchList) SelectedResult() *domain.MatchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *MatchList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *MatchList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *MatchList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *MatchList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *MatchList) IsEmpty() bool {
	return len(r.results) == 0
}
