package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

func testResults() []domain.MatchResult {
	return []domain.MatchResult{
		{
			Investor: domain.Investor{ID: "vc1", Name: "Sarah Chen", Firm: "Sequoia Capital"},
			Score:    98,
			Reasons:  []string{"Invests in FinTech", "Active at Series A stage"},
			Insight:  "Exceptional fit.",
		},
		{
			Investor: domain.Investor{ID: "vc6", Name: "Jennifer Wu", Firm: "Ribbit Capital"},
			Score:    72,
			Reasons:  []string{"Invests in FinTech"},
			Insight:  "Solid fit.",
		},
		{
			Investor: domain.Investor{ID: "vc9", Name: "Tom Blake", Firm: "Index Ventures"},
			Score:    40,
			Insight:  "Worth a conversation.",
		},
	}
}

func TestNewMatchList(t *testing.T) {
	l := NewMatchList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedResult())
	assert.Nil(t, l.Init())
}

func TestMatchList_View_Empty(t *testing.T) {
	l := NewMatchList(styles.DefaultStyles())

	assert.Contains(t, l.View(), "No matching investors")
}

func TestMatchList_View(t *testing.T) {
	l := NewMatchList(nil)
	l.SetDimensions(100, 30)
	l.SetResults(testResults())

	view := l.View()

	assert.Contains(t, view, "Matches (3)")
	assert.Contains(t, view, "Sarah Chen, Sequoia Capital")
	assert.Contains(t, view, "98%")
	assert.Contains(t, view, "Invests in FinTech (+1 more)")
	assert.Contains(t, view, "Exceptional fit.")
	assert.Contains(t, view, "Tom Blake, Index Ventures")
}

func TestMatchList_View_ScrollsToSelection(t *testing.T) {
	l := NewMatchList(nil)
	l.SetDimensions(100, 7) // room for one match
	l.SetResults(testResults())

	l.SetSelected(2)
	view := l.View()

	assert.Contains(t, view, "Tom Blake")
	assert.NotContains(t, view, "Sarah Chen")
}

func TestMatchList_Navigation(t *testing.T) {
	l := NewMatchList(nil)
	l.SetResults(testResults())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, l.Selected())

	selected := l.SelectedResult()
	require.NotNil(t, selected)
	assert.Equal(t, "vc6", selected.Investor.ID)
}

func TestMatchList_SetSelected_OutOfRange(t *testing.T) {
	l := NewMatchList(nil)
	l.SetResults(testResults())

	l.SetSelected(5)
	assert.Equal(t, 0, l.Selected())

	l.SetSelected(-1)
	assert.Equal(t, 0, l.Selected())
}

func TestMatchList_SetResults_ResetsSelection(t *testing.T) {
	l := NewMatchList(nil)
	l.SetResults(testResults())
	l.SetSelected(2)

	l.SetResults(testResults()[:1])

	assert.Equal(t, 0, l.Selected())
	assert.Equal(t, 1, l.Count())
	assert.Len(t, l.Results(), 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Zürich", truncate("Zürich", 6))
}
