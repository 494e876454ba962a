package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monkeytrain/internal/config"
)

// helpTierRows is the number of levels listed in the progression table.
const helpTierRows = 8

var proTips = []string{
	"• Focus on spatial patterns, not just numbers",
	"• Group numbers mentally (corners, edges, center)",
	"• Take short breaks to maintain focus",
}

// HelpScreen shows the controls and the difficulty progression.
type HelpScreen struct {
	table table.Model
	help  help.Model
	keys  KeyMap
}

// NewHelpScreen creates the help screen for a difficulty policy.
func NewHelpScreen(policy *config.Policy, keys KeyMap) *HelpScreen {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Tier", Width: 14},
		{Title: "Grid", Width: 6},
		{Title: "Memorize", Width: 9},
	}

	tiers := policy.Tiers(helpTierRows)
	rows := make([]table.Row, len(tiers))
	for i, tier := range tiers {
		rows[i] = table.Row{
			fmt.Sprintf("%d", tier.Level+1),
			tier.Name,
			fmt.Sprintf("%d×%d", tier.GridSize, tier.GridSize),
			fmt.Sprintf("%.1fs", tier.Reveal),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	h := help.New()
	h.ShowAll = true

	return &HelpScreen{table: t, help: h, keys: keys}
}

// View renders the help screen centered in width×height.
func (s *HelpScreen) View(theme Theme, width, height int) string {
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Palette.Subtitle).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	s.table.SetStyles(st)
	s.help.Width = width

	var b strings.Builder
	b.WriteString(theme.Title.Render("Controls & Help"))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Keyboard Controls:"))
	b.WriteString("\n")
	b.WriteString(s.help.View(s.keys))
	b.WriteString("\n")
	b.WriteString(theme.Text.Render("Click the tiles with the mouse."))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Difficulty Progression:"))
	b.WriteString("\n")
	b.WriteString(s.table.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Pro Tips:"))
	b.WriteString("\n")
	for _, tip := range proTips {
		b.WriteString(theme.Text.Render(tip))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Press ESC or Enter to return to the menu"))

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(theme.Palette.Background))
}
