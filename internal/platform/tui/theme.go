package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monkeytrain/internal/core"
)

// Palette holds the raw colors of a theme.
type Palette struct {
	Background   lipgloss.Color
	TileRevealed lipgloss.Color
	TileHidden   lipgloss.Color
	TileClicked  lipgloss.Color
	Text         lipgloss.Color
	Subtitle     lipgloss.Color
	Success      lipgloss.Color
	Failure      lipgloss.Color
	Button       lipgloss.Color
	ButtonActive lipgloss.Color
}

// LightPalette is the default look.
var LightPalette = Palette{
	Background:   "#282d3c",
	TileRevealed: "#465064",
	TileHidden:   "#6e788c",
	TileClicked:  "#5a6478",
	Text:         "#ffffff",
	Subtitle:     "#c8c8c8",
	Success:      "#64c864",
	Failure:      "#c86464",
	Button:       "#3c465a",
	ButtonActive: "#505a6e",
}

// DarkPalette is the darker variant toggled with D.
var DarkPalette = Palette{
	Background:   "#0f0f14",
	TileRevealed: "#282d3c",
	TileHidden:   "#3c4150",
	TileClicked:  "#323746",
	Text:         "#f0f0fa",
	Subtitle:     "#b4b4be",
	Success:      "#50b450",
	Failure:      "#b45050",
	Button:       "#232837",
	ButtonActive: "#323746",
}

// Theme maps color roles to terminal styles.
type Theme struct {
	Palette Palette
	styles  map[core.Color]lipgloss.Style

	// Styles for the screens rendered with lipgloss directly.
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Subtitle lipgloss.Style
}

// NewTheme builds the styles for a palette.
func NewTheme(p Palette) Theme {
	base := lipgloss.NewStyle().Background(p.Background)
	fg := func(c lipgloss.Color) lipgloss.Style { return base.Foreground(c) }
	tile := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Background(c).Foreground(p.Text) }

	return Theme{
		Palette: p,
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:      fg(p.Text),
			core.ColorTitle:        fg(p.Text).Bold(true),
			core.ColorSubtitle:     fg(p.Subtitle),
			core.ColorText:         fg(p.Text),
			core.ColorTileRevealed: tile(p.TileRevealed),
			core.ColorTileHidden:   tile(p.TileHidden),
			core.ColorTileClicked:  tile(p.TileClicked),
			core.ColorTileLabel:    tile(p.TileRevealed).Bold(true),
			core.ColorSuccess:      fg(p.Success).Bold(true),
			core.ColorFailure:      fg(p.Failure).Bold(true),
			core.ColorButton:       lipgloss.NewStyle().Background(p.Button).Foreground(p.Text),
			core.ColorButtonActive: lipgloss.NewStyle().Background(p.ButtonActive).Foreground(p.Text).Bold(true),
		},
		Title:    fg(p.Text).Bold(true),
		Heading:  fg(p.Success).Bold(true),
		Text:     fg(p.Text),
		Subtitle: fg(p.Subtitle),
	}
}

// ThemeFor returns the light or dark theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return NewTheme(DarkPalette)
	}
	return NewTheme(LightPalette)
}

// Style returns the style for a color role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}
