package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/monkeytrain/internal/core"
	"github.com/vovakirdan/monkeytrain/internal/grid"
)

// MenuItem is a start screen button.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuHelp
	MenuTheme
	menuItemCount
)

// Start screen layout constants
const (
	buttonWidth   = 28
	buttonHeight  = 3
	buttonSpacing = 1
	menuHeight    = 22 // Rows from the title to the footer hint
)

var howToPlay = []string{
	"1. Watch as numbers appear on the grid",
	"2. Memorize all number positions",
	"3. Click tiles in order: 1, 2, 3...",
	"4. Complete sequences to level up!",
}

// StartMenu is the start screen: title, instructions and three buttons that
// can be clicked or chosen with the keyboard.
type StartMenu struct {
	cursor  int
	top     int
	buttons []core.Rect // Screen cells, indexed by MenuItem
}

// NewStartMenu creates a start menu laid out for a screen.
func NewStartMenu(width, height int) *StartMenu {
	m := &StartMenu{}
	m.Layout(width, height)
	return m
}

// Layout positions the buttons for a width×height screen.
func (m *StartMenu) Layout(width, height int) {
	m.top = max(0, (height-FooterHeight-menuHeight)/2)
	x := (width - buttonWidth) / 2
	y := m.top + 11

	m.buttons = m.buttons[:0]
	for i := 0; i < int(menuItemCount); i++ {
		m.buttons = append(m.buttons, core.NewRect(x, y+i*(buttonHeight+buttonSpacing), buttonWidth, buttonHeight))
	}
}

// Cursor returns the highlighted button.
func (m *StartMenu) Cursor() MenuItem {
	return MenuItem(m.cursor)
}

// Move moves the highlight by delta, wrapping around.
func (m *StartMenu) Move(delta int) {
	n := int(menuItemCount)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// ButtonAt returns the button under cell (col, row).
func (m *StartMenu) ButtonAt(col, row int) (MenuItem, bool) {
	idx, ok := grid.Hit(float64(col)+0.5, float64(row)+0.5, m.buttons)
	if !ok {
		return 0, false
	}
	return MenuItem(idx), true
}

// Label returns the caption of a button.
func (m *StartMenu) Label(item MenuItem, dark bool) string {
	switch item {
	case MenuStart:
		return "Start Game"
	case MenuHelp:
		return "Controls & Help"
	case MenuTheme:
		return fmt.Sprintf("Dark Mode: %s", onOff(dark))
	}
	return ""
}

// Render draws the start screen.
func (m *StartMenu) Render(dst *core.Screen, dark bool) {
	dst.Clear()

	dst.DrawTextCentered(m.top+1, "MonkeyTrain", core.ColorTitle)
	dst.DrawTextCentered(m.top+3, "A Memory Training Game", core.ColorSubtitle)
	dst.DrawTextCentered(m.top+5, "How to Play:", core.ColorSuccess)
	for i, line := range howToPlay {
		dst.DrawTextCentered(m.top+6+i, line, core.ColorText)
	}

	for i, r := range m.buttons {
		color := core.ColorButton
		if i == m.cursor {
			color = core.ColorButtonActive
		}
		dst.DrawRect(r, ' ', color)
		dst.DrawBox(r, color)

		label := m.Label(MenuItem(i), dark)
		x := r.X + (r.W-utf8.RuneCountInString(label))/2
		dst.DrawText(x, r.Y+r.H/2, label, color)
	}

	dst.DrawTextCentered(m.top+menuHeight-1, "Press ESC anytime to return to menu", core.ColorSubtitle)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
