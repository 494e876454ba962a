package core

// Color is a semantic role for a screen cell. The platform maps each role to
// a concrete terminal style through the active theme, so games never pick
// palette values themselves.
type Color uint8

// Color roles used by the game and the menus.
const (
	ColorDefault Color = iota
	ColorTitle
	ColorSubtitle
	ColorText
	ColorTileRevealed
	ColorTileHidden
	ColorTileClicked
	ColorTileLabel
	ColorSuccess
	ColorFailure
	ColorButton
	ColorButtonActive
)
