package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - previous menu item
	ActionDown               // S, Down arrow - next menu item
	ActionConfirm            // Enter, Space - activate menu item
	ActionBack               // Escape - back to the start screen
	ActionPause              // P - freeze/unfreeze the round
	ActionToggleTheme        // D - dark mode on/off
	ActionToggleSound        // M - sound on/off
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionToggleTheme:
		return "ToggleTheme"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
