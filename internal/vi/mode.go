package vi

// Mode represents the interpreter's current editing mode.
type Mode int

const (
	// ModeNavigation is the modal command mode. Printable keys are
	// interpreted as commands and never reach the text host.
	ModeNavigation Mode = iota

	// ModeInsertion passes keys through to the host for literal
	// insertion. Escape returns to ModeNavigation.
	ModeInsertion
)

// String returns the mode name for logs and the UI mode indicator.
func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "NAV"
	case ModeInsertion:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// CursorStyle is the caret shape the host should display. It is
// derived state: recomputed whenever the mode or the block-cursor
// preference changes, never stored by the host.
type CursorStyle int

const (
	// CursorBar is the thin insertion caret.
	CursorBar CursorStyle = iota

	// CursorBlock is the full-cell caret shown in navigation mode
	// when the block-cursor preference is on.
	CursorBlock
)

// String returns the cursor style name.
func (c CursorStyle) String() string {
	if c == CursorBlock {
		return "block"
	}
	return "bar"
}
