package vi

// Toolkit-independent key events. The UI layer translates whatever its
// input library delivers (Bubble Tea messages, test fixtures) into an
// Event before handing it to the Engine, so the interpreter never
// imports a UI package.

// Key identifies a non-character key. Character keys use KeyRune with
// the character stored in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is a character key. The character is in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRune:
		return "rune"
	default:
		return "unknown"
	}
}

// Modifier is a bit set of modifier keys held during an event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
)

// Has returns true if m contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event is a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events. Shifted characters
	// arrive pre-shifted ('G', '$'), so Mod carries Shift only as a
	// hint and character classification never depends on it.
	Rune rune

	// Mod contains the active modifier keys.
	Mod Modifier
}

// RuneEvent builds an Event for a plain character key.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// SpecialEvent builds an Event for a non-character key.
func SpecialEvent(key Key, mod Modifier) Event {
	return Event{Key: key, Mod: mod}
}

// IsRune reports whether the event carries a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// isArrowOrPaging reports whether the event is one of the host-owned
// navigation keys that the interpreter always forwards untouched.
func (e Event) isArrowOrPaging() bool {
	switch e.Key {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}

// hasChord reports whether Ctrl or Alt is held. Shift alone is not a
// chord: it is already folded into the rune for character keys.
func (e Event) hasChord() bool {
	return e.Mod.Has(ModCtrl) || e.Mod.Has(ModAlt)
}
