// Package vi implements a modal vi-style editing interpreter. The
// Engine consumes toolkit-independent key events, tracks the editing
// mode and any pending two-key sequence, and applies the resulting
// commands to a TextHost. It owns no text itself.
package vi

import (
	"github.com/zjrosen/vix/internal/log"
)

// Result tells the host what to do with the key after the engine has
// seen it.
type Result int

const (
	// Handled means the engine consumed the key. The host must not
	// process it further.
	Handled Result = iota

	// PassThrough means the key belongs to the host: literal text in
	// insertion mode, native cursor keys, shortcut chords.
	PassThrough
)

// String returns the result name.
func (r Result) String() string {
	if r == Handled {
		return "handled"
	}
	return "passthrough"
}

// Config configures a new Engine.
type Config struct {
	// Enabled turns the interpreter on. When false every key is
	// passed through except the auto-indent Enter.
	Enabled bool

	// BlockCursor shows a block caret in navigation mode.
	BlockCursor bool

	// AutoIndent makes Enter copy the current line's leading
	// whitespace onto the new line. On by default in NewEngine.
	AutoIndent bool

	// OnModeChange is invoked after every mode transition, and once
	// on SetEnabled even when the mode did not change (so hosts can
	// resynchronize their indicators).
	OnModeChange func(mode, previous Mode)

	// OnCursorStyle is invoked whenever the derived cursor style may
	// have changed.
	OnCursorStyle func(style CursorStyle)
}

// Engine is the mode controller. It is not safe for concurrent use;
// drive it from a single event loop.
type Engine struct {
	mode        Mode
	pending     pendingState
	register    string
	enabled     bool
	blockCursor bool
	autoIndent  bool

	onModeChange  func(mode, previous Mode)
	onCursorStyle func(style CursorStyle)
}

// NewEngine creates an engine in navigation mode.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		mode:          ModeNavigation,
		enabled:       cfg.Enabled,
		blockCursor:   cfg.BlockCursor,
		autoIndent:    cfg.AutoIndent,
		onModeChange:  cfg.OnModeChange,
		onCursorStyle: cfg.OnCursorStyle,
	}
}

// Mode returns the current editing mode.
func (e *Engine) Mode() Mode { return e.mode }

// Enabled reports whether the interpreter is active.
func (e *Engine) Enabled() bool { return e.enabled }

// Register returns the current contents of the yank register.
func (e *Engine) Register() string { return e.register }

// CursorStyle derives the caret shape from the current state. The
// block caret appears only in navigation mode with the preference on.
func (e *Engine) CursorStyle() CursorStyle {
	if e.enabled && e.blockCursor && e.mode == ModeNavigation {
		return CursorBlock
	}
	return CursorBar
}

// SetEnabled turns the interpreter on or off. Enabling always lands
// in navigation mode, and the mode observer fires even when the mode
// did not change so the host can resynchronize.
func (e *Engine) SetEnabled(on bool) {
	e.enabled = on
	e.pending.clear()
	previous := e.mode
	e.mode = ModeNavigation
	log.Debug(log.CatVi, "interpreter toggled", "enabled", on)
	if e.onModeChange != nil {
		e.onModeChange(e.mode, previous)
	}
	e.pushCursorStyle()
}

// SetBlockCursor updates the block-cursor preference.
func (e *Engine) SetBlockCursor(on bool) {
	e.blockCursor = on
	e.pushCursorStyle()
}

// SetAutoIndent toggles the Enter auto-indent behavior.
func (e *Engine) SetAutoIndent(on bool) {
	e.autoIndent = on
}

// HandleKey interprets one key event against the host. The host is
// borrowed only for the duration of the call.
func (e *Engine) HandleKey(ev Event, h TextHost) Result {
	// Enter is intercepted ahead of everything else, in both modes,
	// so indentation survives even with the interpreter disabled.
	if ev.Key == KeyEnter && !ev.hasChord() {
		if e.autoIndent {
			autoIndentNewline(h)
			return Handled
		}
		return PassThrough
	}

	if !e.enabled {
		return PassThrough
	}

	// Page scrolling bypasses the mode split: the chord carries two
	// modifiers, so it can never collide with a command character.
	if ev.Key == KeyRune && ev.Mod.Has(ModCtrl) && ev.Mod.Has(ModShift) {
		switch ev.Rune {
		case 'j', 'J':
			h.ScrollPage(true)
			return Handled
		case 'k', 'K':
			h.ScrollPage(false)
			return Handled
		}
	}

	if e.mode == ModeInsertion {
		return e.handleInsertion(ev)
	}
	return e.handleNavigation(ev, h)
}

// handleInsertion only watches for Escape; everything else is literal
// input for the host.
func (e *Engine) handleInsertion(ev Event) Result {
	if ev.Key == KeyEscape && !ev.hasChord() {
		e.pending.clear()
		e.setMode(ModeNavigation)
		return Handled
	}
	e.pending.clear()
	return PassThrough
}

func (e *Engine) handleNavigation(ev Event, h TextHost) Result {
	// Native cursor keys stay with the host.
	if ev.isArrowOrPaging() {
		e.pending.clear()
		return PassThrough
	}

	// Modifier chords are application shortcuts, not commands.
	if ev.hasChord() {
		e.pending.clear()
		return PassThrough
	}

	switch ev.Key {
	case KeyEscape:
		// Already in navigation mode; absorb it so the host does not
		// react, and drop any half-typed sequence.
		e.pending.clear()
		h.ClearSelection()
		return Handled
	case KeyTab:
		e.pending.clear()
		return PassThrough
	case KeyBackspace, KeyDelete:
		// Swallowed: destructive host defaults are disabled in
		// navigation mode.
		e.pending.clear()
		return Handled
	case KeyRune:
		return e.handleNavigationRune(ev.Rune, h)
	}

	e.pending.clear()
	return PassThrough
}

func (e *Engine) handleNavigationRune(r rune, h TextHost) Result {
	switch r {
	case 'g':
		if e.pending.takeG() {
			e.apply(motionCmd(MotionDocStart), h)
		} else {
			e.pending.setG()
		}
		return Handled

	case 'd':
		if _, _, ok := h.Selection(); ok {
			e.pending.clear()
			e.apply(operatorCmd(OpDeleteSelection), h)
		} else if e.pending.takeOp(OpDeleteLine) {
			e.apply(operatorCmd(OpDeleteLine), h)
		} else {
			e.pending.setOp(OpDeleteLine)
		}
		return Handled

	case 'y':
		if e.pending.takeOp(OpYankLine) {
			e.apply(operatorCmd(OpYankLine), h)
		} else {
			e.pending.setOp(OpYankLine)
		}
		return Handled

	case 'x':
		e.pending.clear()
		if _, _, ok := h.Selection(); ok {
			e.apply(operatorCmd(OpDeleteSelection), h)
		} else {
			e.apply(miscCmd(MiscDeleteChar), h)
		}
		return Handled
	}

	// Any other character abandons a pending sequence before being
	// interpreted on its own.
	e.pending.clear()

	if cmd, ok := classify(r); ok {
		e.apply(cmd, h)
		return Handled
	}

	// Unbound printable characters are swallowed so stray input can
	// never leak into the document while navigating. The selection is
	// dropped like any other non-extending key would drop it.
	h.ClearSelection()
	log.Debug(log.CatVi, "swallowed unbound key", "rune", string(r))
	return Handled
}

// apply dispatches a classified command. The switch is exhaustive
// over Kind and each payload enum.
func (e *Engine) apply(cmd Command, h TextHost) {
	switch cmd.Kind {
	case KindMotion:
		move(h, cmd.Motion)

	case KindOperator:
		switch cmd.Operator {
		case OpDeleteLine:
			e.register = deleteLine(h)
		case OpYankLine:
			e.register = yankLine(h)
		case OpDeleteSelection:
			if captured := deleteSelection(h); captured != "" {
				e.register = captured
			}
		}

	case KindEnterInsert:
		switch cmd.Insert {
		case InsertHere:
			// Cursor stays put.
		case InsertAfter:
			move(h, MotionRight)
		case InsertLineBelow:
			openLineBelow(h)
		case InsertLineAbove:
			openLineAbove(h)
		}
		e.setMode(ModeInsertion)

	case KindMisc:
		switch cmd.Misc {
		case MiscDeleteChar:
			deleteCharForward(h)
		case MiscPaste:
			pasteAfter(h, e.register)
		case MiscUndo:
			h.Undo()
		case MiscPageDown:
			h.ScrollPage(true)
		case MiscPageUp:
			h.ScrollPage(false)
		case MiscExtendLineDown:
			extendLineDown(h)
		case MiscExtendLineUp:
			extendLineUp(h)
		}
	}
}

func (e *Engine) setMode(m Mode) {
	if m == e.mode {
		return
	}
	previous := e.mode
	e.mode = m
	log.Debug(log.CatVi, "mode changed", "from", previous, "to", m)
	if e.onModeChange != nil {
		e.onModeChange(m, previous)
	}
	e.pushCursorStyle()
}

func (e *Engine) pushCursorStyle() {
	if e.onCursorStyle != nil {
		e.onCursorStyle(e.CursorStyle())
	}
}
