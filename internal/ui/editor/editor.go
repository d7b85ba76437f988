// Package editor provides the Bubble Tea text editing component. It
// owns the document buffer, translates terminal key messages into
// interpreter events, and renders the buffer with cursor and
// selection.
package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vix/internal/buffer"
	"github.com/zjrosen/vix/internal/config"
	"github.com/zjrosen/vix/internal/log"
	"github.com/zjrosen/vix/internal/vi"
)

// ModeChangedMsg is emitted whenever the interpreter changes mode, so
// enclosing components can update their indicators without polling.
type ModeChangedMsg struct {
	Mode     vi.Mode
	Previous vi.Mode
	Insert   bool
}

// CursorStyleMsg is emitted when the derived cursor style changes.
type CursorStyleMsg struct {
	Style vi.CursorStyle
}

// Model is the editing component.
type Model struct {
	buf    *buffer.Buffer
	engine *vi.Engine

	width  int
	height int
	scroll int // first visible line

	queued []tea.Msg
}

// New creates an editor over buf configured from cfg.
func New(buf *buffer.Buffer, cfg config.EditorConfig) *Model {
	m := &Model{buf: buf, width: 80, height: 24}
	m.engine = vi.NewEngine(vi.Config{
		Enabled:     cfg.VimMode,
		BlockCursor: cfg.BlockCursor,
		AutoIndent:  cfg.AutoIndent,
		OnModeChange: func(mode, previous vi.Mode) {
			m.queued = append(m.queued, ModeChangedMsg{
				Mode:     mode,
				Previous: previous,
				Insert:   mode == vi.ModeInsertion,
			})
		},
		OnCursorStyle: func(style vi.CursorStyle) {
			m.queued = append(m.queued, CursorStyleMsg{Style: style})
		},
	})
	return m
}

// Buffer returns the underlying document buffer.
func (m *Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the document text.
func (m *Model) Value() string { return m.buf.String() }

// SetValue replaces the document text and resets history.
func (m *Model) SetValue(text string) {
	m.buf.SetText(text)
	m.scroll = 0
	m.ensureCursorVisible()
}

// Engine returns the vi interpreter.
func (m *Model) Engine() *vi.Engine { return m.engine }

// Mode returns the interpreter's current mode.
func (m *Model) Mode() vi.Mode { return m.engine.Mode() }

// SetSize updates the visible area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.height < 1 {
		m.height = 1
	}
	m.ensureCursorVisible()
}

// SetVimMode toggles the interpreter at runtime.
func (m *Model) SetVimMode(on bool) {
	m.engine.SetEnabled(on)
}

// Update handles a message. Key messages run through the interpreter
// first; pass-through keys fall back to literal editing.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	// Page jumps cover one screen of lines.
	m.buf.SetPageLines(maxInt(1, m.height-1))

	ev := keyToEvent(keyMsg)
	result := m.engine.HandleKey(ev, m.buf)
	if result == vi.PassThrough {
		m.applyPassThrough(keyMsg, ev)
	}
	m.ensureCursorVisible()
	return m.flush()
}

// applyPassThrough performs the host-side behavior for keys the
// interpreter declined.
func (m *Model) applyPassThrough(msg tea.KeyMsg, ev vi.Event) {
	// Modifier chords belong to the application layer.
	if ev.Mod.Has(vi.ModCtrl) || ev.Mod.Has(vi.ModAlt) {
		return
	}

	switch ev.Key {
	case vi.KeyLeft:
		vi.Move(m.buf, vi.MotionLeft)
	case vi.KeyRight:
		vi.Move(m.buf, vi.MotionRight)
	case vi.KeyUp:
		vi.Move(m.buf, vi.MotionUp)
	case vi.KeyDown:
		vi.Move(m.buf, vi.MotionDown)
	case vi.KeyHome:
		vi.Move(m.buf, vi.MotionLineStart)
	case vi.KeyEnd:
		vi.Move(m.buf, vi.MotionLineEnd)
	case vi.KeyPageUp:
		m.buf.ScrollPage(false)
	case vi.KeyPageDown:
		m.buf.ScrollPage(true)
	}

	// Literal editing only happens outside navigation mode.
	if m.engine.Enabled() && m.engine.Mode() == vi.ModeNavigation {
		return
	}

	switch {
	case msg.Type == tea.KeyRunes:
		m.buf.InsertString(string(msg.Runes))
	case msg.Type == tea.KeySpace:
		m.buf.InsertString(" ")
	case msg.Type == tea.KeyTab:
		m.buf.InsertString("\t")
	case msg.Type == tea.KeyEnter:
		m.buf.InsertString("\n")
	case msg.Type == tea.KeyBackspace:
		m.buf.DeleteBackward()
	case msg.Type == tea.KeyDelete:
		m.buf.DeleteForward()
	}
}

// flush drains queued notification messages into a command.
func (m *Model) flush() tea.Cmd {
	if len(m.queued) == 0 {
		return nil
	}
	msgs := m.queued
	m.queued = nil

	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		msg := msg
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Batch(cmds...)
}

// keyToEvent converts a Bubble Tea key message into an interpreter
// event.
func keyToEvent(msg tea.KeyMsg) vi.Event {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			ev := vi.RuneEvent(msg.Runes[0])
			if msg.Alt {
				ev.Mod |= vi.ModAlt
			}
			return ev
		}
		// Multi-rune input (bracketed paste) is literal text.
		return vi.Event{Key: vi.KeyNone}
	case tea.KeySpace:
		return vi.RuneEvent(' ')
	case tea.KeyEscape:
		return vi.SpecialEvent(vi.KeyEscape, vi.ModNone)
	case tea.KeyEnter:
		return vi.SpecialEvent(vi.KeyEnter, vi.ModNone)
	case tea.KeyTab:
		return vi.SpecialEvent(vi.KeyTab, vi.ModNone)
	case tea.KeyBackspace:
		return vi.SpecialEvent(vi.KeyBackspace, vi.ModNone)
	case tea.KeyDelete:
		return vi.SpecialEvent(vi.KeyDelete, vi.ModNone)
	case tea.KeyHome:
		return vi.SpecialEvent(vi.KeyHome, vi.ModNone)
	case tea.KeyEnd:
		return vi.SpecialEvent(vi.KeyEnd, vi.ModNone)
	case tea.KeyPgUp:
		return vi.SpecialEvent(vi.KeyPageUp, vi.ModNone)
	case tea.KeyPgDown:
		return vi.SpecialEvent(vi.KeyPageDown, vi.ModNone)
	case tea.KeyUp:
		return vi.SpecialEvent(vi.KeyUp, vi.ModNone)
	case tea.KeyDown:
		return vi.SpecialEvent(vi.KeyDown, vi.ModNone)
	case tea.KeyLeft:
		return vi.SpecialEvent(vi.KeyLeft, vi.ModNone)
	case tea.KeyRight:
		return vi.SpecialEvent(vi.KeyRight, vi.ModNone)
	case tea.KeyCtrlJ:
		// Terminals collapse ctrl+shift+j into ctrl+j, so the page
		// scroll chord arrives without its shift bit.
		return vi.Event{Key: vi.KeyRune, Rune: 'j', Mod: vi.ModCtrl | vi.ModShift}
	case tea.KeyCtrlK:
		return vi.Event{Key: vi.KeyRune, Rune: 'k', Mod: vi.ModCtrl | vi.ModShift}
	default:
		// Remaining control sequences surface as chorded events so
		// the interpreter passes them to the application layer.
		log.Debug(log.CatUI, "unmapped key", "key", msg.String())
		return vi.Event{Key: vi.KeyNone, Mod: vi.ModCtrl}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
