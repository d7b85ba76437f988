package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vix/internal/buffer"
	"github.com/zjrosen/vix/internal/config"
	"github.com/zjrosen/vix/internal/vi"
)

func newTestEditor(text string) *Model {
	buf := buffer.New(text)
	return New(buf, config.EditorConfig{VimMode: true, BlockCursor: true, AutoIndent: true})
}

func keyRunes(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func sendKeys(m *Model, s string) {
	for _, msg := range keyRunes(s) {
		m.Update(msg)
	}
}

func TestTypingInInsertMode(t *testing.T) {
	m := newTestEditor("")

	sendKeys(m, "i")
	require.Equal(t, vi.ModeInsertion, m.Mode())

	sendKeys(m, "hi")
	require.Equal(t, "hi", m.Buffer().String())
}

func TestNavigationKeysDoNotInsert(t *testing.T) {
	m := newTestEditor("abc")

	sendKeys(m, "ll")
	require.Equal(t, "abc", m.Buffer().String())
	require.Equal(t, 2, m.Buffer().Cursor())
}

func TestDeleteLineViaKeys(t *testing.T) {
	m := newTestEditor("one\ntwo\n")

	sendKeys(m, "jdd")
	require.Equal(t, "one\n", m.Buffer().String())
}

func TestEscapeReturnsToNavigation(t *testing.T) {
	m := newTestEditor("")

	sendKeys(m, "i")
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, vi.ModeNavigation, m.Mode())
}

func TestModeChangeEmitsMessage(t *testing.T) {
	m := newTestEditor("")

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	require.NotNil(t, cmd)

	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if mc, ok := msg.(ModeChangedMsg); ok {
			require.True(t, mc.Insert)
			require.Equal(t, vi.ModeInsertion, mc.Mode)
			found = true
		}
	})
	require.True(t, found, "expected a ModeChangedMsg")
}

// collectMsgs runs a command tree and visits every produced message.
func collectMsgs(cmd tea.Cmd, visit func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			collectMsgs(sub, visit)
		}
		return
	}
	if msg != nil {
		visit(msg)
	}
}

func TestBackspaceInInsertMode(t *testing.T) {
	m := newTestEditor("")

	sendKeys(m, "iab")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "a", m.Buffer().String())
}

func TestBackspaceSwallowedInNavigation(t *testing.T) {
	m := newTestEditor("ab")
	m.Buffer().SetCursor(2)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "ab", m.Buffer().String())
}

func TestArrowKeysMoveInNavigation(t *testing.T) {
	m := newTestEditor("abc")

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.Buffer().Cursor())

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 0, m.Buffer().Cursor())
}

func TestEnterAutoIndents(t *testing.T) {
	m := newTestEditor("  foo")
	m.Buffer().SetCursor(5)

	sendKeys(m, "i")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "  foo\n  ", m.Buffer().String())
}

func TestCtrlJPageScrolls(t *testing.T) {
	m := newTestEditor(strings.Repeat("x\n", 100))
	m.SetSize(80, 10)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	require.Equal(t, 18, m.Buffer().Cursor(), "cursor jumps nine two-byte lines down")
}

func TestViewShowsBlockCursor(t *testing.T) {
	m := newTestEditor("abc")
	m.SetSize(10, 2)

	view := m.View()
	require.Contains(t, view, blockOn+"a"+blockOff)
}

func TestViewShowsBarCursorInInsertMode(t *testing.T) {
	m := newTestEditor("abc")
	m.SetSize(10, 2)

	sendKeys(m, "i")
	view := m.View()
	require.Contains(t, view, barOn+"a"+barOff)
}

func TestViewHighlightsSelection(t *testing.T) {
	m := newTestEditor("one\ntwo\n")
	m.SetSize(10, 3)

	sendKeys(m, "N")
	view := m.View()
	require.Contains(t, view, selectionOn)
}

func TestViewScrollsToCursor(t *testing.T) {
	m := newTestEditor(strings.Repeat("line\n", 50))
	m.SetSize(80, 5)

	sendKeys(m, "G")
	view := m.View()
	require.NotContains(t, strings.SplitN(view, "\n", 2)[0], blockOn,
		"first visible row is not the cursor row after jumping to the end")
	require.Equal(t, 5, len(strings.Split(view, "\n")))
}

func TestSetVimModeOffMakesKeysLiteral(t *testing.T) {
	m := newTestEditor("")
	m.SetVimMode(false)

	sendKeys(m, "dd")
	require.Equal(t, "dd", m.Buffer().String())
}
