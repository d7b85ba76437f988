package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vix/internal/config"
	"github.com/zjrosen/vix/internal/pubsub"
	"github.com/zjrosen/vix/internal/ui/editor"
)

func newTestApp(t *testing.T, content string) (*Model, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := New(config.Defaults(), path, filepath.Join(dir, "vix.yaml"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, path
}

func sendRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewLoadsFile(t *testing.T) {
	m, _ := newTestApp(t, "# Title\n")
	require.Equal(t, "# Title\n", m.editor.Buffer().String())
}

func TestNewWithMissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	m, err := New(config.Defaults(), filepath.Join(dir, "new.md"), "")
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	require.Equal(t, "", m.editor.Buffer().String())
}

func TestSaveWritesBuffer(t *testing.T) {
	m, path := newTestApp(t, "")

	sendRunes(m, "i")
	sendRunes(m, "hello")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
	require.False(t, m.dirty())
}

func TestDirtyTracksUnsavedEdits(t *testing.T) {
	m, _ := newTestApp(t, "abc")
	require.False(t, m.dirty())

	sendRunes(m, "x")
	require.True(t, m.dirty())
}

func TestModeChangedUpdatesBadge(t *testing.T) {
	m, _ := newTestApp(t, "")

	m.Update(editor.ModeChangedMsg{Insert: true})
	require.Contains(t, m.statusBar(), "INSERT")

	m.Update(editor.ModeChangedMsg{Insert: false})
	require.Contains(t, m.statusBar(), "NAV")
}

func TestFileChangeReloadsWhenClean(t *testing.T) {
	m, path := newTestApp(t, "old")
	require.NoError(t, os.WriteFile(path, []byte("new"), 0644))

	m.Update(pubsub.Event[string]{Type: pubsub.FileChanged, Payload: path})
	require.Equal(t, "new", m.editor.Buffer().String())
}

func TestFileChangeDoesNotClobberDirtyBuffer(t *testing.T) {
	m, path := newTestApp(t, "old")
	sendRunes(m, "x") // deletes a character, buffer now dirty
	require.True(t, m.dirty())

	require.NoError(t, os.WriteFile(path, []byte("new"), 0644))
	m.Update(pubsub.Event[string]{Type: pubsub.FileChanged, Payload: path})

	require.NotEqual(t, "new", m.editor.Buffer().String())
	require.True(t, m.statusIsErr)
}

func TestToggleVimModePersists(t *testing.T) {
	m, _ := newTestApp(t, "")
	require.True(t, m.cfg.Editor.VimMode)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	require.False(t, m.cfg.Editor.VimMode)

	// Keys are literal with vim mode off.
	sendRunes(m, "dd")
	require.Equal(t, "dd", m.editor.Buffer().String())

	// The setting landed in the config file.
	data, err := os.ReadFile(m.configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "vim_mode: false")
}

func TestPreviewToggles(t *testing.T) {
	m, _ := newTestApp(t, "# Hello\n")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.True(t, m.showPreview)

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.False(t, m.showPreview)
}

func TestQuitKeyQuits(t *testing.T) {
	m, _ := newTestApp(t, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
