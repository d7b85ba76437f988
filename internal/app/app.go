// Package app wires the editor, markdown preview, file watcher and
// status bar into the top-level Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/vix/internal/buffer"
	"github.com/zjrosen/vix/internal/config"
	"github.com/zjrosen/vix/internal/keys"
	"github.com/zjrosen/vix/internal/log"
	"github.com/zjrosen/vix/internal/pubsub"
	"github.com/zjrosen/vix/internal/ui/editor"
	"github.com/zjrosen/vix/internal/ui/markdown"
	"github.com/zjrosen/vix/internal/ui/styles"
	"github.com/zjrosen/vix/internal/watcher"
)

// Model is the top-level application model.
type Model struct {
	editor  *editor.Model
	preview viewport.Model
	keys    keys.KeyMap

	cfg        config.Config
	filePath   string
	configPath string

	width  int
	height int

	showPreview bool
	insertMode  bool
	savedText   string
	statusMsg   string
	statusIsErr bool

	watcherHandle   *watcher.Watcher
	fileBroker      *pubsub.Broker[string]
	watcherCtx      context.Context
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[string]
}

// New creates the application model, loading filePath into the
// editing buffer. A missing file starts an empty document.
func New(cfg config.Config, filePath, configPath string) (*Model, error) {
	text := ""
	if data, err := os.ReadFile(filePath); err == nil { //nolint:gosec // G304: user-supplied document path
		text = string(data)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	buf := buffer.New(text)
	m := &Model{
		editor:     editor.New(buf, cfg.Editor),
		keys:       keys.DefaultKeyMap(),
		cfg:        cfg,
		filePath:   filePath,
		configPath: configPath,
		savedText:  text,
	}
	m.initWatcher()
	return m, nil
}

// initWatcher starts watching the opened file and republishes change
// signals on a broker so the update loop receives them as messages.
func (m *Model) initWatcher() {
	w, err := watcher.New(watcher.DefaultConfig(m.filePath))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "watcher init failed", err)
		return
	}
	ch, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "watcher start failed", err, "path", m.filePath)
		_ = w.Stop()
		return
	}

	m.watcherHandle = w
	m.fileBroker = pubsub.NewBroker[string]()
	m.watcherCtx, m.watcherCancel = context.WithCancel(context.Background())
	m.watcherListener = pubsub.NewContinuousListener(m.watcherCtx, m.fileBroker)

	go func() {
		for range ch {
			m.fileBroker.Publish(pubsub.FileChanged, m.filePath)
		}
	}()
}

// Init starts the watcher listener.
func (m *Model) Init() tea.Cmd {
	if m.watcherListener != nil {
		return m.watcherListener.Listen()
	}
	return nil
}

// Update routes messages between the application chrome and the
// editor.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetSize(msg.Width, maxInt(1, msg.Height-2))
		m.preview.Width = msg.Width
		m.preview.Height = maxInt(1, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case editor.ModeChangedMsg:
		m.insertMode = msg.Insert
		return m, nil

	case editor.CursorStyleMsg:
		// Cursor style is rendered by the editor itself; nothing to
		// track at this level.
		return m, nil

	case pubsub.Event[string]:
		return m.handleFileChanged()
	}

	if m.showPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showPreview {
		switch {
		case key.Matches(msg, m.keys.Preview), msg.Type == tea.KeyEscape:
			m.showPreview = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		m.save()
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.openPreview()
		return m, nil

	case key.Matches(msg, m.keys.ToggleVim):
		m.toggleVimMode()
		return m, nil
	}

	m.statusMsg = ""
	return m, m.editor.Update(msg)
}

func (m *Model) save() {
	content := m.editor.Value()
	if err := os.WriteFile(m.filePath, []byte(content), 0644); err != nil { //nolint:gosec // G306: document file, not a secret
		m.setError(fmt.Errorf("saving: %w", err))
		return
	}
	m.savedText = content
	m.setStatus("saved")
	log.Info(log.CatApp, "file saved", "path", m.filePath, "bytes", len(content))
}

func (m *Model) openPreview() {
	rendered, err := m.renderMarkdown(m.editor.Value())
	if err != nil {
		m.setError(fmt.Errorf("rendering preview: %w", err))
		return
	}
	m.preview = viewport.New(m.width, maxInt(1, m.height-2))
	m.preview.SetContent(rendered)
	m.showPreview = true
}

func (m *Model) renderMarkdown(src string) (string, error) {
	// An explicit markdown style wins; a forced theme mode maps to
	// the matching standard style; otherwise auto-detect.
	style := m.cfg.Theme.MarkdownStyle
	if style == "" {
		style = m.cfg.Theme.Mode
	}
	r, err := markdown.New(maxInt(20, m.width-2), style)
	if err != nil {
		return "", err
	}
	return r.Render(src)
}

func (m *Model) toggleVimMode() {
	m.cfg.Editor.VimMode = !m.cfg.Editor.VimMode
	m.editor.SetVimMode(m.cfg.Editor.VimMode)
	if m.configPath != "" {
		if err := config.SaveEditorSettings(m.configPath, m.cfg.Editor); err != nil {
			log.ErrorErr(log.CatConfig, "saving editor settings failed", err)
		}
	}
	if m.cfg.Editor.VimMode {
		m.setStatus("vim mode on")
	} else {
		m.setStatus("vim mode off")
	}
}

// handleFileChanged reloads the document when it changed on disk and
// there are no unsaved edits to lose.
func (m *Model) handleFileChanged() (tea.Model, tea.Cmd) {
	listen := tea.Cmd(nil)
	if m.watcherListener != nil {
		listen = m.watcherListener.Listen()
	}

	if m.dirty() {
		m.setError(fmt.Errorf("file changed on disk; save or discard local edits"))
		return m, listen
	}

	data, err := os.ReadFile(m.filePath) //nolint:gosec // G304: user-supplied document path
	if err != nil {
		m.setError(fmt.Errorf("reloading: %w", err))
		return m, listen
	}
	m.editor.SetValue(string(data))
	m.savedText = string(data)
	m.setStatus("reloaded from disk")
	log.Info(log.CatApp, "file reloaded", "path", m.filePath)
	return m, listen
}

func (m *Model) dirty() bool {
	return m.editor.Value() != m.savedText
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

func (m *Model) setError(err error) {
	m.statusMsg = err.Error()
	m.statusIsErr = true
	log.ErrorErr(log.CatApp, "status error", err)
}

// View renders the editor (or preview) above the status bar.
func (m *Model) View() string {
	body := m.editor.View()
	if m.showPreview {
		body = m.preview.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar(), m.helpLine())
}

// statusBar renders mode badge, file name, dirty marker and the
// transient status message.
func (m *Model) statusBar() string {
	badge := styles.ModeNavBadgeStyle.Render(" NAV ")
	if !m.cfg.Editor.VimMode {
		badge = styles.ModeInsertBadgeStyle.Render(" EDIT ")
	} else if m.insertMode {
		badge = styles.ModeInsertBadgeStyle.Render(" INSERT ")
	}

	name := m.filePath
	if name == "" {
		name = "[no file]"
	}
	if m.dirty() {
		name += styles.DirtyMarkerStyle.Render(" *")
	}

	msg := ""
	if m.statusMsg != "" {
		if m.statusIsErr {
			msg = styles.ErrorMessageStyle.Render(m.statusMsg)
		} else {
			msg = styles.StatusMessageStyle.Render(m.statusMsg)
		}
	}

	left := badge + " " + styles.FileNameStyle.Render(name)
	gap := m.width - runewidth.StringWidth(stripForWidth(left)) - runewidth.StringWidth(stripForWidth(msg))
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + msg)
}

func (m *Model) helpLine() string {
	if !m.cfg.Editor.VimMode {
		return styles.HelpStyle.Render("ctrl+s save · ctrl+p preview · ctrl+g vim mode · ctrl+c quit")
	}
	return styles.HelpStyle.Render("i insert · esc nav · dd/yy/p lines · ctrl+s save · ctrl+p preview · ctrl+c quit")
}

// stripForWidth measures printable width, ignoring ANSI sequences.
func stripForWidth(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Close releases the watcher resources.
func (m *Model) Close() error {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.fileBroker != nil {
		m.fileBroker.Close()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
