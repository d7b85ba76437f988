package editor

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vix/internal/vi"
)

// ANSI codes for cursor and selection rendering. The block cursor
// uses reverse video, the bar cursor an underline; selection uses a
// dim background so it reads differently from the cursor cell.
const (
	blockOn  = "\x1b[7m"
	blockOff = "\x1b[27m"
	barOn    = "\x1b[4m"
	barOff   = "\x1b[24m"

	selectionOn  = "\x1b[48;5;238;38;5;255m"
	selectionOff = "\x1b[49;39m"
)

// View renders the visible window of the buffer with cursor and
// selection.
func (m *Model) View() string {
	lines := strings.Split(m.buf.String(), "\n")

	out := make([]string, 0, m.height)
	lineStart := 0
	for row, line := range lines {
		if row >= m.scroll && len(out) < m.height {
			out = append(out, m.renderLine(line, lineStart))
		}
		lineStart += len(line) + 1
	}
	for len(out) < m.height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// renderLine renders one logical line, overlaying selection and the
// cursor cell, truncated to the viewport width.
func (m *Model) renderLine(line string, start int) string {
	cur := m.buf.Cursor()
	selStart, selEnd, hasSel := m.buf.Selection()
	style := m.engine.CursorStyle()

	var sb strings.Builder
	off := 0
	for off < len(line) {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line[off:], -1)
		abs := start + off
		switch {
		case abs == cur:
			sb.WriteString(cursorCell(cluster, style))
		case hasSel && abs >= selStart && abs < selEnd:
			sb.WriteString(selectionOn + cluster + selectionOff)
		default:
			sb.WriteString(cluster)
		}
		off += len(cluster)
	}

	// The position past the last character: an end-of-line cursor or
	// a selected line separator still needs a visible cell.
	eol := start + len(line)
	switch {
	case cur == eol:
		sb.WriteString(cursorCell(" ", style))
	case hasSel && eol >= selStart && eol < selEnd:
		sb.WriteString(selectionOn + " " + selectionOff)
	}

	return truncate.String(sb.String(), uint(maxInt(m.width, 1))) //nolint:gosec // width is clamped positive
}

func cursorCell(cell string, style vi.CursorStyle) string {
	if style == vi.CursorBlock {
		return blockOn + cell + blockOff
	}
	return barOn + cell + barOff
}

// ensureCursorVisible scrolls the viewport so the cursor row is on
// screen.
func (m *Model) ensureCursorVisible() {
	row := strings.Count(m.buf.String()[:m.buf.Cursor()], "\n")
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+m.height {
		m.scroll = row - m.height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
