// Package buffer provides an in-memory text buffer with a cursor, an
// optional selection and grouped undo history. It is the canonical
// text host for the vi interpreter: the UI renders it, and tests
// drive the interpreter against it directly.
package buffer

import (
	"strings"
	"unicode/utf8"
)

// defaultPageLines approximates a viewport page for hosts that have
// no real viewport.
const defaultPageLines = 20

// Buffer holds document text addressed by byte offsets.
type Buffer struct {
	text   string
	cursor int

	selStart int
	selEnd   int
	hasSel   bool

	hist      history
	open      *editGroup
	depth     int
	pageLines int
}

// New creates a buffer containing text, cursor at the start.
func New(text string) *Buffer {
	return &Buffer{text: text, pageLines: defaultPageLines}
}

// String returns the full document text.
func (b *Buffer) String() string { return b.text }

// SetText replaces the document wholesale, dropping history and
// selection. Used when loading a file or picking up external changes.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.cursor = b.clampOffset(b.cursor)
	b.hasSel = false
	b.hist.reset()
	b.open = nil
	b.depth = 0
}

// SetPageLines overrides the line count used by ScrollPage.
func (b *Buffer) SetPageLines(n int) {
	if n > 0 {
		b.pageLines = n
	}
}

// Len returns the document length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clamped to the document.
func (b *Buffer) SetCursor(off int) {
	b.cursor = b.clampOffset(off)
}

// Selection returns the active selection range.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if !b.hasSel {
		return 0, 0, false
	}
	return b.selStart, b.selEnd, true
}

// SetSelection activates a selection, normalized and clamped.
func (b *Buffer) SetSelection(start, end int) {
	start = b.clampOffset(start)
	end = b.clampOffset(end)
	if start > end {
		start, end = end, start
	}
	b.selStart, b.selEnd, b.hasSel = start, end, true
}

// ClearSelection deactivates the selection.
func (b *Buffer) ClearSelection() { b.hasSel = false }

// LineRange returns the line containing off, excluding the trailing
// separator. An offset past a separator-terminated document resolves
// to the last real line, so the position after the final newline is
// never treated as a phantom empty line.
func (b *Buffer) LineRange(off int) (start, end int) {
	off = b.clampOffset(off)
	if off == len(b.text) && off > 0 && b.text[off-1] == '\n' {
		off--
	}
	start = strings.LastIndexByte(b.text[:off], '\n') + 1
	if i := strings.IndexByte(b.text[off:], '\n'); i >= 0 {
		end = off + i
	} else {
		end = len(b.text)
	}
	return start, end
}

// Text returns the text in [start, end), clamped.
func (b *Buffer) Text(start, end int) string {
	start = b.clampOffset(start)
	end = b.clampOffset(end)
	if start > end {
		start, end = end, start
	}
	return b.text[start:end]
}

// Replace substitutes text for [start, end) and records the edit for
// undo. Outside an explicit group, the edit commits as its own undo
// step.
func (b *Buffer) Replace(start, end int, text string) {
	start = b.clampOffset(start)
	end = b.clampOffset(end)
	if start > end {
		start, end = end, start
	}

	implicit := b.depth == 0
	if implicit {
		b.BeginGroup()
	}
	b.open.edits = append(b.open.edits, edit{start: start, old: b.text[start:end], new: text})
	b.text = b.text[:start] + text + b.text[end:]

	delta := len(text) - (end - start)
	switch {
	case b.cursor >= end:
		b.cursor += delta
	case b.cursor > start:
		b.cursor = start + len(text)
	}
	if b.hasSel {
		b.selStart = b.clampOffset(b.selStart)
		b.selEnd = b.clampOffset(b.selEnd)
		if b.selStart >= b.selEnd {
			b.hasSel = false
		}
	}

	if implicit {
		b.EndGroup()
	}
}

// BeginGroup opens an undo group. Groups nest; only the outermost
// pair commits.
func (b *Buffer) BeginGroup() {
	if b.depth == 0 {
		b.open = &editGroup{cursorBefore: b.cursor}
	}
	b.depth++
}

// EndGroup closes the innermost group, committing the outermost one
// if it made any edits.
func (b *Buffer) EndGroup() {
	if b.depth == 0 {
		return
	}
	b.depth--
	if b.depth > 0 {
		return
	}
	g := b.open
	b.open = nil
	if len(g.edits) > 0 {
		g.cursorAfter = b.cursor
		b.hist.commit(*g)
	}
}

// Undo reverts the most recent edit group and restores the cursor
// position it started from.
func (b *Buffer) Undo() bool {
	g := b.hist.undo()
	if g == nil {
		return false
	}
	for i := len(g.edits) - 1; i >= 0; i-- {
		e := g.edits[i]
		b.text = b.text[:e.start] + e.old + b.text[e.start+len(e.new):]
	}
	b.cursor = b.clampOffset(g.cursorBefore)
	b.hasSel = false
	return true
}

// Redo reapplies the most recently undone group.
func (b *Buffer) Redo() bool {
	g := b.hist.redo()
	if g == nil {
		return false
	}
	for _, e := range g.edits {
		b.text = b.text[:e.start] + e.new + b.text[e.start+len(e.old):]
	}
	b.cursor = b.clampOffset(g.cursorAfter)
	b.hasSel = false
	return true
}

// ScrollPage approximates a viewport page move by jumping the cursor
// a fixed number of lines. Hosts with a real viewport shadow this.
func (b *Buffer) ScrollPage(down bool) {
	delta := b.pageLines
	if !down {
		delta = -delta
	}
	target := b.lineIndex(b.cursor) + delta
	b.cursor = b.lineStartByIndex(target)
}

// InsertString inserts text at the cursor, replacing any active
// selection, and advances the cursor past it. This is the literal
// typing path used in insertion mode.
func (b *Buffer) InsertString(text string) {
	b.BeginGroup()
	if start, end, ok := b.Selection(); ok {
		b.Replace(start, end, "")
		b.ClearSelection()
		b.cursor = start
	}
	at := b.cursor
	b.Replace(at, at, text)
	b.cursor = at + len(text)
	b.EndGroup()
}

// DeleteBackward removes the rune before the cursor, or the selection
// when one is active.
func (b *Buffer) DeleteBackward() {
	if start, end, ok := b.Selection(); ok {
		b.BeginGroup()
		b.Replace(start, end, "")
		b.ClearSelection()
		b.cursor = start
		b.EndGroup()
		return
	}
	if b.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	b.Replace(b.cursor-size, b.cursor, "")
}

// DeleteForward removes the rune after the cursor, or the selection
// when one is active.
func (b *Buffer) DeleteForward() {
	if start, end, ok := b.Selection(); ok {
		b.BeginGroup()
		b.Replace(start, end, "")
		b.ClearSelection()
		b.cursor = start
		b.EndGroup()
		return
	}
	if b.cursor >= len(b.text) {
		return
	}
	_, size := utf8.DecodeRuneInString(b.text[b.cursor:])
	b.Replace(b.cursor, b.cursor+size, "")
}

// CanUndo reports whether an edit group is available to undo.
func (b *Buffer) CanUndo() bool { return b.hist.undoIndex > 0 }

// CanRedo reports whether an undone group is available to redo.
func (b *Buffer) CanRedo() bool { return b.hist.undoIndex < len(b.hist.groups) }

func (b *Buffer) clampOffset(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(b.text) {
		return len(b.text)
	}
	return off
}

// lineIndex returns the zero-based line number containing off.
func (b *Buffer) lineIndex(off int) int {
	return strings.Count(b.text[:b.clampOffset(off)], "\n")
}

// lineStartByIndex returns the start offset of line idx, clamped to
// the first and last lines.
func (b *Buffer) lineStartByIndex(idx int) int {
	if idx <= 0 {
		return 0
	}
	start := 0
	for i := 0; i < idx; i++ {
		next := strings.IndexByte(b.text[start:], '\n')
		if next < 0 {
			return start
		}
		start += next + 1
	}
	return start
}
