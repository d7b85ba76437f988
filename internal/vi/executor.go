package vi

import "strings"

// Command execution. Every primitive funnels edits through
// TextHost.Replace inside an undo group, so each command reverts as a
// single step. Register updates are the engine's job; primitives that
// capture text return it.

// ============================================================================
// Motions
// ============================================================================

// Move applies a cursor motion directly. Hosts use it to honor native
// cursor keys, which the engine passes through untouched.
func Move(h TextHost, m Motion) {
	move(h, m)
}

// move applies a cursor motion. Motions never change content and
// clamp at document boundaries. A plain motion collapses any active
// selection: only the extend commands keep one alive across keys.
func move(h TextHost, m Motion) {
	h.ClearSelection()
	doc := h.Text(0, h.Len())
	cur := h.Cursor()
	switch m {
	case MotionLeft:
		h.SetCursor(prevGrapheme(doc, cur))
	case MotionRight:
		h.SetCursor(nextGrapheme(doc, cur))
	case MotionDown:
		moveVertical(h, doc, cur, true)
	case MotionUp:
		moveVertical(h, doc, cur, false)
	case MotionLineStart:
		start, _ := h.LineRange(cur)
		h.SetCursor(start)
	case MotionLineEnd:
		_, end := h.LineRange(cur)
		h.SetCursor(end)
	case MotionFirstNonBlank:
		start, end := h.LineRange(cur)
		h.SetCursor(start + len(leadingIndent(h.Text(start, end))))
	case MotionWordRight:
		h.SetCursor(nextWordStart(doc, cur))
	case MotionWordLeft:
		h.SetCursor(prevWordStart(doc, cur))
	case MotionDocStart:
		h.SetCursor(0)
	case MotionDocEnd:
		h.SetCursor(h.Len())
	}
}

// moveVertical moves to the adjacent line, landing on the same
// grapheme column when the target line is long enough.
func moveVertical(h TextHost, doc string, cur int, down bool) {
	start, end := h.LineRange(cur)
	col := graphemeCount(doc[start:cur])

	var targetStart, targetEnd int
	if down {
		if end+1 >= len(doc) {
			return
		}
		targetStart, targetEnd = h.LineRange(end + 1)
	} else {
		if start == 0 {
			return
		}
		targetStart, targetEnd = h.LineRange(start - 1)
	}
	h.SetCursor(advanceGraphemes(doc, targetStart, targetEnd, col))
}

func graphemeCount(s string) int {
	n := 0
	for off := 0; off < len(s); off = nextGrapheme(s, off) {
		n++
	}
	return n
}

// advanceGraphemes steps n graphemes forward from start, stopping at
// end.
func advanceGraphemes(doc string, start, end, n int) int {
	off := start
	for i := 0; i < n && off < end; i++ {
		off = nextGrapheme(doc, off)
	}
	return off
}

// ============================================================================
// Line operators
// ============================================================================

// deleteLine removes the current line and its trailing separator,
// returning the captured text. The capture ends in a separator, so
// pasting it back recreates a full line. On the last line the
// preceding separator is removed instead, so the document never gains
// a dangling blank line. An empty document yields an empty capture.
func deleteLine(h TextHost) string {
	if h.Len() == 0 {
		return ""
	}
	start, end := h.LineRange(h.Cursor())
	captured := h.Text(start, end) + "\n"

	h.BeginGroup()
	switch {
	case end < h.Len():
		h.Replace(start, end+1, "")
	case start > 0:
		h.Replace(start-1, end, "")
	default:
		h.Replace(start, end, "")
	}
	h.EndGroup()

	h.SetCursor(start)
	return captured
}

// yankLine captures the current line plus a separator without
// changing the document or cursor.
func yankLine(h TextHost) string {
	if h.Len() == 0 {
		return ""
	}
	start, end := h.LineRange(h.Cursor())
	return h.Text(start, end) + "\n"
}

// deleteSelection removes the active selection and returns the
// captured text. The cursor lands at the selection start. Callers
// must only invoke it while a selection exists.
func deleteSelection(h TextHost) string {
	start, end, ok := h.Selection()
	if !ok || start == end {
		// An empty selection has nothing to delete; skipping early
		// keeps a no-op out of the undo history.
		h.ClearSelection()
		return ""
	}
	captured := h.Text(start, end)

	h.BeginGroup()
	h.Replace(start, end, "")
	h.EndGroup()

	h.ClearSelection()
	h.SetCursor(start)
	return captured
}

// ============================================================================
// Character and paste commands
// ============================================================================

// deleteCharForward removes the grapheme under the cursor. At the end
// of the document there is nothing under the cursor and the call is a
// no-op. Unlike the line operators it does not feed the register.
func deleteCharForward(h TextHost) {
	cur := h.Cursor()
	if cur >= h.Len() {
		return
	}
	doc := h.Text(0, h.Len())

	h.BeginGroup()
	h.Replace(cur, nextGrapheme(doc, cur), "")
	h.EndGroup()
}

// pasteAfter inserts the register text as a new line immediately
// below the current one and leaves the cursor at its start. An empty
// register inserts nothing.
func pasteAfter(h TextHost, register string) {
	if register == "" {
		return
	}
	line := strings.TrimSuffix(register, "\n")
	_, end := h.LineRange(h.Cursor())

	h.BeginGroup()
	if end < h.Len() {
		h.Replace(end+1, end+1, line+"\n")
		h.SetCursor(end + 1)
	} else {
		h.Replace(end, end, "\n"+line)
		h.SetCursor(end + 1)
	}
	h.EndGroup()
}

// ============================================================================
// Insertion entry edits
// ============================================================================

// openLineBelow inserts a new line under the current one, indented to
// match it, and leaves the cursor after the indent. On an empty
// document it only positions the cursor; the empty document already
// is the single empty line insertion starts on.
func openLineBelow(h TextHost) {
	if h.Len() == 0 {
		h.SetCursor(0)
		return
	}
	start, end := h.LineRange(h.Cursor())
	indent := leadingIndent(h.Text(start, end))

	h.BeginGroup()
	if end < h.Len() {
		h.Replace(end+1, end+1, indent+"\n")
		h.SetCursor(end + 1 + len(indent))
	} else {
		h.Replace(end, end, "\n"+indent)
		h.SetCursor(end + 1 + len(indent))
	}
	h.EndGroup()
}

// openLineAbove inserts a matching-indent line above the current one.
func openLineAbove(h TextHost) {
	if h.Len() == 0 {
		h.SetCursor(0)
		return
	}
	start, end := h.LineRange(h.Cursor())
	indent := leadingIndent(h.Text(start, end))

	h.BeginGroup()
	h.Replace(start, start, indent+"\n")
	h.SetCursor(start + len(indent))
	h.EndGroup()
}

// autoIndentNewline breaks the line at the cursor and indents the new
// line to match the leading whitespace of the current one. A pending
// selection is consumed first, as a plain Enter would. The break and
// the indent revert as one undo step.
func autoIndentNewline(h TextHost) {
	h.BeginGroup()
	if start, end, ok := h.Selection(); ok {
		h.Replace(start, end, "")
		h.ClearSelection()
		h.SetCursor(start)
	}
	cur := h.Cursor()
	start, end := h.LineRange(cur)
	indent := leadingIndent(h.Text(start, end))
	h.Replace(cur, cur, "\n"+indent)
	h.SetCursor(cur + 1 + len(indent))
	h.EndGroup()
}

// ============================================================================
// Linewise selection extension
// ============================================================================

// extendLineDown grows a linewise selection one line downward,
// clamping to the document end.
func extendLineDown(h TextHost) {
	start, end, ok := h.Selection()
	if !ok {
		start, _ = h.LineRange(h.Cursor())
		end = start
	}
	_, lineEnd := h.LineRange(end)
	newEnd := lineEnd
	if lineEnd < h.Len() {
		newEnd = lineEnd + 1
	}
	if newEnd == start {
		// Nothing to select on an empty document.
		return
	}
	h.SetSelection(start, newEnd)
	h.SetCursor(newEnd)
}

// extendLineUp grows a linewise selection one line upward, clamping
// to the document start.
func extendLineUp(h TextHost) {
	start, end, ok := h.Selection()
	if !ok {
		_, lineEnd := h.LineRange(h.Cursor())
		end = lineEnd
		if lineEnd < h.Len() {
			end = lineEnd + 1
		}
		start = end
	}
	newStart, _ := h.LineRange(start)
	if newStart > 0 {
		newStart, _ = h.LineRange(newStart - 1)
	}
	if newStart == end {
		return
	}
	h.SetSelection(newStart, end)
	h.SetCursor(newStart)
}
