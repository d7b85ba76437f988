package vi

// TextHost is the buffer and cursor surface the interpreter edits
// through. The engine borrows a host for the duration of a single
// HandleKey call and holds no reference to it afterwards, so the same
// engine can drive an in-memory buffer in tests and a rendered
// viewport in the UI.
//
// All offsets are byte offsets into the document text. Implementations
// clamp out-of-range offsets rather than panicking.
type TextHost interface {
	// Len returns the document length in bytes.
	Len() int

	// Cursor returns the current cursor offset.
	Cursor() int

	// SetCursor moves the cursor, clamping to [0, Len()].
	SetCursor(off int)

	// Selection returns the active selection as a half-open byte
	// range. ok is false when no selection exists.
	Selection() (start, end int, ok bool)

	// SetSelection replaces the active selection. The bounds are
	// normalized so start <= end and clamped to the document.
	SetSelection(start, end int)

	// ClearSelection removes the active selection, if any.
	ClearSelection()

	// LineRange returns the byte range [start, end) of the line
	// containing off, excluding the trailing line separator.
	LineRange(off int) (start, end int)

	// Text returns the document text in [start, end).
	Text(start, end int) string

	// Replace substitutes text for the range [start, end). It is the
	// single mutation primitive; all edits funnel through it so the
	// host's history sees every change.
	Replace(start, end int, text string)

	// BeginGroup opens an undo group. Edits made before the matching
	// EndGroup revert as one step. Groups may nest; only the
	// outermost pair delimits the undo entry.
	BeginGroup()

	// EndGroup closes the innermost open undo group.
	EndGroup()

	// Undo reverts the most recent edit group. It reports whether
	// anything was undone.
	Undo() bool

	// Redo reapplies the most recently undone group. It reports
	// whether anything was redone.
	Redo() bool

	// ScrollPage moves the view one page down (true) or up (false).
	// Hosts without a viewport may approximate with a cursor jump.
	ScrollPage(down bool)
}
