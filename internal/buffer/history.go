package buffer

// edit is one applied text substitution: new replaced old at start.
type edit struct {
	start int
	old   string
	new   string
}

// editGroup is one undo step. Commands that make several
// substitutions wrap them in a group so they revert together.
type editGroup struct {
	edits        []edit
	cursorBefore int
	cursorAfter  int
}

// history records committed edit groups with an undo cursor.
// undoIndex points just past the last applied group; groups beyond it
// are redoable. Committing a new group truncates the redo tail.
type history struct {
	groups    []editGroup
	undoIndex int
}

// commit appends a group, discarding any redoable groups.
func (h *history) commit(g editGroup) {
	h.groups = h.groups[:h.undoIndex]
	h.groups = append(h.groups, g)
	h.undoIndex = len(h.groups)
}

// undo returns the group to revert, or nil when fully undone.
func (h *history) undo() *editGroup {
	if h.undoIndex == 0 {
		return nil
	}
	h.undoIndex--
	return &h.groups[h.undoIndex]
}

// redo returns the group to reapply, or nil when nothing is redoable.
func (h *history) redo() *editGroup {
	if h.undoIndex >= len(h.groups) {
		return nil
	}
	g := &h.groups[h.undoIndex]
	h.undoIndex++
	return g
}

// reset drops all recorded groups.
func (h *history) reset() {
	h.groups = nil
	h.undoIndex = 0
}
