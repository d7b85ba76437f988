package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReplace(t *testing.T) {
	b := New("hello world")
	b.Replace(6, 11, "there")
	require.Equal(t, "hello there", b.String())
}

func TestReplaceAdjustsCursorAfterEdit(t *testing.T) {
	b := New("hello world")
	b.SetCursor(11)
	b.Replace(0, 5, "hi")
	require.Equal(t, "hi world", b.String())
	require.Equal(t, 8, b.Cursor())
}

func TestReplaceCollapsesCursorInsideEdit(t *testing.T) {
	b := New("hello world")
	b.SetCursor(3)
	b.Replace(1, 5, "")
	require.Equal(t, "h world", b.String())
	require.Equal(t, 1, b.Cursor())
}

func TestLineRange(t *testing.T) {
	b := New("one\ntwo\nthree")

	start, end := b.LineRange(0)
	require.Equal(t, 0, start)
	require.Equal(t, 3, end)

	start, end = b.LineRange(5)
	require.Equal(t, 4, start)
	require.Equal(t, 7, end)

	// Offset on the separator belongs to the line it terminates.
	start, end = b.LineRange(3)
	require.Equal(t, 0, start)
	require.Equal(t, 3, end)

	start, end = b.LineRange(13)
	require.Equal(t, 8, start)
	require.Equal(t, 13, end)
}

func TestLineRangePastTrailingSeparator(t *testing.T) {
	b := New("one\ntwo\n")

	// The position after the final newline resolves to the last real
	// line rather than a phantom empty line.
	start, end := b.LineRange(8)
	require.Equal(t, 4, start)
	require.Equal(t, 7, end)
}

func TestUndoSingleEdit(t *testing.T) {
	b := New("abc")
	b.SetCursor(1)
	b.Replace(1, 2, "XY")
	require.Equal(t, "aXYc", b.String())

	require.True(t, b.Undo())
	require.Equal(t, "abc", b.String())
	require.Equal(t, 1, b.Cursor())
	require.False(t, b.Undo())
}

func TestGroupedEditsUndoAsOneStep(t *testing.T) {
	b := New("abc")
	b.BeginGroup()
	b.Replace(3, 3, "\n")
	b.Replace(4, 4, "  ")
	b.EndGroup()
	require.Equal(t, "abc\n  ", b.String())

	require.True(t, b.Undo())
	require.Equal(t, "abc", b.String())
}

func TestNestedGroupsCommitOnce(t *testing.T) {
	b := New("")
	b.BeginGroup()
	b.Replace(0, 0, "a")
	b.BeginGroup()
	b.Replace(1, 1, "b")
	b.EndGroup()
	b.Replace(2, 2, "c")
	b.EndGroup()
	require.Equal(t, "abc", b.String())

	require.True(t, b.Undo())
	require.Equal(t, "", b.String())
	require.False(t, b.CanUndo())
}

func TestEmptyGroupCommitsNothing(t *testing.T) {
	b := New("abc")
	b.BeginGroup()
	b.EndGroup()
	require.False(t, b.CanUndo())
}

func TestRedo(t *testing.T) {
	b := New("abc")
	b.Replace(0, 1, "x")
	require.True(t, b.Undo())
	require.True(t, b.Redo())
	require.Equal(t, "xbc", b.String())
	require.False(t, b.Redo())
}

func TestNewEditTruncatesRedoTail(t *testing.T) {
	b := New("abc")
	b.Replace(0, 1, "x")
	b.Undo()
	b.Replace(0, 1, "y")

	require.False(t, b.CanRedo())
	require.True(t, b.Undo())
	require.Equal(t, "abc", b.String())
}

func TestSelectionNormalizesAndClamps(t *testing.T) {
	b := New("abc")
	b.SetSelection(10, 1)
	start, end, ok := b.Selection()
	require.True(t, ok)
	require.Equal(t, 1, start)
	require.Equal(t, 3, end)

	b.ClearSelection()
	_, _, ok = b.Selection()
	require.False(t, ok)
}

func TestInsertStringReplacesSelection(t *testing.T) {
	b := New("hello world")
	b.SetSelection(5, 11)
	b.InsertString("!")
	require.Equal(t, "hello!", b.String())
	require.Equal(t, 6, b.Cursor())

	// Deletion and insertion revert together.
	require.True(t, b.Undo())
	require.Equal(t, "hello world", b.String())
	require.False(t, b.CanUndo())
}

func TestDeleteBackward(t *testing.T) {
	b := New("héllo")
	b.SetCursor(3)
	b.DeleteBackward()
	require.Equal(t, "hllo", b.String())
	require.Equal(t, 1, b.Cursor())

	b.SetCursor(0)
	b.DeleteBackward()
	require.Equal(t, "hllo", b.String())
}

func TestDeleteForward(t *testing.T) {
	b := New("ab")
	b.DeleteForward()
	require.Equal(t, "b", b.String())

	b.SetCursor(1)
	b.DeleteForward()
	require.Equal(t, "b", b.String())
}

func TestSetTextDropsHistory(t *testing.T) {
	b := New("abc")
	b.Replace(0, 0, "x")
	b.SetText("fresh")
	require.False(t, b.CanUndo())
	require.Equal(t, "fresh", b.String())
}

func TestScrollPageClampsAtEnds(t *testing.T) {
	b := New("a\nb\nc\n")
	b.SetPageLines(10)

	b.ScrollPage(true)
	require.Equal(t, 4, b.Cursor(), "clamps to the last line start")

	b.ScrollPage(false)
	require.Equal(t, 0, b.Cursor())
}

// Undoing every recorded group always restores the original text, no
// matter how edits interleave with undo and redo.
func TestUndoAlwaysRestoresOriginal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := rapid.StringMatching(`[a-c\n]{0,20}`).Draw(t, "original")
		b := New(original)

		n := rapid.IntRange(1, 15).Draw(t, "ops")
		for i := 0; i < n; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				at := rapid.IntRange(0, b.Len()).Draw(t, "at")
				b.Replace(at, at, rapid.StringMatching(`[x-z]{1,3}`).Draw(t, "ins"))
			case 1:
				if b.Len() > 0 {
					at := rapid.IntRange(0, b.Len()-1).Draw(t, "del")
					b.Replace(at, at+1, "")
				}
			case 2:
				b.Undo()
			case 3:
				b.Redo()
			}
		}
		for b.CanUndo() {
			b.Undo()
		}
		require.Equal(t, original, b.String())
	})
}
