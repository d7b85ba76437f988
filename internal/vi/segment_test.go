package vi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNextGraphemeStepsOverCluster(t *testing.T) {
	// e plus combining acute accent is one grapheme cluster.
	text := "éx"
	require.Equal(t, 3, nextGrapheme(text, 0))
	require.Equal(t, 4, nextGrapheme(text, 3))
	require.Equal(t, 4, nextGrapheme(text, 4))
}

func TestPrevGraphemeStepsOverCluster(t *testing.T) {
	text := "xé"
	require.Equal(t, 1, prevGrapheme(text, 4))
	require.Equal(t, 0, prevGrapheme(text, 1))
	require.Equal(t, 0, prevGrapheme(text, 0))
}

func TestGraphemeStepsTreatNewlineAsOne(t *testing.T) {
	text := "a\nb"
	require.Equal(t, 2, nextGrapheme(text, 1))
	require.Equal(t, 1, prevGrapheme(text, 2))
}

func TestNextWordStart(t *testing.T) {
	text := "foo bar  baz"
	require.Equal(t, 4, nextWordStart(text, 0))
	require.Equal(t, 4, nextWordStart(text, 1))
	require.Equal(t, 9, nextWordStart(text, 4))
	require.Equal(t, len(text), nextWordStart(text, 9))
}

func TestNextWordStartCrossesLines(t *testing.T) {
	text := "foo\nbar"
	require.Equal(t, 4, nextWordStart(text, 0))
}

func TestPrevWordStart(t *testing.T) {
	text := "foo bar baz"
	require.Equal(t, 8, prevWordStart(text, 10), "inside a word moves to its start")
	require.Equal(t, 4, prevWordStart(text, 8), "at a word start moves to the previous word")
	require.Equal(t, 0, prevWordStart(text, 4))
	require.Equal(t, 0, prevWordStart(text, 0))
}

func TestLeadingIndent(t *testing.T) {
	require.Equal(t, "  ", leadingIndent("  foo"))
	require.Equal(t, "\t ", leadingIndent("\t bar"))
	require.Equal(t, "", leadingIndent("baz"))
	require.Equal(t, "   ", leadingIndent("   "))
}

// Stepping forward then backward from any boundary returns to it.
func TestGraphemeStepRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		off := 0
		for off < len(text) {
			next := nextGrapheme(text, off)
			require.Greater(t, next, off)
			require.Equal(t, off, prevGrapheme(text, next))
			off = next
		}
	})
}
