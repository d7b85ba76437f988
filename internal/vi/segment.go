package vi

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Grapheme and word boundary helpers. Cursor motions step over
// grapheme clusters, not bytes or runes, so combining marks, emoji
// and other multi-codepoint clusters move as a unit.

// nextGrapheme returns the offset just past the grapheme cluster
// starting at off. A newline counts as a single step. Returns off at
// end of text.
func nextGrapheme(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[off:], -1)
	return off + len(cluster)
}

// prevGrapheme returns the offset of the grapheme cluster ending at
// off. A newline counts as a single step. Returns 0 at the start of
// text.
func prevGrapheme(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if text[off-1] == '\n' {
		// CR LF segments as a single cluster.
		if off >= 2 && text[off-2] == '\r' {
			return off - 2
		}
		return off - 1
	}
	// Grapheme segmentation only runs forward, so rescan the current
	// line up to off and keep the last boundary seen.
	lineStart := strings.LastIndexByte(text[:off], '\n') + 1
	prev := lineStart
	rest := text[lineStart:off]
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if len(rest) == 0 {
			break
		}
		prev += len(cluster)
	}
	return prev
}

// nextWordStart returns the offset of the start of the next word at
// or after off, crossing line breaks. Returns len(text) when no word
// follows.
func nextWordStart(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	pos := off
	rest := text[off:]
	state := -1
	skippedCurrent := false
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if !skippedCurrent {
			// The first segment is whatever the cursor sits in.
			skippedCurrent = true
			pos += len(word)
			continue
		}
		if strings.TrimSpace(word) != "" {
			return pos
		}
		pos += len(word)
	}
	return len(text)
}

// prevWordStart returns the offset of the start of the word before
// off: the current word's start when the cursor is inside one, else
// the previous word's start. Returns 0 when no word precedes.
func prevWordStart(text string, off int) int {
	if off <= 0 {
		return 0
	}
	last := 0
	pos := 0
	rest := text[:off]
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) != "" && pos < off {
			last = pos
		}
		pos += len(word)
	}
	return last
}

// leadingIndent returns the run of spaces and tabs at the start of
// line.
func leadingIndent(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}
