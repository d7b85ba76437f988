package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHeading(t *testing.T) {
	r, err := New(60, "")
	require.NoError(t, err)
	require.Equal(t, 60, r.Width())

	out, err := r.Render("# Title\n\nbody text\n")
	require.NoError(t, err)
	require.Contains(t, out, "Title")
	require.Contains(t, out, "body text")
}

func TestRenderWrapsAtWidth(t *testing.T) {
	r, err := New(20, "")
	require.NoError(t, err)

	out, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)
	require.Greater(t, strings.Count(out, "\n"), 1)
}

func TestNewWithMissingStylePathFails(t *testing.T) {
	_, err := New(60, "/nonexistent/style.json")
	require.Error(t, err)
}
