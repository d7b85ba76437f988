// Package markdown provides styled markdown rendering for the preview pane.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins so the
// preview lines up with the editor column. It layers on top of the base
// style (auto dark/light detection or a user-supplied style file).
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with vix-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer that wraps at the given width.
// stylePath may name a standard glamour style ("dark", "light") or a
// style JSON file; when empty the style follows the terminal
// background.
func New(width int, stylePath string) (*Renderer, error) {
	base := glamour.WithAutoStyle()
	if stylePath != "" {
		base = glamour.WithStylePath(stylePath)
	}
	r, err := glamour.NewTermRenderer(
		base,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
