package topics

import (
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/vivienm/nominal/pkg/ui"
)

// GlamourRenderer renders markdown topics for the terminal, following the
// color mode the user asked for.
type GlamourRenderer struct {
	// Color is consulted on every render, since the mode is only known
	// once the configuration has been loaded. nil means ui.ColorAuto.
	Color func() ui.ColorMode
	// Width wraps lines, 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer creates a markdown renderer using the color mode
// reported by color
func NewGlamourRenderer(color func() ui.ColorMode) *GlamourRenderer {
	return &GlamourRenderer{Color: color}
}

// styleName picks the glamour style for w: notty when w gets no colors,
// dark when colors are forced, and glamour's own detection otherwise.
func (r *GlamourRenderer) styleName(w io.Writer) string {
	mode := ui.ColorAuto
	if r.Color != nil {
		mode = r.Color()
	}

	switch {
	case ui.ResolveFormat(ui.FormatAuto, mode, w) != ui.FormatTerminal:
		return styles.NoTTYStyle
	case mode == ui.ColorAlways:
		return styles.DarkStyle
	default:
		return styles.AutoStyle
	}
}

// Render implements Renderer. Non-markdown topics and rendering failures
// fall back to the raw content.
func (r *GlamourRenderer) Render(w io.Writer, content, ext string) string {
	if ext != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if name := r.styleName(w); name == styles.AutoStyle {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(name))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
