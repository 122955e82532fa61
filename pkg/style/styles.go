package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the status styles of the CLI, bound to one renderer
type Theme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme builds the status styles for r
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
	}
}

// SuccessIndicator returns a styled check mark
func (t Theme) SuccessIndicator() string { return t.Success.Render("✓") }

// ErrorIndicator returns a styled cross
func (t Theme) ErrorIndicator() string { return t.Error.Render("✗") }

// WarningIndicator returns a styled exclamation mark
func (t Theme) WarningIndicator() string { return t.Warning.Render("!") }

// NewRenderer returns a lipgloss renderer for w. When color is false the
// renderer emits plain text; when true it emits colors even if w is not
// detected as a color terminal.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case !color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}
