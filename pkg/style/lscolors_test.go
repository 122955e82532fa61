package style

import (
	"io"
	"io/fs"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivienm/nominal/pkg/filesystem"
	"github.com/vivienm/nominal/pkg/types"
)

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return r
}

func memFS(t *testing.T) types.FS {
	t.Helper()
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/tree/dir", 0755))
	require.NoError(t, fsys.WriteFile("/tree/plain", []byte("x"), 0644))
	require.NoError(t, fsys.WriteFile("/tree/run.sh", []byte("x"), 0755))
	require.NoError(t, fsys.WriteFile("/tree/archive.tar", []byte("x"), 0644))
	return fsys
}

func TestLSColorsIndicators(t *testing.T) {
	r := colorRenderer()
	c, err := ParseLSColors("di=01;34:ex=01;32:*.tar=01;31", WithRenderer(r), WithFS(memFS(t)))
	require.NoError(t, err)

	dir := r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	exe := r.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	tar := r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	assert.Equal(t, dir.Render("dir"), c.Style("/tree/dir", "dir"))
	assert.Equal(t, exe.Render("run.sh"), c.Style("/tree/run.sh", "run.sh"))
	assert.Equal(t, tar.Render("archive.tar"), c.Style("/tree/archive.tar", "archive.tar"))
	assert.Equal(t, "plain", c.Style("/tree/plain", "plain"))
}

func TestLSColorsMissingPath(t *testing.T) {
	r := colorRenderer()
	c, err := ParseLSColors("di=01;34:*.tar=01;31", WithRenderer(r), WithFS(memFS(t)))
	require.NoError(t, err)

	_, ok := c.StyleFor("/tree/missing")
	assert.False(t, ok)
	assert.Equal(t, "missing", c.Style("/tree/missing", "missing"))

	_, ok = c.StyleFor("/tree/new.tar")
	assert.True(t, ok, "missing paths are still matched by extension")
}

func TestLSColorsLaterExtensionWins(t *testing.T) {
	r := colorRenderer()
	c, err := ParseLSColors("*.gz=31:*.tar.gz=32", WithRenderer(r), WithFS(memFS(t)))
	require.NoError(t, err)

	want := r.NewStyle().Foreground(lipgloss.Color("2"))
	assert.Equal(t, want.Render("a"), c.Style("/x.tar.gz", "a"))
}

func TestLSColorsAsciiRendersPlain(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	c, err := ParseLSColors("di=01;34", WithRenderer(r), WithFS(memFS(t)))
	require.NoError(t, err)

	assert.Equal(t, "dir", c.Style("/tree/dir", "dir"))
}

func TestParseLSColorsErrors(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{"missing equals", "di"},
		{"empty key", "=01"},
		{"non numeric code", "di=bold"},
		{"truncated palette color", "di=38;5"},
		{"palette index out of range", "di=38;5;300"},
		{"truncated rgb color", "di=48;2;1;2"},
		{"unknown color mode", "di=38;7;1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLSColors(tt.table, WithRenderer(colorRenderer()))
			assert.Error(t, err)
		})
	}
}

func TestParseSGR(t *testing.T) {
	r := colorRenderer()

	tests := []struct {
		name string
		seq  string
		want lipgloss.Style
	}{
		{"bold blue", "01;34", r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))},
		{"bright foreground", "91", r.NewStyle().Foreground(lipgloss.Color("9"))},
		{"background", "40;33", r.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("3"))},
		{"palette", "38;5;208", r.NewStyle().Foreground(lipgloss.Color("208"))},
		{"rgb background", "48;2;255;0;16", r.NewStyle().Background(lipgloss.Color("#ff0010"))},
		{"reset", "01;00;32", r.NewStyle().Foreground(lipgloss.Color("2"))},
		{"underline", "4", r.NewStyle().Underline(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSGR(r, tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Render("x"), got.Render("x"))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("uses the environment", func(t *testing.T) {
		t.Setenv(EnvLSColors, "di=32")
		r := colorRenderer()
		c := FromEnv(WithRenderer(r), WithFS(memFS(t)))
		assert.Equal(t, r.NewStyle().Foreground(lipgloss.Color("2")).Render("d"), c.Style("/tree/dir", "d"))
	})

	t.Run("falls back on invalid table", func(t *testing.T) {
		t.Setenv(EnvLSColors, "di=bogus")
		r := colorRenderer()
		c := FromEnv(WithRenderer(r), WithFS(memFS(t)))
		want := r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
		assert.Equal(t, want.Render("d"), c.Style("/tree/dir", "d"))
	})

	t.Run("falls back when unset", func(t *testing.T) {
		t.Setenv(EnvLSColors, "")
		r := colorRenderer()
		c := FromEnv(WithRenderer(r), WithFS(memFS(t)))
		_, ok := c.StyleFor("/tree/dir")
		assert.True(t, ok)
	})
}

func TestIndicatorForMode(t *testing.T) {
	assert.Equal(t, "di", indicatorForMode(fs.ModeDir|0o755))
	assert.Equal(t, "ex", indicatorForMode(0o755))
	assert.Equal(t, "tw", indicatorForMode(fs.ModeDir|fs.ModeSticky|0o777))
	assert.Equal(t, "ow", indicatorForMode(fs.ModeDir|0o777))
	assert.Equal(t, "pi", indicatorForMode(fs.ModeNamedPipe|0o644))
	assert.Equal(t, "fi", indicatorForMode(0o644))
}
