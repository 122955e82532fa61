package style

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vivienm/nominal/pkg/filesystem"
	"github.com/vivienm/nominal/pkg/logging"
	"github.com/vivienm/nominal/pkg/types"
)

// EnvLSColors is the environment variable holding the color table
const EnvLSColors = "LS_COLORS"

// DefaultLSColors is used when LS_COLORS is unset or invalid
const DefaultLSColors = "di=01;34:ln=01;36:or=40;31;01:pi=40;33:so=01;35:do=01;35:" +
	"bd=40;33;01:cd=40;33;01:su=37;41:sg=30;43:tw=30;42:ow=34;42:st=37;44:ex=01;32"

type extensionStyle struct {
	suffix string
	style  lipgloss.Style
}

// LSColors styles paths from an LS_COLORS table, picking the entry by the
// type of the filesystem entry (directory, symlink, executable, ...) and,
// for regular or missing files, by file name suffix.
type LSColors struct {
	renderer   *lipgloss.Renderer
	fs         types.FS
	indicators map[string]lipgloss.Style
	extensions []extensionStyle
	// linkAsTarget is set by "ln=target": links take their target's style.
	linkAsTarget bool
}

// Option configures LSColors
type Option func(*LSColors)

// WithRenderer sets the lipgloss renderer styles are created with
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *LSColors) {
		c.renderer = r
	}
}

// WithFS sets the filesystem entries are inspected on
func WithFS(fsys types.FS) Option {
	return func(c *LSColors) {
		c.fs = fsys
	}
}

// ParseLSColors parses a table in the LS_COLORS format, e.g.
// "di=01;34:ln=01;36:*.tar=01;31".
func ParseLSColors(table string, opts ...Option) (*LSColors, error) {
	c := &LSColors{
		renderer:   lipgloss.DefaultRenderer(),
		fs:         filesystem.NewOS(),
		indicators: make(map[string]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, entry := range strings.Split(table, ":") {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid LS_COLORS entry %q", entry)
		}
		if key == "ln" && value == "target" {
			c.linkAsTarget = true
			continue
		}

		s, err := parseSGR(c.renderer, value)
		if err != nil {
			return nil, err
		}
		if suffix, isGlob := strings.CutPrefix(key, "*"); isGlob {
			c.extensions = append(c.extensions, extensionStyle{suffix: suffix, style: s})
			continue
		}
		c.indicators[key] = s
	}
	return c, nil
}

// FromEnv reads LS_COLORS, falling back to DefaultLSColors
func FromEnv(opts ...Option) *LSColors {
	logger := logging.GetLogger("style")

	table, ok := os.LookupEnv(EnvLSColors)
	if !ok || table == "" {
		logger.Warn().Msg("could not read LS_COLORS environment variable")
		table = DefaultLSColors
	}

	c, err := ParseLSColors(table, opts...)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid LS_COLORS, using defaults")
		c, _ = ParseLSColors(DefaultLSColors, opts...)
	}
	return c
}

// Style implements types.PathStyler
func (c *LSColors) Style(path, text string) string {
	s, ok := c.StyleFor(path)
	if !ok {
		return text
	}
	return s.Render(text)
}

// StyleFor returns the style of path, and false when no entry applies
func (c *LSColors) StyleFor(path string) (lipgloss.Style, bool) {
	indicator := c.indicator(path)

	switch indicator {
	case "fi", "":
		if s, ok := c.extensionStyle(path); ok {
			return s, true
		}
	case "ln":
		if c.linkAsTarget {
			return c.styleOfTarget(path)
		}
	}

	if indicator == "" {
		return lipgloss.Style{}, false
	}
	s, ok := c.indicators[indicator]
	return s, ok
}

func (c *LSColors) styleOfTarget(path string) (lipgloss.Style, bool) {
	info, err := c.fs.Stat(path)
	if err != nil {
		s, ok := c.indicators["or"]
		return s, ok
	}
	if s, ok := c.indicators[indicatorForMode(info.Mode())]; ok {
		return s, true
	}
	return c.extensionStyle(path)
}

func (c *LSColors) extensionStyle(path string) (lipgloss.Style, bool) {
	var (
		found lipgloss.Style
		ok    bool
	)
	// Later entries override earlier ones.
	for _, ext := range c.extensions {
		if strings.HasSuffix(path, ext.suffix) {
			found, ok = ext.style, true
		}
	}
	return found, ok
}

// indicator returns the LS_COLORS key for the entry at path, or "" when the
// entry does not exist.
func (c *LSColors) indicator(path string) string {
	info, err := c.fs.Lstat(path)
	if err != nil {
		return ""
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		if _, err := c.fs.Stat(path); err != nil {
			return "or"
		}
		return "ln"
	}
	return indicatorForMode(info.Mode())
}

func indicatorForMode(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		sticky := mode&fs.ModeSticky != 0
		otherWritable := mode.Perm()&0o002 != 0
		switch {
		case sticky && otherWritable:
			return "tw"
		case otherWritable:
			return "ow"
		case sticky:
			return "st"
		default:
			return "di"
		}
	case mode&fs.ModeNamedPipe != 0:
		return "pi"
	case mode&fs.ModeSocket != 0:
		return "so"
	case mode&fs.ModeCharDevice != 0:
		return "cd"
	case mode&fs.ModeDevice != 0:
		return "bd"
	case mode&fs.ModeSetuid != 0:
		return "su"
	case mode&fs.ModeSetgid != 0:
		return "sg"
	case mode.Perm()&0o111 != 0:
		return "ex"
	default:
		return "fi"
	}
}
