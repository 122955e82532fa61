package rename

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/vivienm/nominal/pkg/logging"
	"github.com/vivienm/nominal/pkg/paths"
	"github.com/vivienm/nominal/pkg/types"
)

// Rename moves Source to Target.
type Rename struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Target string `json:"target" yaml:"target" toml:"target"`
}

// New creates a new rename operation
func New(source, target string) Rename {
	return Rename{Source: source, Target: target}
}

// IsNoop reports whether the rename leaves the path unchanged
func (r Rename) IsNoop() bool {
	return r.Source == r.Target
}

// layout splits the rename for display. When both paths share an ancestor
// below the filesystem root, grouped is true and source and target are
// relative to common.
func (r Rename) layout() (common, source, target string, grouped bool) {
	common, source, target, ok := paths.SplitCommon(r.Source, r.Target)
	if !ok || paths.IsRoot(common) {
		return "", r.Source, r.Target, false
	}
	return common, source, target, true
}

// String renders "source => target", or "common/{source => target}" when
// the paths share a directory.
func (r Rename) String() string {
	common, source, target, grouped := r.layout()
	if !grouped {
		return source + " => " + target
	}
	var b strings.Builder
	b.WriteString(common)
	b.WriteRune(filepath.Separator)
	b.WriteString("{" + source + " => " + target + "}")
	return b.String()
}

// WriteTo writes the rename followed by a newline
func (r Rename) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String()+"\n")
	return int64(n), err
}

// WriteStyledTo writes the rename like WriteTo, with every path segment
// decorated by s according to the entry it denotes.
func (r Rename) WriteStyledTo(w io.Writer, s types.PathStyler) (int64, error) {
	common, source, target, grouped := r.layout()

	var b strings.Builder
	if grouped {
		b.WriteString(s.Style(common, common))
		b.WriteRune(filepath.Separator)
		b.WriteString("{")
	}
	b.WriteString(s.Style(r.Source, source))
	b.WriteString(" => ")
	b.WriteString(s.Style(r.Target, target))
	if grouped {
		b.WriteString("}")
	}
	b.WriteString("\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Apply performs the rename on fsys.
//
// The target must not exist, as seen without following a trailing symlink.
// Missing parent directories of the target are created.
func (r Rename) Apply(fsys types.FS) error {
	logger := logging.GetLogger("rename")

	// Checked up front so an existing target is never overwritten.
	exists, err := paths.Exists(fsys, r.Target)
	if err != nil {
		return ioFailure(r, err)
	}
	if exists {
		return targetExists(r)
	}

	// A trailing separator names the target itself, not a parent.
	if parent := filepath.Dir(filepath.Clean(r.Target)); parent != filepath.Clean(r.Target) {
		if _, err := fsys.Stat(parent); err != nil {
			logger.Debug().Str("target", r.Target).Msg("creating parent directory")
			if err := fsys.MkdirAll(parent, 0755); err != nil {
				return ioFailure(r, err)
			}
		}
	}

	logger.Debug().Str("source", r.Source).Str("target", r.Target).Msg("renaming")
	if err := fsys.Rename(r.Source, r.Target); err != nil {
		return ioFailure(r, err)
	}
	return nil
}
