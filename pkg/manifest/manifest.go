package manifest

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/logging"
	"github.com/vivienm/nominal/pkg/rename"
	"github.com/vivienm/nominal/pkg/types"
)

// Stdin is the path that designates standard input
const Stdin = "-"

// Format is a manifest encoding
type Format int

// Formats, FormatText being the fallback
const (
	FormatText Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// FormatForPath picks the format from the extension of path
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".xml":
		return FormatXML
	default:
		return FormatText
	}
}

// document is the shape shared by the structured formats
type document struct {
	Renames []rename.Rename `json:"renames" yaml:"renames" toml:"renames"`
}

// Loader reads manifests from a filesystem
type Loader struct {
	FS    types.FS
	Stdin io.Reader
}

// Load reads the manifest at path. "-" reads text from standard input.
func (l *Loader) Load(path string) ([]rename.Rename, error) {
	logger := logging.GetLogger("manifest")

	if path == Stdin {
		renames, err := Read(l.Stdin, FormatText)
		if err != nil {
			return nil, withPath(err, "<stdin>")
		}
		return renames, nil
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read manifest %s", path).
			WithDetail("path", path)
	}

	format := FormatForPath(path)
	renames, err := Read(bytes.NewReader(data), format)
	if err != nil {
		return nil, withPath(err, path)
	}

	logger.Debug().
		Str("path", path).
		Str("format", format.String()).
		Int("count", len(renames)).
		Msg("Loaded manifest")
	return renames, nil
}

// Read decodes a manifest in the given format
func Read(r io.Reader, format Format) ([]rename.Rename, error) {
	var (
		renames []rename.Rename
		err     error
	)

	switch format {
	case FormatText:
		return readText(r)
	case FormatYAML:
		renames, err = readYAML(r)
	case FormatTOML:
		renames, err = readTOML(r)
	case FormatJSON:
		renames, err = readJSON(r)
	case FormatXML:
		renames, err = readXML(r)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown manifest format %d", int(format))
	}
	if err != nil {
		return nil, err
	}

	for i, rn := range renames {
		if err := validate(rn); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid entry %d", i+1).
				WithDetail("entry", i+1)
		}
	}
	return renames, nil
}

func validate(rn rename.Rename) error {
	switch {
	case rn.Source == "":
		return fmt.Errorf("empty source")
	case rn.Target == "":
		return fmt.Errorf("empty target")
	}
	return nil
}

func withPath(err error, path string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithDetail("path", path)
	}
	return err
}
