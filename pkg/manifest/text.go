package manifest

import (
	"bufio"
	"io"
	"strings"

	"github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/rename"
)

// Arrow separates source and target in text manifests
const Arrow = "=>"

func readText(r io.Reader) ([]rename.Rename, error) {
	var renames []rename.Rename

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rn, ok := parseLine(text)
		if !ok {
			return nil, errors.Newf(errors.ErrManifestParse, "line %d: expected \"source %s target\" or a tab separated pair", line, Arrow).
				WithDetail("line", line)
		}
		if err := validate(rn); err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestParse, "line %d", line).
				WithDetail("line", line)
		}
		renames = append(renames, rn)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestRead, "failed to read manifest")
	}
	return renames, nil
}

// parseLine splits a pair. Names are taken verbatim, except for the single
// space on each side of the arrow, so they may start or end with spaces.
func parseLine(text string) (rename.Rename, bool) {
	if source, target, ok := strings.Cut(text, " "+Arrow+" "); ok {
		return rename.New(source, target), true
	}
	if source, target, ok := strings.Cut(text, Arrow); ok {
		return rename.New(source, target), true
	}
	if source, target, ok := strings.Cut(text, "\t"); ok {
		return rename.New(source, target), true
	}
	return rename.Rename{}, false
}
