package paths

import (
	"path/filepath"
	"strings"
)

// components is a path split into its root and normal components.
// root is "" for relative paths and the volume plus separator otherwise.
type components struct {
	root  string
	parts []string
}

func split(p string) components {
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]

	c := components{}
	if rest != "" && isSeparator(rest[0]) {
		c.root = vol + string(filepath.Separator)
	} else if vol != "" {
		c.root = vol
	}

	for _, part := range strings.FieldsFunc(rest, func(r rune) bool { return r < 0x80 && isSeparator(byte(r)) }) {
		// "." only survives as the leading component of a relative path.
		if part == "." && (c.root != "" || len(c.parts) > 0) {
			continue
		}
		c.parts = append(c.parts, part)
	}
	return c
}

func isSeparator(b byte) bool {
	return b == '/' || b == filepath.Separator
}

func (c components) join(n int) string {
	return c.root + strings.Join(c.parts[:n], string(filepath.Separator))
}

// CommonAncestor returns the deepest ancestor of p1 (p1 included) that is
// also a component-wise prefix of p2.
//
// Absolute paths always share at least their root. Relative paths have no
// implicit common root: CommonAncestor("a/b", "x/y") reports false.
func CommonAncestor(p1, p2 string) (string, bool) {
	common, _, _, ok := SplitCommon(p1, p2)
	return common, ok
}

// SplitCommon splits p1 and p2 into their common ancestor and the
// remainders of each path below it.
func SplitCommon(p1, p2 string) (common, rest1, rest2 string, ok bool) {
	a, b := split(p1), split(p2)
	if a.root != b.root {
		return "", "", "", false
	}

	n := 0
	for n < len(a.parts) && n < len(b.parts) && a.parts[n] == b.parts[n] {
		n++
	}
	if a.root == "" && n == 0 {
		return "", "", "", false
	}

	sep := string(filepath.Separator)
	return a.join(n),
		strings.Join(a.parts[n:], sep),
		strings.Join(b.parts[n:], sep),
		true
}

// IsRoot reports whether p names a filesystem root and nothing below it.
func IsRoot(p string) bool {
	c := split(p)
	return c.root != "" && len(c.parts) == 0
}
