package rename

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation decides the order of a plan's targets.
type Collation interface {
	// Comparer returns a three-way comparison of two paths.
	Comparer() (func(a, b string) int, error)
}

// ByteOrder compares paths byte by byte.
type ByteOrder struct{}

// Comparer implements Collation
func (ByteOrder) Comparer() (func(a, b string) int, error) {
	return strings.Compare, nil
}

// NaturalOrder compares paths with a locale-aware collator that treats
// digit runs as numbers, so "file2" sorts before "file10".
type NaturalOrder struct {
	// Locale is a BCP 47 tag. Empty selects the root locale.
	Locale string
}

// Comparer implements Collation. It fails when Locale is not a valid tag.
func (n NaturalOrder) Comparer() (func(a, b string) int, error) {
	tag := language.Und
	if n.Locale != "" {
		parsed, err := language.Parse(n.Locale)
		if err != nil {
			return nil, err
		}
		tag = parsed
	}

	c := collate.New(tag, collate.Numeric)
	return func(a, b string) int {
		return c.Compare([]byte(a), []byte(b))
	}, nil
}

// CollationFor picks the collation matching the sort settings
func CollationFor(natural bool, locale string) Collation {
	if natural {
		return NaturalOrder{Locale: locale}
	}
	return ByteOrder{}
}
