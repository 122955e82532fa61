package ui

import (
	"fmt"
	"strings"
)

// ColorMode controls whether styled output is produced
type ColorMode int

const (
	// ColorAuto colors output written to a color capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways colors output regardless of the destination
	ColorAlways
	// ColorNever never colors output
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses auto, always or never
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "yes", "force":
		return ColorAlways, nil
	case "never", "no", "none":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}
