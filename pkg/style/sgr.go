package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// parseSGR converts a Select Graphic Rendition sequence such as "01;34"
// or "38;5;208" into a lipgloss style. Unknown attributes are ignored.
func parseSGR(r *lipgloss.Renderer, seq string) (lipgloss.Style, error) {
	s := r.NewStyle()
	codes := strings.Split(seq, ";")

	for i := 0; i < len(codes); i++ {
		if codes[i] == "" {
			continue
		}
		n, err := strconv.Atoi(codes[i])
		if err != nil {
			return s, fmt.Errorf("invalid SGR code %q in %q", codes[i], seq)
		}

		switch {
		case n == 0:
			s = r.NewStyle()
		case n == 1:
			s = s.Bold(true)
		case n == 2:
			s = s.Faint(true)
		case n == 3:
			s = s.Italic(true)
		case n == 4:
			s = s.Underline(true)
		case n == 5 || n == 6:
			s = s.Blink(true)
		case n == 7:
			s = s.Reverse(true)
		case n == 9:
			s = s.Strikethrough(true)
		case n >= 30 && n <= 37:
			s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 30)))
		case n >= 90 && n <= 97:
			s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 90 + 8)))
		case n >= 40 && n <= 47:
			s = s.Background(lipgloss.Color(strconv.Itoa(n - 40)))
		case n >= 100 && n <= 107:
			s = s.Background(lipgloss.Color(strconv.Itoa(n - 100 + 8)))
		case n == 38 || n == 48:
			color, used, err := extendedColor(codes[i+1:])
			if err != nil {
				return s, fmt.Errorf("invalid extended color in %q: %w", seq, err)
			}
			i += used
			if n == 38 {
				s = s.Foreground(color)
			} else {
				s = s.Background(color)
			}
		}
	}
	return s, nil
}

// extendedColor reads the operands of a 38/48 code: "5;n" or "2;r;g;b".
func extendedColor(rest []string) (lipgloss.Color, int, error) {
	if len(rest) == 0 {
		return "", 0, fmt.Errorf("missing color mode")
	}

	switch rest[0] {
	case "5":
		if len(rest) < 2 {
			return "", 0, fmt.Errorf("missing palette index")
		}
		idx, err := strconv.Atoi(rest[1])
		if err != nil || idx < 0 || idx > 255 {
			return "", 0, fmt.Errorf("invalid palette index %q", rest[1])
		}
		return lipgloss.Color(strconv.Itoa(idx)), 2, nil
	case "2":
		if len(rest) < 4 {
			return "", 0, fmt.Errorf("missing RGB components")
		}
		var rgb [3]int
		for j := range rgb {
			v, err := strconv.Atoi(rest[j+1])
			if err != nil || v < 0 || v > 255 {
				return "", 0, fmt.Errorf("invalid RGB component %q", rest[j+1])
			}
			rgb[j] = v
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])), 4, nil
	default:
		return "", 0, fmt.Errorf("unknown color mode %q", rest[0])
	}
}
