package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a content color to a tcell.Color. It accepts "#RRGGBB",
// "RRGGBB", or a color name known to tcell such as "silver".
func ParseColor(s string) (tcell.Color, error) {
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}

// colorOr parses a content color, returning fallback when it is malformed.
func colorOr(s string, fallback tcell.Color) tcell.Color {
	color, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return color
}
