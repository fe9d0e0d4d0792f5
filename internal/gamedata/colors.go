package gamedata

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to
// a colorful.Color. Rendering code scales these by a shade intensity before
// converting to a terminal color, so everything downstream works in RGB.
func ParseHexColor(hex string) (colorful.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	color, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return color, nil
}

// MustParseHexColor converts a hex color string to a colorful.Color, panicking on error.
func MustParseHexColor(hex string) colorful.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
