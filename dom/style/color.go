package style

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorOf interprets a property value as a color. Hex colors are returned
// as is, keywords are looked up in the table of SVG 1.1 / CSS named colors
// (`transparent` included). Any other value is not a color.
func ColorOf(v Value) (color.RGBA, bool) {
	switch c := v.(type) {
	case Color:
		return c.RGBA, true
	case Keyword:
		name := strings.ToLower(string(c))
		if name == "transparent" {
			return color.RGBA{}, true
		}
		rgba, ok := colornames.Map[name]
		return rgba, ok
	}
	return color.RGBA{}, false
}
