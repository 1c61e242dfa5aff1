package css

import (
	"github.com/npillmayer/cascade/dom/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint8

// Display modes a styled node may be classified into.
const (
	InlineMode  DisplayMode = iota // CSS inline context, the initial value
	BlockMode                      // CSS block context
	DisplayNone                    // CSS display = none
)

func (disp DisplayMode) String() string {
	switch disp {
	case InlineMode:
		return "inline"
	case BlockMode:
		return "block"
	case DisplayNone:
		return "none"
	}
	return "?"
}

// IsBlockLevel returns true if disp is BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp == BlockMode
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch disp {
	case BlockMode:
		return "▩"
	case InlineMode:
		return "►"
	case DisplayNone:
		return "–"
	}
	return "?"
}

// ClassifyDisplay returns the display mode for a value of property `display`.
// Keyword `block` yields BlockMode and keyword `none` yields DisplayNone.
// Any other value yields InlineMode, including a missing one.
func ClassifyDisplay(v style.Value) DisplayMode {
	switch {
	case style.IsKeyword(v, "block"):
		return BlockMode
	case style.IsKeyword(v, "none"):
		return DisplayNone
	}
	return InlineMode
}
