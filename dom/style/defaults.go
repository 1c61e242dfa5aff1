package style

// Property keys the styling engine provides initial values for.
const (
	Display    = "display"
	FontWeight = "font-weight"
)

// Initial values as specified by CSS for the properties the styling engine
// defaults. See
// https://drafts.csswg.org/css-display/#the-display-properties and
// https://drafts.csswg.org/css-fonts/#font-weight-prop
var (
	InitialDisplay    Value = Keyword("inline")
	InitialFontWeight Value = Keyword("normal")
)

// InitialValue returns the CSS initial value for a property key, if the
// styling engine knows about one.
func InitialValue(key string) (Value, bool) {
	switch key {
	case Display:
		return InitialDisplay, true
	case FontWeight:
		return InitialFontWeight, true
	}
	return nil, false
}
