package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.style")
	defer teardown()
	//
	cases := []struct {
		src  string
		want Value
	}{
		{"block", Keyword("block")},
		{"  Inline ", Keyword("inline")},
		{"12px", Length{Amount: 12, Unit: "px"}},
		{"1.5EM", Length{Amount: 1.5, Unit: "em"}},
		{"-3pt", Length{Amount: -3, Unit: "pt"}},
		{"50%", Percentage(50)},
		{"700", Number(700)},
		{"#f00", Color{color.RGBA{0xff, 0, 0, 0xff}}},
		{"#00ff0080", Color{color.RGBA{0, 0xff, 0, 0x80}}},
		{`"Helvetica"`, String("Helvetica")},
		{"1px solid red", Raw("1px solid red")},
		{"rgb(1, 2, 3)", Raw("rgb(1, 2, 3)")},
		{"#zzz", Raw("#zzz")},
		{"", Raw("")},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseValue(c.src), "parsing %q", c.src)
	}
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "block", Keyword("block").String())
	assert.Equal(t, "1.5em", Length{1.5, "em"}.String())
	assert.Equal(t, "50%", Percentage(50).String())
	assert.Equal(t, "700", Number(700).String())
	assert.Equal(t, "#ff0000", Color{color.RGBA{0xff, 0, 0, 0xff}}.String())
	assert.Equal(t, `"a b"`, String("a b").String())
	assert.True(t, IsKeyword(Keyword("None"), "none"))
	assert.False(t, IsKeyword(String("none"), "none"))
	assert.False(t, IsKeyword(nil, "none"))
}

func TestPropertyMap(t *testing.T) {
	pm := NewPropertyMap()
	pm.Set("display", Keyword("block"))
	pm.Set("display", Keyword("inline")) // last write wins
	pm.Add("display", Keyword("none"))   // does not overwrite
	pm.Add("color", Keyword("red"))
	assert.Equal(t, 2, pm.Size())
	v, ok := pm.Property("display")
	assert.True(t, ok)
	assert.Equal(t, Keyword("inline"), v)
	assert.Equal(t, []string{"color", "display"}, pm.Keys())
	assert.Equal(t, "{color: red; display: inline}", pm.String())
	//
	other := &PropertyMap{}
	other.Set("color", Keyword("red"))
	assert.False(t, pm.Equal(other))
	other.Set("display", Keyword("inline"))
	assert.True(t, pm.Equal(other))
	//
	var empty *PropertyMap
	assert.Equal(t, 0, empty.Size())
	assert.False(t, empty.IsSet("display"))
	assert.Nil(t, empty.Keys())
}

func TestInitialValues(t *testing.T) {
	v, ok := InitialValue(Display)
	assert.True(t, ok)
	assert.Equal(t, Keyword("inline"), v)
	v, ok = InitialValue(FontWeight)
	assert.True(t, ok)
	assert.Equal(t, Keyword("normal"), v)
	_, ok = InitialValue("color")
	assert.False(t, ok)
}

func TestColorOf(t *testing.T) {
	c, ok := ColorOf(Keyword("red"))
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c)
	c, ok = ColorOf(ParseValue("#0000ff"))
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, c)
	_, ok = ColorOf(Keyword("transparent"))
	assert.True(t, ok)
	_, ok = ColorOf(Keyword("block"))
	assert.False(t, ok)
	_, ok = ColorOf(Length{1, "px"})
	assert.False(t, ok)
}
