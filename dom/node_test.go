package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestElementConstruction(t *testing.T) {
	p := NewElement("p", AttrMap{"id": "test", "class": "a  b"}, nil)
	e, ok := p.Element()
	require.True(t, ok)
	assert.Equal(t, "p", e.TagName)
	assert.Equal(t, "test", e.ID())
	assert.Equal(t, []string{"a", "b"}, e.Classes())
	assert.Equal(t, "p", p.NodeName())
	_, isText := p.Text()
	assert.False(t, isText)
	assert.Nil(t, p.HTMLNode())
	assert.Equal(t, `<p class="a  b" id="test">`, p.String())
	//
	div := NewElement("div", nil, []*Node{p})
	assert.Equal(t, 1, div.ChildCount())
	_, ok = div.Element()
	assert.True(t, ok)
	_, ok = NewElement("span", nil, nil).Type().(*Element)
	assert.True(t, ok)
}

func TestInnerText(t *testing.T) {
	// <div>Hello <b>brave <i>new</i></b> world</div>
	doc := NewElement("div", nil, []*Node{
		NewText("Hello "),
		NewElement("b", nil, []*Node{
			NewText("brave "),
			NewElement("i", nil, []*Node{NewText("new")}),
		}),
		NewText(" world"),
	})
	assert.Equal(t, "Hello brave new world", doc.InnerText())
	assert.Equal(t, "", NewElement("p", nil, nil).InnerText())
	assert.Equal(t, "#text", NewText("x").NodeName())
	assert.Equal(t, "x", NewText("x").InnerText())
}

func TestFromHTMLParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(`<!DOCTYPE html><html><head></head>` +
		`<body><!-- comment --><p id="world">Hello <b>World</b>!</p></body></html>`))
	require.NoError(t, err)
	root := FromHTMLParseTree(h)
	require.NotNil(t, root)
	assert.Equal(t, "html", root.NodeName())
	require.Equal(t, 2, root.ChildCount())
	body := root.Children()[1]
	assert.Equal(t, "body", body.NodeName())
	require.Equal(t, 1, body.ChildCount(), "comment should have been dropped")
	p := body.Children()[0]
	e, _ := p.Element()
	assert.Equal(t, "world", e.ID())
	assert.Equal(t, "Hello World!", p.InnerText())
	assert.Same(t, p.HTMLNode(), ToHTMLNode(p))
}

func TestToHTMLNodeDetached(t *testing.T) {
	p := NewElement("p", AttrMap{"z": "1", "a": "2"}, []*Node{NewText("x")})
	h := ToHTMLNode(p)
	require.NotNil(t, h)
	assert.Equal(t, html.ElementNode, h.Type)
	assert.Equal(t, "p", h.Data)
	assert.Equal(t, []html.Attribute{{Key: "a", Val: "2"}, {Key: "z", Val: "1"}}, h.Attr)
	assert.Nil(t, h.FirstChild)
	assert.Equal(t, html.TextNode, ToHTMLNode(NewText("x")).Type)
	assert.Nil(t, ToHTMLNode(nil))
	//
	upper := ToHTMLNode(NewElement("P", nil, nil))
	assert.Equal(t, "p", upper.Data)
	assert.Equal(t, atom.P, upper.DataAtom)
}

func TestElementDropsNilChildren(t *testing.T) {
	p := NewElement("p", nil, []*Node{nil, NewText("a"), nil, NewText("b")})
	assert.Equal(t, 2, p.ChildCount())
	for _, ch := range p.Children() {
		assert.NotNil(t, ch)
	}
	assert.Equal(t, "ab", p.InnerText())
	assert.Equal(t, 0, NewElement("p", nil, []*Node{nil}).ChildCount())
}
