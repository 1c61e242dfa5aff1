package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeType is the variant part of a node: either *Element or *Text.
type NodeType interface {
	isNodeType()
}

// AttrMap holds the attributes of an element. Keys are unique, order is irrelevant.
type AttrMap map[string]string

// Element is the node type for markup elements.
type Element struct {
	TagName    string
	Attributes AttrMap
}

func (*Element) isNodeType() {}

// Attr returns the value of an attribute, together with an indicator wether
// the attribute is present.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil || e.Attributes == nil {
		return "", false
	}
	v, ok := e.Attributes[key]
	return v, ok
}

// ID returns the value of attribute `id`, or the empty string.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Classes returns the whitespace-separated entries of attribute `class`.
func (e *Element) Classes() []string {
	cl, _ := e.Attr("class")
	return strings.Fields(cl)
}

// Text is the node type for character data.
type Text struct {
	Data string
}

func (*Text) isNodeType() {}

// Node is the building block of a document tree.
type Node struct {
	nodeType NodeType
	children []*Node
	origin   *html.Node // non-nil if converted from an HTML parse tree
}

// NewElement creates an element node with a tag name, a set of attributes and
// a list of already built children. The new node takes over ownership of the
// children. attrs may be nil.
func NewElement(name string, attrs AttrMap, children []*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	var chs []*Node
	for _, ch := range children {
		if ch != nil {
			chs = append(chs, ch)
		}
	}
	return &Node{
		nodeType: &Element{TagName: name, Attributes: attrs},
		children: chs,
	}
}

// NewText creates a text node.
func NewText(data string) *Node {
	return &Node{nodeType: &Text{Data: data}}
}

// Type returns the variant of a node, i.e. either *Element or *Text.
func (n *Node) Type() NodeType {
	return n.nodeType
}

// Element returns the element variant of n, if n is an element.
func (n *Node) Element() (*Element, bool) {
	e, ok := n.nodeType.(*Element)
	return e, ok
}

// Text returns the text variant of n, if n is a text node.
func (n *Node) Text() (*Text, bool) {
	t, ok := n.nodeType.(*Text)
	return t, ok
}

// NodeName returns the tag name for elements and "#text" for text nodes.
func (n *Node) NodeName() string {
	switch t := n.nodeType.(type) {
	case *Element:
		return t.TagName
	case *Text:
		return "#text"
	}
	return ""
}

// Children returns the children of n in document order.
// Clients must not modify the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// HTMLNode returns the HTML parse tree node n has been converted from,
// or nil for nodes created by NewElement/NewText.
func (n *Node) HTMLNode() *html.Node {
	return n.origin
}

// InnerText concatenates the text content of n and all of its descendants,
// in document order and without any separators. Element structure is skipped.
func (n *Node) InnerText() string {
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	if t, ok := n.nodeType.(*Text); ok {
		b.WriteString(t.Data)
	}
	for _, ch := range n.children {
		ch.collectText(b)
	}
}

func (n *Node) String() string {
	switch t := n.nodeType.(type) {
	case *Element:
		var b strings.Builder
		b.WriteString("<" + t.TagName)
		for _, k := range sortedKeys(t.Attributes) {
			b.WriteString(" " + k + "=\"" + t.Attributes[k] + "\"")
		}
		b.WriteString(">")
		return b.String()
	case *Text:
		return "\"" + t.Data + "\""
	}
	return "<?>"
}
