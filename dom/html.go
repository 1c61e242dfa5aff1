package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTMLParseTree converts an HTML parse tree into a document tree.
// If h is a document node, the result is rooted at its first element child.
// Comments, doctypes and other non-content nodes are dropped; element and text
// nodes keep a link to their originating HTML node (see Node.HTMLNode).
//
// Returns nil if h does not contain any element or text content.
func FromHTMLParseTree(h *html.Node) *Node {
	if h == nil {
		return nil
	}
	if h.Type == html.DocumentNode {
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.ElementNode {
				return FromHTMLParseTree(ch)
			}
		}
		tracer().Infof("HTML document has no root element")
		return nil
	}
	return convert(h)
}

func convert(h *html.Node) *Node {
	var n *Node
	switch h.Type {
	case html.ElementNode:
		attrs := make(AttrMap, len(h.Attr))
		for _, a := range h.Attr {
			if _, exists := attrs[a.Key]; !exists { // first one wins, as in HTML
				attrs[a.Key] = a.Val
			}
		}
		n = &Node{nodeType: &Element{TagName: h.Data, Attributes: attrs}}
	case html.TextNode:
		n = &Node{nodeType: &Text{Data: h.Data}}
	default:
		tracer().Debugf("dropping HTML node of type %d", h.Type)
		return nil
	}
	n.origin = h
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if c := convert(ch); c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// ToHTMLNode returns an HTML node for n. If n has been converted from an HTML
// parse tree, the originating node is returned. Otherwise a detached node
// (no parent, no siblings, no children) is created from n's tag name and
// attributes; attributes are ordered by key. The tag name is lower-cased, as
// the HTML parser does it.
func ToHTMLNode(n *Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.origin != nil {
		return n.origin
	}
	switch t := n.nodeType.(type) {
	case *Element:
		name := strings.ToLower(t.TagName)
		h := &html.Node{Type: html.ElementNode, Data: name, DataAtom: atom.Lookup([]byte(name))}
		for _, k := range sortedKeys(t.Attributes) {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: t.Attributes[k]})
		}
		return h
	case *Text:
		return &html.Node{Type: html.TextNode, Data: t.Data}
	}
	return nil
}

func sortedKeys(m AttrMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
