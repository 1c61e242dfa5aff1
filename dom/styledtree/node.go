package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/css"
	"github.com/npillmayer/cascade/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             *dom.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForDOMNode creates a new styled node linked to a DOM node, with a
// set of resolved properties and the already styled children.
func NewNodeForDOMNode(n *dom.Node, styles *style.PropertyMap, children []*StyNode) *StyNode {
	sn := &StyNode{domNode: n, computedStyles: styles}
	sn.Payload = sn // Payload will always reference the node itself
	for _, ch := range children {
		if ch != nil {
			sn.AddChild(&ch.Node)
		}
	}
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// DOMNode gets the DOM node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// NodeType returns the variant of the underlying DOM node (element or text).
func (sn *StyNode) NodeType() dom.NodeType {
	return sn.domNode.Type()
}

// Styles returns the resolved properties of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// Property returns the resolved value for a property key. No inheritance is
// performed: properties not set for this node are reported as missing.
func (sn *StyNode) Property(key string) (style.Value, bool) {
	return sn.computedStyles.Property(key)
}

// Display classifies the `display` property of a styled node.
func (sn *StyNode) Display() css.DisplayMode {
	v, _ := sn.computedStyles.Property(style.Display)
	return css.ClassifyDisplay(v)
}

// ParentNode returns the styled parent node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// ChildNodes returns the styled children of sn in document order.
func (sn *StyNode) ChildNodes() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = Node(ch)
	}
	return r
}

// Select collects all styled nodes of the subtree rooted at sn (sn included)
// for which pred holds, in document order.
func (sn *StyNode) Select(pred func(*StyNode) bool) []*StyNode {
	nodes := tree.Select(&sn.Node, func(n *tree.Node[*StyNode]) bool {
		return pred(Node(n))
	})
	r := make([]*StyNode, len(nodes))
	for i, n := range nodes {
		r[i] = Node(n)
	}
	return r
}

// Size returns the number of styled nodes in the subtree rooted at sn.
// The tree is not modified.
func (sn *StyNode) Size() int {
	size := 0
	_ = tree.TopDown(&sn.Node, func(*tree.Node[*StyNode], *tree.Node[*StyNode], int) error {
		size++
		return nil
	})
	return size
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("%v%s", sn.domNode, sn.computedStyles)
}

// Equal checks two styled trees for structural equality: both trees have to
// link to the same DOM nodes, carry equal properties, and have equal children
// in the same order. Parents are not compared.
func Equal(a, b *StyNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.domNode != b.domNode || !a.computedStyles.Equal(b.computedStyles) {
		return false
	}
	ach, bch := a.ChildNodes(), b.ChildNodes()
	if len(ach) != len(bch) {
		tracer().Debugf("styled nodes %v and %v differ in child count", a, b)
		return false
	}
	for i := range ach {
		if !Equal(ach[i], bch[i]) {
			return false
		}
	}
	return true
}
