package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/dom"
)

// Selector is a predicate over DOM nodes. Selectors match element nodes
// only; text nodes are never matched.
type Selector interface {
	Matches(*dom.Node) bool
}

// UniversalSelector (`*`) matches every element.
type UniversalSelector struct{}

// Matches is part of interface Selector.
func (UniversalSelector) Matches(n *dom.Node) bool {
	_, ok := n.Element()
	return ok
}

func (UniversalSelector) String() string { return "*" }

// TypeSelector matches elements by tag name, e.g. `p`.
// Tag names are compared case-insensitively.
type TypeSelector struct {
	TagName string
}

// Matches is part of interface Selector.
func (s TypeSelector) Matches(n *dom.Node) bool {
	e, ok := n.Element()
	return ok && strings.EqualFold(e.TagName, s.TagName)
}

func (s TypeSelector) String() string { return s.TagName }

// AttrOp is the comparison operator of an attribute selector.
type AttrOp uint8

// Attribute selector operators.
const (
	Eq      AttrOp = iota // [attr=value]: exact match
	Contain               // [attr~=value]: value is one of the whitespace-separated words
)

func (op AttrOp) String() string {
	if op == Contain {
		return "~="
	}
	return "="
}

// AttributeSelector matches elements with a given tag name and an attribute
// value, e.g. `p[id=hello]`.
type AttributeSelector struct {
	TagName   string
	Attribute string
	Op        AttrOp
	Value     string
}

// Matches is part of interface Selector.
func (s AttributeSelector) Matches(n *dom.Node) bool {
	e, ok := n.Element()
	if !ok || !strings.EqualFold(e.TagName, s.TagName) {
		return false
	}
	v, ok := e.Attr(s.Attribute)
	if !ok {
		return false
	}
	switch s.Op {
	case Eq:
		return v == s.Value
	case Contain:
		for _, word := range strings.Fields(v) {
			if word == s.Value {
				return true
			}
		}
	}
	return false
}

func (s AttributeSelector) String() string {
	return fmt.Sprintf("%s[%s%s%s]", s.TagName, s.Attribute, s.Op, s.Value)
}

var _ Selector = UniversalSelector{}
var _ Selector = TypeSelector{}
var _ Selector = AttributeSelector{}
