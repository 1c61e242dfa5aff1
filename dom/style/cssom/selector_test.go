package cssom

import (
	"testing"

	"github.com/npillmayer/cascade/dom"
)

func TestSelectors(t *testing.T) {
	p := dom.NewElement("p", dom.AttrMap{"id": "hello", "class": "note  warning"}, nil)
	text := dom.NewText("p")
	cases := []struct {
		sel  Selector
		node *dom.Node
		want bool
	}{
		{UniversalSelector{}, p, true},
		{UniversalSelector{}, text, false},
		{TypeSelector{TagName: "p"}, p, true},
		{TypeSelector{TagName: "P"}, p, true},
		{TypeSelector{TagName: "div"}, p, false},
		{TypeSelector{TagName: "p"}, text, false},
		{AttributeSelector{TagName: "p", Attribute: "id", Op: Eq, Value: "hello"}, p, true},
		{AttributeSelector{TagName: "p", Attribute: "id", Op: Eq, Value: "hell"}, p, false},
		{AttributeSelector{TagName: "div", Attribute: "id", Op: Eq, Value: "hello"}, p, false},
		{AttributeSelector{TagName: "p", Attribute: "lang", Op: Eq, Value: ""}, p, false},
		{AttributeSelector{TagName: "p", Attribute: "class", Op: Contain, Value: "warning"}, p, true},
		{AttributeSelector{TagName: "p", Attribute: "class", Op: Contain, Value: "warn"}, p, false},
		{AttributeSelector{TagName: "p", Attribute: "class", Op: Eq, Value: "warning"}, p, false},
	}
	for _, c := range cases {
		if got := c.sel.Matches(c.node); got != c.want {
			t.Errorf("%v matching %v: expected %v, have %v", c.sel, c.node, c.want, got)
		}
	}
}

func TestRuleMatchesAnySelector(t *testing.T) {
	p := dom.NewElement("p", nil, nil)
	rule := NewRule([]Selector{TypeSelector{TagName: "div"}, TypeSelector{TagName: "p"}}, Decl("display", "block"))
	if !rule.Matches(p) {
		t.Error("expected rule to match if any selector matches")
	}
	if NewRule(nil).Matches(p) {
		t.Error("expected rule without selectors to never match")
	}
	if len(rule.Declarations()) != 1 {
		t.Errorf("expected 1 declaration, have %d", len(rule.Declarations()))
	}
}
