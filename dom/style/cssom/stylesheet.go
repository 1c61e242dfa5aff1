package cssom

import (
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine may provide a
// concrete implementation of this interface (e.g., see
// package douceuradapter) or use type Sheet.
//
// The order of rules is significant: declarations of later rules win over
// declarations of earlier rules.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Matches(*dom.Node) bool       // does any selector of the rule match a node?
	Declarations() []Declaration // property declarations, in order
}

// Declaration is a single property setting of a rule, e.g. `display: block`.
type Declaration struct {
	Name  string
	Value style.Value
}

// Decl is a shortcut to create a declaration with a keyword value.
func Decl(name string, keyword string) Declaration {
	return Declaration{Name: name, Value: style.Keyword(keyword)}
}

// --- Default implementation ------------------------------------------------

// Sheet is a straightforward implementation of StyleSheet.
type Sheet struct {
	rules []Rule
}

// NewStyleSheet creates a stylesheet from a list of rules.
func NewStyleSheet(rules ...Rule) *Sheet {
	return &Sheet{rules: rules}
}

// AppendRules appends rules from another stylesheet.
//
// Interface StyleSheet
func (sheet *Sheet) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Empty checks if this stylesheet contains any rules.
//
// Interface StyleSheet
func (sheet *Sheet) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
//
// Interface StyleSheet
func (sheet *Sheet) Rules() []Rule {
	return sheet.rules
}

var _ StyleSheet = &Sheet{}

// SelectorRule is a rule which matches if any of its selectors match.
type SelectorRule struct {
	Selectors []Selector
	Decls     []Declaration
}

// NewRule creates a rule from a set of alternative selectors and an
// ordered list of declarations.
func NewRule(selectors []Selector, declarations ...Declaration) *SelectorRule {
	return &SelectorRule{Selectors: selectors, Decls: declarations}
}

// Matches returns true if at least one of the selectors matches n.
func (r *SelectorRule) Matches(n *dom.Node) bool {
	for _, sel := range r.Selectors {
		if sel.Matches(n) {
			return true
		}
	}
	return false
}

// Declarations returns the declarations of the rule.
func (r *SelectorRule) Declarations() []Declaration {
	return r.Decls
}

var _ Rule = &SelectorRule{}
