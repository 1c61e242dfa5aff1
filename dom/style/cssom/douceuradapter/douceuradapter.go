/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

CSS source text is parsed with github.com/aymerick/douceur, selectors are
compiled and matched with github.com/andybalholm/cascadia, and declaration
values are classified with style.ParseValue.

Only qualified rules (selectors plus a declaration block) take part in styling.
At-rules (@media, @font-face, …) are skipped, as are rules none of whose
selectors can be compiled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []cssom.Rule
}

// Parse parses CSS source text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles. Selectors of the rules are
// compiled once, during wrapping.
func Wrap(c *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{}
	if c == nil {
		return sheet
	}
	for _, r := range c.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		if rule := compileRule(r); rule != nil {
			sheet.rules = append(sheet.rules, rule)
		}
	}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return sheet.rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// --- Rules -----------------------------------------------------------------

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	prelude      string
	selectors    []cssom.Selector
	declarations []cssom.Declaration
	important    map[string]bool
}

func compileRule(r *css.Rule) *Rule {
	rule := &Rule{prelude: r.Prelude}
	selectors := r.Selectors
	if len(selectors) == 0 {
		selectors = strings.Split(r.Prelude, ",")
	}
	for _, s := range selectors {
		sel, err := CompileSelector(s)
		if err != nil {
			tracer().Infof("dropping selector %q: %v", s, err)
			continue
		}
		rule.selectors = append(rule.selectors, sel)
	}
	if len(rule.selectors) == 0 {
		tracer().Infof("dropping rule %q: no valid selector", r.Prelude)
		return nil
	}
	for _, d := range r.Declarations {
		rule.declarations = append(rule.declarations, cssom.Declaration{
			Name:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value: style.ParseValue(d.Value),
		})
		if d.Important {
			if rule.important == nil {
				rule.important = make(map[string]bool)
			}
			rule.important[strings.ToLower(d.Property)] = true
		}
	}
	return rule
}

// Selector returns the prelude / selectors of the rule.
func (r *Rule) Selector() string {
	return r.prelude
}

// Matches returns true if any of the selectors of r matches n.
//
// Interface cssom.Rule
func (r *Rule) Matches(n *dom.Node) bool {
	for _, sel := range r.selectors {
		if sel.Matches(n) {
			return true
		}
	}
	return false
}

// Declarations returns the declarations of the rule, in source order.
//
// Interface cssom.Rule
func (r *Rule) Declarations() []cssom.Declaration {
	return r.declarations
}

// IsImportant returns true if a style key is marked as important ("!").
// Importance is informational only and does not take part in the cascade.
func (r *Rule) IsImportant(key string) bool {
	return r.important[key]
}

var _ cssom.Rule = &Rule{}

// --- Selectors -------------------------------------------------------------

// Selector is a cssom.Selector backed by cascadia.
type Selector struct {
	source string
	sel    cascadia.Selector
}

// CompileSelector compiles a single CSS selector (no selector groups).
func CompileSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}
	sel, err := cascadia.Compile(s)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	return Selector{source: s, sel: sel}, nil
}

// Matches is part of interface cssom.Selector. Nodes converted from an HTML
// parse tree are matched in the context of that tree, so combinators work.
// Other nodes are matched as detached elements.
func (s Selector) Matches(n *dom.Node) bool {
	if s.sel == nil || n == nil {
		return false
	}
	if _, ok := n.Element(); !ok {
		return false
	}
	return s.sel.Match(dom.ToHTMLNode(n))
}

func (s Selector) String() string {
	return s.source
}

var _ cssom.Selector = Selector{}

// --- Embedded style elements -----------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order. Style elements which
// cannot be parsed are skipped; their errors are combined into the returned
// error, while the remaining sheets are still usable.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	var errs error
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head, &errs)
	sheets = append(sheets, extractStyles(body, &errs)...)
	return sheets, errs
}

// Merge concatenates the rules of a list of stylesheets into a new stylesheet.
func Merge(sheets ...*CSSStyles) *CSSStyles {
	merged := &CSSStyles{}
	for _, s := range sheets {
		if s != nil {
			merged.AppendRules(s)
		}
	}
	return merged
}

func extractStyles(h *html.Node, errs *error) []*CSSStyles {
	if h == nil {
		return nil
	}
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("embedded style: %v", err)
			*errs = multierr.Append(*errs, err)
			continue
		}
		sheets = append(sheets, c)
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
