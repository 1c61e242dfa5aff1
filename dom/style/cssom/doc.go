/*
Package cssom provides functionality for CSS styling.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
This package defines the object model for stylesheets (StyleSheet, Rule,
Selector, Declaration) and the style resolver, which applies a stylesheet
to a DOM tree and produces a styled tree (package styledtree).

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
The resolver only asks a rule wether it matches a DOM node; selector grammar
is not its business. A small set of selectors (universal, type and attribute
selectors) is implemented in this package; a concrete implementation for
stylesheets from CSS source text may be found in sub-package douceuradapter,
which relies on https://godoc.org/github.com/andybalholm/cascadia for selector
matching.

Cascading is simplified compared to CSS proper: later rules win over earlier
ones, specificity is not considered. Two properties are defaulted to their
CSS initial values, `display` (inline) and `font-weight` (normal). Nodes with
`display: none` are pruned from the styled tree, together with their subtrees.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
