/*
Package dom provides the document tree consumed by the styling engine.

Status

Early draft: API may change frequently. Please stay patient.

Overview

A document is a tree of nodes. Every node is either an element (a tag name
together with a map of attributes) or a piece of text. Nodes own their children
exclusively; there are no back-references from children to parents, and a
tree is never modified once it has been constructed. The styled tree (package
styledtree) links to DOM nodes instead of copying them, so a DOM tree has to
outlive every styled tree derived from it.

DOM trees are either built by hand, using NewElement and NewText, or converted
from an HTML parse tree produced by golang.org/x/net/html
(see FromHTMLParseTree).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
