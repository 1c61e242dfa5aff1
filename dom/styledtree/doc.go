/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree parallels a DOM tree (package dom): every node of the styled
tree links to the DOM node it decorates and carries the node's resolved CSS
properties. Nodes with `display: none` do not have a counterpart in the styled
tree, and neither do their descendants.

Styled nodes do not copy DOM nodes. Clients have to keep the DOM alive for as
long as any styled tree derived from it is in use.

Styled trees are created by package cssom and are not modified afterwards.
They are consumed by layout and rendering.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
