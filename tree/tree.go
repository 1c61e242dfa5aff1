package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.tree")
}

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action to stop descending below the
// current node. It is not reported as an error by TopDown.
var SkipChildren = errors.New("skip children")

// Action is a function type to operate on tree nodes. position is the index
// of n within the children of parent (0 for the root).
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(n *Node[T]) bool

// TopDown traverses a tree starting at (and including) the root node.
// The traversal guarantees that parents are always processed before
// their children, and that siblings are processed in order.
//
// If the action function returns an error for a node, the walk is aborted and
// the error is returned, with the exception of SkipChildren.
func TopDown[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	return topDown(root, nil, 0, action)
}

func topDown[T comparable](n *Node[T], parent *Node[T], position int, action Action[T]) error {
	if err := action(n, parent, position); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		tracer().Debugf("top-down walk aborted at %v: %v", n, err)
		return err
	}
	for i, ch := range n.Children() {
		if err := topDown(ch, n, i, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp traverses a tree starting at the leafs of the tree.
// The traversal guarantees that parents are not processed before
// all of their children.
//
// If the action function returns an error for a node, the walk is aborted
// and the error is returned.
func BottomUp[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	return bottomUp(root, nil, 0, action)
}

func bottomUp[T comparable](n *Node[T], parent *Node[T], position int, action Action[T]) error {
	for i, ch := range n.Children() {
		if err := bottomUp(ch, n, i, action); err != nil {
			return err
		}
	}
	return action(n, parent, position)
}

// Select collects all nodes of a tree matching a predicate, in document order
// (pre-order). The root is included in the search.
func Select[T comparable](root *Node[T], pred Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	_ = TopDown(root, func(n *Node[T], _ *Node[T], _ int) error {
		if pred(n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool {
		return n.ChildCount() == 0
	}
}

// CalcRank is an action for bottom-up processing. It calculates the 'rank'-member
// for each node, meaning: the number of nodes in the subtree rooted at n.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) error {
	r := uint32(1)
	for _, ch := range n.Children() {
		r += ch.Rank
	}
	n.Rank = r
	return nil
}
