package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type payload struct{ name string }

func buildTree() *Node[*payload] {
	// a
	// ├── b
	// │   ├── d
	// │   └── e
	// └── c
	a := NewNode(&payload{"a"})
	b := NewNode(&payload{"b"})
	b.AddChild(NewNode(&payload{"d"})).AddChild(NewNode(&payload{"e"}))
	a.AddChild(b).AddChild(NewNode(&payload{"c"}))
	return a
}

func TestNodeChildren(t *testing.T) {
	root := buildTree()
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	b, ok := root.Child(0)
	if !ok || b.Payload.name != "b" {
		t.Fatalf("expected first child to be b, is %v", b)
	}
	if b.Parent() != root {
		t.Errorf("expected parent of b to be root")
	}
	if root.IndexOfChild(b) != 0 {
		t.Errorf("expected index of b to be 0, is %d", root.IndexOfChild(b))
	}
	if _, ok := root.Child(5); ok {
		t.Errorf("expected child #5 to not exist")
	}
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	var names string
	err := TopDown(buildTree(), func(n *Node[*payload], _ *Node[*payload], _ int) error {
		names += n.Payload.name
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if names != "abdec" {
		t.Errorf("expected pre-order 'abdec', have %q", names)
	}
}

func TestTopDownSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	var names string
	err := TopDown(buildTree(), func(n *Node[*payload], _ *Node[*payload], _ int) error {
		names += n.Payload.name
		if n.Payload.name == "b" {
			return SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if names != "abc" {
		t.Errorf("expected 'abc', have %q", names)
	}
	boom := errors.New("boom")
	err = TopDown(buildTree(), func(n *Node[*payload], _ *Node[*payload], _ int) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected error to be propagated, have %v", err)
	}
}

func TestBottomUpRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	root := buildTree()
	if err := BottomUp(root, CalcRank[*payload]); err != nil {
		t.Fatal(err)
	}
	if root.Rank != 5 {
		t.Errorf("expected rank of root to be 5, is %d", root.Rank)
	}
	leafs := Select(root, NodeIsLeaf[*payload]())
	if len(leafs) != 3 {
		t.Errorf("expected 3 leafs, have %d", len(leafs))
	}
	if err := TopDown[*payload](nil, nil); err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree, have %v", err)
	}
}
