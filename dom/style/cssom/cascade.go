package cssom

import (
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/cascade/maybe"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Resolver applies a stylesheet to DOM trees, producing styled trees.
// A Resolver holds no mutable state besides an optional worker budget; it may
// be used from multiple goroutines concurrently.
type Resolver struct {
	sheet   StyleSheet
	workers *semaphore.Weighted // nil: resolve sequentially
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithParallelism lets a resolver style sibling subtrees concurrently, using at
// most n additional goroutines at any time. n < 1 disables concurrency, which is
// the default. The resulting styled tree is identical to a sequential run.
func WithParallelism(n int) Option {
	return func(r *Resolver) {
		if n < 1 {
			r.workers = nil
			return
		}
		r.workers = semaphore.NewWeighted(int64(n))
	}
}

// NewResolver creates a style resolver for a stylesheet. sheet may be nil,
// which is treated like an empty stylesheet.
func NewResolver(sheet StyleSheet, opts ...Option) *Resolver {
	r := &Resolver{sheet: sheet}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve styles a DOM node and its subtree. It returns Nothing if the node
// resolves to `display: none`, i.e. it is not rendered at all.
func Resolve(node *dom.Node, sheet StyleSheet) maybe.Maybe[*styledtree.StyNode] {
	return NewResolver(sheet).Resolve(node)
}

// ResolveChildren styles a sequence of DOM nodes, dropping the ones which are
// not rendered. The order of the remaining nodes is preserved.
func ResolveChildren(nodes []*dom.Node, sheet StyleSheet) []*styledtree.StyNode {
	return NewResolver(sheet).ResolveChildren(nodes)
}

// Resolve styles a DOM node and its subtree, see function Resolve.
func (r *Resolver) Resolve(node *dom.Node) maybe.Maybe[*styledtree.StyNode] {
	if node == nil {
		return maybe.Nothing[*styledtree.StyNode]()
	}
	rules := r.rules()
	tracer().Debugf("styling %v with %d rules", node, len(rules))
	return r.resolve(node, rules)
}

// ResolveChildren styles a sequence of DOM nodes, see function ResolveChildren.
func (r *Resolver) ResolveChildren(nodes []*dom.Node) []*styledtree.StyNode {
	return r.resolveChildren(nodes, r.rules())
}

func (r *Resolver) rules() []Rule {
	if r.sheet == nil {
		return nil
	}
	return r.sheet.Rules()
}

func (r *Resolver) resolve(node *dom.Node, rules []Rule) maybe.Maybe[*styledtree.StyNode] {
	if node == nil {
		return maybe.Nothing[*styledtree.StyNode]()
	}
	props := cascade(node, rules)
	if !props.IsSet(style.Display) {
		props.Set(style.Display, style.InitialDisplay)
	}
	if d, _ := props.Property(style.Display); style.IsKeyword(d, "none") {
		// the subtree is never inspected, so we do not style it
		return maybe.Nothing[*styledtree.StyNode]()
	}
	if !props.IsSet(style.FontWeight) {
		props.Set(style.FontWeight, style.InitialFontWeight)
	}
	children := r.resolveChildren(node.Children(), rules)
	return maybe.Just(styledtree.NewNodeForDOMNode(node, props, children))
}

func (r *Resolver) resolveChildren(nodes []*dom.Node, rules []Rule) []*styledtree.StyNode {
	results := make([]maybe.Maybe[*styledtree.StyNode], len(nodes))
	if r.workers == nil || len(nodes) < 2 {
		for i, n := range nodes {
			results[i] = r.resolve(n, rules)
		}
		return maybe.Values(results)
	}
	var g errgroup.Group
	for i, n := range nodes {
		i, n := i, n
		if !r.workers.TryAcquire(1) { // budget exhausted: style in this goroutine
			results[i] = r.resolve(n, rules)
			continue
		}
		g.Go(func() error {
			defer r.workers.Release(1)
			results[i] = r.resolve(n, rules)
			return nil
		})
	}
	_ = g.Wait() // styling never fails
	return maybe.Values(results)
}

// cascade collects the declarations of all rules matching node. Rules are
// applied in stylesheet order, a later declaration for a property overwrites
// an earlier one.
func cascade(node *dom.Node, rules []Rule) *style.PropertyMap {
	props := style.NewPropertyMap()
	for _, rule := range rules {
		if !rule.Matches(node) {
			continue
		}
		for _, decl := range rule.Declarations() {
			props.Set(decl.Name, decl.Value)
		}
	}
	return props
}

// MatchingRules returns the rules of a stylesheet matching a DOM node,
// in stylesheet order.
func MatchingRules(node *dom.Node, sheet StyleSheet) []Rule {
	if node == nil || sheet == nil {
		return nil
	}
	var matching []Rule
	for _, rule := range sheet.Rules() {
		if rule.Matches(node) {
			matching = append(matching, rule)
		}
	}
	return matching
}
