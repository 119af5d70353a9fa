package stree

import (
	"fmt"
	"slices"
)

// EdgeView describes one outgoing edge. The label is template[Start:End);
// for open edges End is the template length at the time of the call.
type EdgeView struct {
	Start    int
	End      int
	Open     bool
	Child    Ref
	IsLeaf   bool
	LeafRank int
}

// NodeView is a read-only snapshot of one node. SuffixLink is NoRef for
// leaves and the root. Edges are ordered by label start.
type NodeView struct {
	Ref        Ref
	IsLeaf     bool
	LeafRank   int
	SuffixLink Ref
	Edges      []EdgeView
}

// Leaf pairs a leaf rank with its root-to-leaf label.
type Leaf[S comparable] struct {
	Rank  int
	Label []S
}

func (t *Tree[S]) Root() Ref {
	return RootRef
}

// Len returns the template length.
func (t *Tree[S]) Len() int {
	return t.tmpl.len()
}

// LeafCount returns the number of leaves, which is also the next leaf rank.
func (t *Tree[S]) LeafCount() int {
	return t.st.NextRank
}

// NodeCount returns the number of explicit nodes, the root and leaves
// included.
func (t *Tree[S]) NodeCount() int {
	return t.arena.len()
}

// Template returns a copy of the template.
func (t *Tree[S]) Template() []S {
	return t.tmpl.slice(0, t.tmpl.len())
}

// Label returns a copy of the symbols on e.
func (t *Tree[S]) Label(e EdgeView) []S {
	return t.tmpl.slice(e.Start, e.End)
}

// Enumerate returns the view of the node at ref.
func (t *Tree[S]) Enumerate(ref Ref) (NodeView, error) {
	if !t.arena.has(ref) {
		return NodeView{}, fmt.Errorf("%w: ref=%d, nodes=%d", ErrRefOutOfRange, ref, t.arena.len())
	}
	n := t.arena.node(ref)
	v := NodeView{
		Ref:        ref,
		IsLeaf:     n.isLeaf(),
		LeafRank:   n.rank,
		SuffixLink: n.link,
	}
	if len(n.children) == 0 {
		return v, nil
	}
	v.Edges = make([]EdgeView, 0, len(n.children))
	for _, e := range n.children {
		child := t.arena.node(e.child)
		v.Edges = append(v.Edges, EdgeView{
			Start:    e.start,
			End:      t.tmpl.end(e),
			Open:     e.end == openEnd,
			Child:    e.child,
			IsLeaf:   child.isLeaf(),
			LeafRank: child.rank,
		})
	}
	// Sibling labels start with distinct symbols, so their starts differ.
	slices.SortFunc(v.Edges, func(a, b EdgeView) int { return a.Start - b.Start })
	return v, nil
}

// Walk calls fn for every node in preorder, starting at the root. Walking
// stops at the first error fn returns.
func (t *Tree[S]) Walk(fn func(NodeView) error) error {
	stack := []Ref{RootRef}
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v, err := t.Enumerate(ref)
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
		for i := len(v.Edges) - 1; i >= 0; i-- {
			stack = append(stack, v.Edges[i].Child)
		}
	}
	return nil
}

// Leaves returns every leaf ordered by rank, each with the label spelled by
// its root path.
func (t *Tree[S]) Leaves() []Leaf[S] {
	leaves := make([]Leaf[S], 0, t.st.NextRank)

	type frame struct {
		ref   Ref
		label []S
	}
	stack := []frame{{ref: RootRef}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.arena.node(f.ref)
		if n.isLeaf() {
			leaves = append(leaves, Leaf[S]{Rank: n.rank, Label: f.label})
			continue
		}
		for _, e := range n.children {
			label := make([]S, 0, len(f.label)+t.tmpl.end(e)-e.start)
			label = append(label, f.label...)
			label = append(label, t.tmpl.syms[e.start:t.tmpl.end(e)]...)
			stack = append(stack, frame{ref: e.child, label: label})
		}
	}
	slices.SortFunc(leaves, func(a, b Leaf[S]) int { return a.Rank - b.Rank })
	return leaves
}
