package stree

import "fmt"

// edge labels the path to child with template[start:end). end may be openEnd.
type edge struct {
	start int
	end   int
	child Ref
}

// span is the label length as seen by canonize. Open edges are never fully
// spanned.
func (e edge) span() int {
	if e.end == openEnd {
		return unbounded
	}
	return e.end - e.start
}

// node is an explicit node. Leaves have a rank and no children; internal
// nodes have children, a rank of NoRank and, once their phase completes, a
// suffix link.
type node[S comparable] struct {
	children map[S]edge
	link     Ref
	rank     int
}

func (n *node[S]) isLeaf() bool {
	return n.rank != NoRank
}

// arena owns every node. Slots are never released.
type arena[S comparable] struct {
	nodes []node[S]
}

func (a *arena[S]) alloc(rank int) Ref {
	ref := Ref(len(a.nodes))
	n := node[S]{link: NoRef, rank: rank}
	if rank == NoRank {
		n.children = make(map[S]edge)
	}
	a.nodes = append(a.nodes, n)
	return ref
}

// node returns the slot for ref. The pointer is only valid until the next
// alloc.
func (a *arena[S]) node(ref Ref) *node[S] {
	return &a.nodes[ref]
}

func (a *arena[S]) has(ref Ref) bool {
	return uint64(ref) < uint64(len(a.nodes))
}

func (a *arena[S]) len() int {
	return len(a.nodes)
}

// edgeFrom returns the outgoing edge of s keyed by sym. A missing edge means
// the caller's position is not on the tree.
func (a *arena[S]) edgeFrom(s Ref, sym S) edge {
	e, ok := a.nodes[s].children[sym]
	if !ok {
		panic(fmt.Errorf("%w: node %d has no edge for %v", ErrInvariant, s, sym))
	}
	return e
}
