package stree

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Tree performs online construction of a suffix tree over an append-only
// template of comparable symbols.
//
// A Tree is not safe for concurrent use.
type Tree[S comparable] struct {
	opts Options
	log  logger.Logger

	tmpl  template[S]
	arena arena[S]

	st Frontier
}

func New[S comparable](opts ...Option) *Tree[S] {
	t := &Tree[S]{st: newFrontier()}
	for _, o := range opts {
		o(&t.opts)
	}
	t.log = t.opts.Log
	root := t.arena.alloc(NoRank)
	if root != RootRef {
		panic(fmt.Errorf("%w: root allocated at %d", ErrInvariant, root))
	}
	return t
}

// Frontier exports the construction state reached by the last Append.
func (t *Tree[S]) Frontier() Frontier {
	return t.st
}

// Append extends the template with symbols and folds each of them into the
// tree.
//
// Appending A and then B yields the same tree as appending A+B. If a length
// bound is configured and the new length would reach it, Append returns
// ErrTemplateTooLong and changes nothing.
func (t *Tree[S]) Append(symbols ...S) error {
	if len(symbols) == 0 {
		return nil
	}
	from := t.tmpl.len()
	to := from + len(symbols)
	if bound := t.opts.MaxTemplateLength; bound > 0 && to >= bound {
		if t.log != nil {
			t.log.Infof("stree append rejected: len=%d, adding=%d, bound=%d", from, len(symbols), bound)
		}
		return fmt.Errorf("%w: length %d, bound %d", ErrTemplateTooLong, to, bound)
	}

	t.tmpl.extend(symbols)

	// One phase per new symbol. Each phase starts from the active point the
	// previous one left behind.
	for i := from + 1; i <= to; i++ {
		s, k := t.update(t.st.Node, t.st.K, i)
		t.st.Node, t.st.K = t.canonize(s, k, i, t.tmpl.syms)
	}

	if t.log != nil {
		t.log.Debugf("stree append: len=%d, leaves=%d, nodes=%d, active=(%d,%d)",
			to, t.st.NextRank, t.arena.len(), t.st.Node, t.st.K)
	}
	return nil
}

// update adds template[i-1] to every suffix of template[:i-1] that does not
// already continue with it, stopping at the first one that does.
func (t *Tree[S]) update(s Ref, k, i int) (Ref, int) {
	sym := t.tmpl.at(i - 1)

	// RootRef doubles as "no link pending".
	oldr := RootRef

	matched, r := t.testAndSplit(s, k, i-1, sym)
	for !matched {
		t.addLeaf(r, i-1)
		if oldr != RootRef {
			t.arena.node(oldr).link = r
		}
		oldr = r
		s, k = t.canonize(t.suffixLink(s), k, i-1, t.tmpl.syms)
		matched, r = t.testAndSplit(s, k, i-1, sym)
	}
	if oldr != RootRef {
		t.arena.node(oldr).link = s
	}
	return s, k
}

// testAndSplit reports whether the position reached by reading
// template[k:p) from s already continues with sym. If it does not and the
// position is inside an edge, the edge is split and the new node returned.
func (t *Tree[S]) testAndSplit(s Ref, k, p int, sym S) (bool, Ref) {
	if k < p {
		e := t.arena.edgeFrom(s, t.tmpl.at(k))
		split := e.start + p - k
		next := t.tmpl.at(split)
		if next == sym {
			return true, s
		}
		r := t.arena.alloc(NoRank)
		t.arena.node(r).children[next] = edge{start: split, end: e.end, child: e.child}
		t.arena.node(s).children[t.tmpl.at(e.start)] = edge{start: e.start, end: split, child: r}
		return false, r
	}

	if s == aboveRoot {
		return true, s
	}
	_, ok := t.arena.node(s).children[sym]
	return ok, s
}

// canonize moves (s,k) down past every edge that [k,p) fully spans. Edge keys
// are read from src, which is the template during construction and the
// pattern during matching.
func (t *Tree[S]) canonize(s Ref, k, p int, src []S) (Ref, int) {
	if k == p {
		return s, k
	}
	if s == aboveRoot {
		s = RootRef
		k++
		if k == p {
			return s, k
		}
	}

	e := t.arena.edgeFrom(s, src[k])
	for e.span() <= p-k {
		k += e.span()
		s = e.child
		if k == p {
			break
		}
		e = t.arena.edgeFrom(s, src[k])
	}
	return s, k
}

// suffixLink returns the node spelling the path of s without its first
// symbol. The root's link is the position above it.
func (t *Tree[S]) suffixLink(s Ref) Ref {
	if s == RootRef {
		return aboveRoot
	}
	link := t.arena.node(s).link
	if link == NoRef {
		panic(fmt.Errorf("%w: node %d has no suffix link", ErrInvariant, s))
	}
	return link
}

// addLeaf attaches an open edge template[pos:) under r.
func (t *Tree[S]) addLeaf(r Ref, pos int) {
	leaf := t.arena.alloc(t.st.NextRank)
	t.st.NextRank++
	t.arena.node(r).children[t.tmpl.at(pos)] = edge{start: pos, end: openEnd, child: leaf}
}
