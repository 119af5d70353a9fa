package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/forestrie/go-suffixtree/stree"
)

// Source is the read-only surface of a suffix tree the renderer draws from.
type Source[S comparable] interface {
	Root() stree.Ref
	Enumerate(ref stree.Ref) (stree.NodeView, error)
	Label(e stree.EdgeView) []S
}

// Stepper advances a match one pattern symbol at a time.
type Stepper[S comparable] interface {
	Step(sym S) stree.Locus
	Matched() []S
}

// Graph builds a directed graph of the tree. Leaves are labelled with their
// rank, edges with their symbols, and suffix links are dashed.
func Graph[S comparable](src Source[S], opts ...Option) (*gographviz.Graph, error) {
	o := newOptions(opts)

	g := gographviz.NewGraph()
	if err := g.SetName(o.Name); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	type link struct{ from, to stree.Ref }
	var links []link

	stack := []stree.Ref{src.Root()}
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v, err := src.Enumerate(ref)
		if err != nil {
			return nil, err
		}

		attrs := map[string]string{"label": dotQuote(nodeLabel(v))}
		if hl, ok := o.Highlight[ref]; ok {
			attrs["label"] = dotQuote(hl)
			attrs["style"] = "filled"
			attrs["fillcolor"] = "red"
		}
		if err := g.AddNode(o.Name, nodeID(ref), attrs); err != nil {
			return nil, err
		}

		for _, e := range v.Edges {
			label := formatLabel(o.Format, src.Label(e))
			if err := g.AddEdge(nodeID(ref), nodeID(e.Child), true, map[string]string{"label": dotQuote(label)}); err != nil {
				return nil, err
			}
		}
		for i := len(v.Edges) - 1; i >= 0; i-- {
			stack = append(stack, v.Edges[i].Child)
		}
		if v.SuffixLink != stree.NoRef {
			links = append(links, link{from: ref, to: v.SuffixLink})
		}
	}

	for _, l := range links {
		if err := g.AddEdge(nodeID(l.from), nodeID(l.to), true, map[string]string{"style": "dashed"}); err != nil {
			return nil, err
		}
	}

	if o.Log != nil {
		o.Log.Debugf("render graph %s: nodes=%d, edges=%d, links=%d",
			o.Name, len(g.Nodes.Nodes), len(g.Edges.Edges), len(links))
	}
	return g, nil
}

// WriteDOT writes the DOT text of the tree to w.
func WriteDOT[S comparable](w io.Writer, src Source[S], opts ...Option) error {
	g, err := Graph(src, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}

// MatchFrames steps m through pattern and calls fn with one DOT graph per
// symbol. Each graph fills the node the match stands on and labels it with
// the current match.
func MatchFrames[S comparable](
	src Source[S], m Stepper[S], pattern []S, fn func(step int, dot string) error, opts ...Option,
) error {
	format := newOptions(opts).Format
	for i, sym := range pattern {
		loc := m.Step(sym)
		frameOpts := append(opts[:len(opts):len(opts)],
			WithName("pattern"+strconv.Itoa(i)),
			WithHighlight(loc.Node, formatLabel(format, m.Matched())),
		)
		g, err := Graph(src, frameOpts...)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := fn(i, g.String()); err != nil {
			return err
		}
	}
	return nil
}

func nodeID(ref stree.Ref) string {
	return "n" + strconv.FormatUint(uint64(ref), 10)
}

func nodeLabel(v stree.NodeView) string {
	if v.IsLeaf {
		return strconv.Itoa(v.LeafRank)
	}
	return ""
}

func formatLabel[S comparable](format func(any) string, syms []S) string {
	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(format(s))
	}
	return sb.String()
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
