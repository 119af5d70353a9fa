package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-suffixtree/stree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bananaTree(t *testing.T) *stree.Tree[byte] {
	tr := stree.New[byte]()
	require.NoError(t, tr.Append([]byte("banana$")...))
	return tr
}

func TestGraphBanana(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tr := bananaTree(t)
	g, err := Graph[byte](tr, WithLogger(logger.Sugar))
	require.NoError(t, err)

	require.Len(t, g.Nodes.Nodes, tr.NodeCount())

	var dashed, labelled int
	for _, e := range g.Edges.Edges {
		if e.Attrs[gographviz.Attr("style")] == "dashed" {
			dashed++
			continue
		}
		labelled++
	}
	// three internal nodes each carry a suffix link
	assert.Equal(t, 3, dashed)
	assert.Equal(t, tr.NodeCount()-1, labelled)

	root := g.Nodes.Lookup["n0"]
	require.NotNil(t, root)
	assert.Equal(t, `""`, root.Attrs[gographviz.Attr("label")])
}

func TestWriteDOT(t *testing.T) {
	tr := bananaTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDOT[byte](&buf, tr, WithName("banana")))
	dot := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(dot), "digraph banana"))
	assert.Contains(t, dot, `"banana$"`)
	assert.Contains(t, dot, `"na$"`)
	assert.Contains(t, dot, "dashed")
}

func TestWriteDOTHighlight(t *testing.T) {
	tr := bananaTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDOT[byte](&buf, tr, WithHighlight(stree.RootRef, "here")))
	assert.Contains(t, buf.String(), `"here"`)
	assert.Contains(t, buf.String(), "red")
}

func TestWriteDOTSymbolFormatter(t *testing.T) {
	tr := stree.New[int]()
	require.NoError(t, tr.Append(1, 2, 1, 3))

	var buf bytes.Buffer
	err := WriteDOT[int](&buf, tr, WithSymbolFormatter(func(sym any) string {
		return "<" + formatSymbol(sym) + ">"
	}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"<2><1><3>"`)
}

func TestMatchFrames(t *testing.T) {
	tr := bananaTree(t)
	pattern := []byte("xanan")

	var frames []string
	err := MatchFrames[byte](tr, tr.NewMatcher(), pattern, func(step int, dot string) error {
		require.Equal(t, len(frames), step)
		frames = append(frames, dot)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, len(pattern))

	assert.Contains(t, frames[0], "pattern0")
	assert.Contains(t, frames[4], "pattern4")
	assert.Contains(t, frames[4], `"anan"`)
	for _, f := range frames {
		assert.Contains(t, f, "red")
	}

	// Rendering never changes the tree.
	assert.Equal(t, []byte("anan"), tr.MatchPatternSuffix(pattern))
	assert.Equal(t, 7, tr.LeafCount())
}
