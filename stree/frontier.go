package stree

// Frontier is the construction state carried from one Append to the next.
//
// Node and K are the active point: reading template[K:Len) from Node reaches
// the longest suffix that is still implicit. NextRank is the rank the next
// leaf will get, which is also the start offset of that suffix.
type Frontier struct {
	Node     Ref
	K        int
	NextRank int
}

func newFrontier() Frontier {
	return Frontier{Node: RootRef}
}
