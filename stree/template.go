package stree

// template is the append-only symbol buffer every edge label refers into.
type template[S comparable] struct {
	syms []S
}

func (tp *template[S]) len() int {
	return len(tp.syms)
}

func (tp *template[S]) at(i int) S {
	return tp.syms[i]
}

func (tp *template[S]) extend(syms []S) {
	tp.syms = append(tp.syms, syms...)
}

// end resolves an edge end, reading open ends from the current length.
func (tp *template[S]) end(e edge) int {
	if e.end == openEnd {
		return len(tp.syms)
	}
	return e.end
}

// slice copies template[start:end).
func (tp *template[S]) slice(start, end int) []S {
	out := make([]S, end-start)
	copy(out, tp.syms[start:end])
	return out
}
