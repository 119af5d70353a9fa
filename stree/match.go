package stree

// Locus is where a Matcher stands after a step. Pattern[Start:End) is the
// longest suffix of the pattern seen so far that occurs in the template, and
// Node is the deepest explicit node on its path.
type Locus struct {
	Node  Ref
	Start int
	End   int
}

// Matcher scans a pattern one symbol at a time, tracking the longest suffix
// of the scanned prefix that occurs in the template. It only reads the tree;
// an Append while a scan is in progress invalidates it, call Reset after.
//
// The position is kept canonical: the path of s spells pattern[start:k) and
// pattern[k:p) is the remainder along the edge below s.
type Matcher[S comparable] struct {
	t       *Tree[S]
	pattern []S

	s     Ref
	start int
	k     int
	p     int
}

func (t *Tree[S]) NewMatcher() *Matcher[S] {
	return &Matcher[S]{t: t, s: RootRef}
}

// Reset forgets the scanned symbols.
func (m *Matcher[S]) Reset() {
	m.pattern = m.pattern[:0]
	m.s, m.start, m.k, m.p = RootRef, 0, 0, 0
}

// Step scans one more pattern symbol.
func (m *Matcher[S]) Step(sym S) Locus {
	m.pattern = append(m.pattern, sym)

	for !m.canExtend(sym) {
		if m.s == RootRef && m.k == m.p {
			// Nothing ends here, not even the empty suffix extended by sym.
			m.start = len(m.pattern)
			m.k, m.p = m.start, m.start
			return m.Locus()
		}
		if m.s != RootRef {
			m.s = m.t.suffixLink(m.s)
		} else {
			// At the root the oldest matched symbol is dropped directly.
			m.k++
		}
		m.start++
		m.s, m.k = m.t.canonize(m.s, m.k, m.p, m.pattern)
	}

	m.p++
	m.s, m.k = m.t.canonize(m.s, m.k, m.p, m.pattern)
	return m.Locus()
}

func (m *Matcher[S]) canExtend(sym S) bool {
	if m.k == m.p {
		_, ok := m.t.arena.node(m.s).children[sym]
		return ok
	}
	e := m.t.arena.edgeFrom(m.s, m.pattern[m.k])
	pos := e.start + m.p - m.k
	return pos < m.t.tmpl.end(e) && m.t.tmpl.at(pos) == sym
}

func (m *Matcher[S]) Locus() Locus {
	return Locus{Node: m.s, Start: m.start, End: m.p}
}

// Matched returns the current match as a sub-slice of the scanned pattern.
func (m *Matcher[S]) Matched() []S {
	return m.pattern[m.start:m.p]
}

// MatchRange returns the bounds of the longest suffix of pattern that occurs
// in the template.
func (t *Tree[S]) MatchRange(pattern []S) (start, end int) {
	m := t.NewMatcher()
	m.pattern = make([]S, 0, len(pattern))
	for _, sym := range pattern {
		m.Step(sym)
	}
	return m.start, m.p
}

// MatchPatternSuffix returns the longest suffix of pattern that occurs as a
// substring of the template. The result is a sub-slice of pattern and is
// empty when no symbol of pattern occurs. The tree is not modified.
func (t *Tree[S]) MatchPatternSuffix(pattern []S) []S {
	start, end := t.MatchRange(pattern)
	return pattern[start:end]
}

// Contains reports whether pattern occurs as a substring of the template.
func (t *Tree[S]) Contains(pattern []S) bool {
	start, end := t.MatchRange(pattern)
	return start == 0 && end == len(pattern)
}
