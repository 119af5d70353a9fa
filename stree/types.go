package stree

import (
	"errors"
	"math"
)

// Ref is a node arena slot index.
type Ref uint32

const NoRef = ^Ref(0)

// RootRef is always the first arena slot.
const RootRef Ref = 0

// aboveRoot is the virtual predecessor of the root. It is never stored in the
// arena.
const aboveRoot = NoRef - 1

// NoRank is the LeafRank reported for internal nodes and the root.
const NoRank = -1

// openEnd marks an edge whose end tracks the template length.
const openEnd = -1

// unbounded is the span canonize uses for open edges: a canonical position is
// never past the end of a leaf.
const unbounded = math.MaxInt

var (
	ErrTemplateTooLong = errors.New("stree: template length reaches the configured bound")
	ErrRefOutOfRange   = errors.New("stree: node ref out of range")
	ErrInvariant       = errors.New("stree: internal invariant violated")
)
