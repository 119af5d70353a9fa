package stree

/*

# Online suffix trees over an append-only template

This package maintains a suffix tree for a template that only ever grows. New
symbols are folded into the existing tree with Ukkonen's online construction,
so a template fed in many small batches produces exactly the tree a single
batch would.

It follows the same style as the other forestrie index primitives:

- a small number of composable operations
- index arithmetic over a single backing buffer
- an explicit, resumable frontier state between batches

## Core invariants

After i symbols have been appended:

1. every suffix of template[:i] is spelled by some root path; the suffixes
   that are not also a prefix of another suffix end at a leaf whose rank is
   the suffix start offset
2. suffix links only connect explicit internal nodes, and a link from the node
   spelling aX targets the node spelling X
3. the outgoing edges of a node start with pairwise-distinct symbols
4. the template is never truncated or mutated in place

If the final symbol is unique (a terminator such as '$'), (1) gives exactly
one leaf per suffix.

## Edges reference the template

Edges do not copy symbols. Each edge stores a [start,end) range into the
template. Leaf edges are open: their end is read from the current template
length, so every leaf lengthens as symbols are appended without being
rewritten.

## Nodes live in an arena

Nodes are stored in a slot-indexed arena and referenced by Ref. Tree edges own
their child slot; suffix links are plain Refs. Nodes are never freed, which
matches the append-only template.

## The position above the root

Ukkonen's algorithm walks "above" the root when it shortens the empty suffix.
That position is not a node. The construction and matching code branch on it
explicitly: every symbol matches there, and reading one symbol from it lands
on the root.

## Reading the tree

Callers never see nodes directly. Enumerate, Walk and Leaves return value
views, which is what external renderers consume.

*/
