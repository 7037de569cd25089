package treedict

import (
	"iter"
	"maps"
	"slices"
)

// Leaves iterates depth-first over every leaf of [t], yielding the path
// to the leaf and its value. Sibling order follows Go's map iteration
// order and is therefore unspecified; use [SortedLeaves] for a
// deterministic order. Each range over the returned sequence is a fresh
// traversal.
//
// The yielded path is reused between iterations; callers that keep it
// must copy it (see [Path.Clone]).
func Leaves(t Tree) iter.Seq2[Path, any] {
	return LeavesDepth(t, 0)
}

// LeavesDepth is like [Leaves] but stops descending at [depth] keys: a
// subtree sitting at that depth is yielded as the value itself. A depth
// of zero or less means no limit.
func LeavesDepth(t Tree, depth int) iter.Seq2[Path, any] {
	return func(yield func(Path, any) bool) {
		walk(t, make(Path, 0, 8), depth, yield, maps.Keys)
	}
}

// SortedLeaves is [Leaves] with sibling keys visited in sorted order.
func SortedLeaves(t Tree) iter.Seq2[Path, any] {
	return func(yield func(Path, any) bool) {
		walk(t, make(Path, 0, 8), 0, yield, sortedKeys)
	}
}

func sortedKeys(t Tree) iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(t)))
}

// walk recurses through [t], extending [path] as it descends. It returns
// false once [yield] asked to stop.
func walk(t Tree, path Path, depth int, yield func(Path, any) bool, keys func(Tree) iter.Seq[string]) bool {
	for k := range keys(t) {
		v := t[k]
		path = append(path, k)
		sub, ok := isTree(v)
		if ok && (depth <= 0 || len(path) < depth) {
			if !walk(sub, path, depth, yield, keys) {
				return false
			}
		} else if !yield(path, v) {
			return false
		}
		path = path[:len(path)-1]
	}
	return true
}

// Entries collects every leaf of [t] into a slice, each with an
// independent copy of its path. The round trip `New(Entries(t)...)`
// reproduces [t].
func Entries(t Tree) []Entry {
	var out []Entry
	for p, v := range Leaves(t) {
		out = append(out, Entry{Path: p.Clone(), Value: v})
	}
	return out
}
