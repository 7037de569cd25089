// Package treedict manages nested string-keyed maps arranged as a tree:
// maps containing other maps as values, and so on. Leaves are addressed
// by a [Path], an ordered sequence of keys descending through successive
// subtrees.
//
// Trees must be acyclic: a tree may not contain itself, directly or
// transitively, as a value. All recursion in this package relies on that
// invariant.
//
// Pure operations return fresh trees and never mutate their inputs; the
// *Into variants mutate their first argument. When an in-place operation
// fails, the tree may have been partially modified and should be
// discarded.
package treedict

import "strings"

// Tree is a nested string-keyed map. It is an alias, not a defined type,
// so any plain map[string]any (for example the output of a JSON decoder)
// is a Tree as-is.
type Tree = map[string]any

// Path locates a value inside a [Tree] by descending through successive
// subtree keys.
type Path []string

// String returns the dot-joined form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Entry is a single (path, value) pair, the unit [New], [Update] and
// [Entries] work with.
type Entry struct {
	Path  Path
	Value any
}

// PathNotFoundError is returned when a path cannot be resolved: an
// intermediate key is missing, an intermediate value is not a subtree,
// or the final key is absent.
type PathNotFoundError struct {
	Path Path
}

func (e *PathNotFoundError) Error() string {
	return "path not found: " + e.Path.String()
}

// ConflictError is returned when building or setting a path would cross
// an existing leaf, or replace an existing subtree during a build.
type ConflictError struct {
	Path   Path   // the path that was being written
	At     Path   // the prefix where the collision happened
	Reason string // "leaf in the way" or "subtree in the way"
}

func (e *ConflictError) Error() string {
	return "path conflict at " + e.At.String() + " while writing " + e.Path.String() + ": " + e.Reason
}

// isTree reports whether [v] is itself a subtree.
func isTree(v any) (Tree, bool) {
	t, ok := v.(Tree)
	return t, ok
}
