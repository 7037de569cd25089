package treedict

import "reflect"

// Change records the old and new value of a leaf that differs between
// the two sides of a [Diff].
type Change struct {
	Old any
	New any
}

// Delta describes the structural difference between two trees. Keys
// holding subtrees on both sides are compared recursively and reported
// in Sub; everything else lands in Added, Removed or Changed. The four
// categories are disjoint, and keys equal on both sides are omitted.
type Delta struct {
	Added   map[string]any    // key only in b
	Removed map[string]any    // key only in a
	Changed map[string]Change // key in both, at least one side a leaf, unequal
	Sub     map[string]*Delta // key a subtree in both, with inner differences
}

// Empty reports whether the delta carries no differences.
func (d *Delta) Empty() bool {
	return d == nil ||
		(len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0 && len(d.Sub) == 0)
}

// Diff computes the difference between [a] and [b]. Subtrees present on
// both sides are diffed recursively; their delta appears under Sub only
// when it is non-empty. Leaf comparisons use value equality.
func Diff(a, b Tree) *Delta {
	d := &Delta{
		Added:   make(map[string]any),
		Removed: make(map[string]any),
		Changed: make(map[string]Change),
		Sub:     make(map[string]*Delta),
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			d.Removed[k] = va
			continue
		}
		subA, okA := isTree(va)
		subB, okB := isTree(vb)
		if okA && okB {
			if sub := Diff(subA, subB); !sub.Empty() {
				d.Sub[k] = sub
			}
			continue
		}
		if !leafEqual(va, vb) {
			d.Changed[k] = Change{Old: va, New: vb}
		}
	}
	for k, vb := range b {
		if _, ok := a[k]; !ok {
			d.Added[k] = vb
		}
	}
	return d
}

// leafEqual is a tight equality test that avoids reflection for the
// common scalar types and falls back to reflect.DeepEqual for the rest.
func leafEqual(a, b any) bool {
	switch va := a.(type) {
	case string:
		vb, ok := b.(string)
		return ok && va == vb
	case int:
		vb, ok := b.(int)
		return ok && va == vb
	case int64:
		vb, ok := b.(int64)
		return ok && va == vb
	case float64:
		vb, ok := b.(float64)
		return ok && va == vb
	case bool:
		vb, ok := b.(bool)
		return ok && va == vb
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}
