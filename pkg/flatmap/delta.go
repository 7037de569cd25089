package flatmap

import "reflect"

// Change records the old and new value of a key that exists on both
// sides of a diff with unequal values.
type Change[V any] struct {
	Old V
	New V
}

// Delta describes the structural difference between two maps. The three
// categories are disjoint; keys equal on both sides are omitted.
type Delta[K comparable, V any] struct {
	Added   map[K]V         // key only in b
	Removed map[K]V         // key only in a
	Changed map[K]Change[V] // key in both, values unequal
}

// Empty reports whether the delta carries no differences.
func (d Delta[K, V]) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Diff computes the difference between [a] and [b]: keys only in [b]
// are Added, keys only in [a] are Removed, keys in both with unequal
// values are Changed. Equality is value equality, not identity.
func Diff[M ~map[K]V, K comparable, V any](a, b M) Delta[K, V] {
	d := Delta[K, V]{
		Added:   make(map[K]V),
		Removed: make(map[K]V),
		Changed: make(map[K]Change[V]),
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			d.Removed[k] = va
			continue
		}
		if !equalValue(any(va), any(vb)) {
			d.Changed[k] = Change[V]{Old: va, New: vb}
		}
	}
	for k, vb := range b {
		if _, ok := a[k]; !ok {
			d.Added[k] = vb
		}
	}
	return d
}

// equalValue is a tight equality test that avoids reflection for the
// common scalar types and falls back to reflect.DeepEqual for the rest
// (structs, slices, nested maps, pointers, ...).
func equalValue(a, b any) bool {
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
