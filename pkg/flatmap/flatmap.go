// Package flatmap provides helpers for single-level maps: merging,
// structural diffing, key extraction and fallback lookups.
//
// All functions are generic over `~map[K]V`. Pure variants never touch
// their inputs; the *Into variants mutate their first argument and say
// so in their name, so the mutation mode is always visible at the call
// site.
package flatmap

import (
	"fmt"
	"maps"
	"strings"
)

// KeyNotFoundError is returned by [ExtractStrict] and [Lookup] when none
// of the requested keys exist in the map. Keys holds every key that was
// tried, already stringified.
type KeyNotFoundError struct {
	Keys []string
}

func (e *KeyNotFoundError) Error() string {
	if len(e.Keys) == 1 {
		return "key not found: " + e.Keys[0]
	}
	return "none of the keys found: " + strings.Join(e.Keys, ", ")
}

// Merge returns a new map containing all keys of [a] and [b]. For keys
// present in both, the value from [b] wins.
func Merge[M ~map[K]V, K comparable, V any](a, b M) M {
	out := make(M, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// MergeInto copies all entries of [src] into [dst] and returns [dst].
func MergeInto[M ~map[K]V, K comparable, V any](dst, src M) M {
	maps.Copy(dst, src)
	return dst
}

// MergeAll merges any number of maps left to right, later maps
// overriding earlier ones. The inputs are left untouched.
func MergeAll[M ~map[K]V, K comparable, V any](ms ...M) M {
	out := make(M)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}

// Extract returns a new map containing only the given keys, silently
// skipping keys that are absent from [m].
func Extract[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// ExtractStrict is like [Extract] but fails with a [KeyNotFoundError] on
// the first requested key that is absent from [m].
func ExtractStrict[M ~map[K]V, K comparable, V any](m M, keys ...K) (M, error) {
	out := make(M, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			return nil, &KeyNotFoundError{Keys: []string{fmt.Sprint(k)}}
		}
		out[k] = v
	}
	return out, nil
}

// Lookup tries each key in order and returns the value of the first one
// present in [m]. If none are found it fails with a [KeyNotFoundError]
// naming all attempted keys.
func Lookup[M ~map[K]V, K comparable, V any](m M, keys ...K) (V, error) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, nil
		}
	}
	tried := make([]string, len(keys))
	for i, k := range keys {
		tried[i] = fmt.Sprint(k)
	}
	var zero V
	return zero, &KeyNotFoundError{Keys: tried}
}

// LookupOr is like [Lookup] but returns [def] instead of an error when
// none of the keys are present.
func LookupOr[M ~map[K]V, K comparable, V any](m M, def V, keys ...K) V {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return def
}

// Invert swaps keys and values. If a value appears more than once in
// [m], the surviving key is whichever one map iteration visits last,
// which is unspecified.
func Invert[M ~map[K]V, K, V comparable](m M) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
