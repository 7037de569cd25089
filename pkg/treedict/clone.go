package treedict

// Clone returns a deep copy of [t]: every subtree is copied, leaf values
// are carried over as-is. Mutating the copy's structure never affects
// the original (leaf values of reference types are still shared).
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		if sub, ok := isTree(v); ok {
			out[k] = Clone(sub)
		} else {
			out[k] = v
		}
	}
	return out
}
