package treedict

// Get descends through the keys of [path] and returns the value at the
// end. It fails with a [PathNotFoundError] when an intermediate key is
// missing, an intermediate value is not a subtree, or the final key is
// absent. A zero-length path returns the tree itself.
func Get(t Tree, path Path) (any, error) {
	var cur any = t
	for _, k := range path {
		sub, ok := isTree(cur)
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
		v, ok := sub[k]
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
		cur = v
	}
	return cur, nil
}

// GetOr is like [Get] but returns [def] when the path does not resolve.
func GetOr(t Tree, path Path, def any) any {
	v, err := Get(t, path)
	if err != nil {
		return def
	}
	return v
}

// Has reports whether [path] resolves in [t].
func Has(t Tree, path Path) bool {
	_, err := Get(t, path)
	return err == nil
}
