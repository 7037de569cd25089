package treedict

// SetInto writes [value] at [path] in place, creating intermediate
// subtrees as needed. Crossing an existing leaf is a [ConflictError]
// (the collision rule of [New]); the final key itself is overwritten
// unconditionally, even when it currently holds a subtree.
func SetInto(t Tree, path Path, value any) error {
	if len(path) == 0 {
		return &PathNotFoundError{Path: path}
	}
	cur := t
	for i, k := range path[:len(path)-1] {
		next, ok := cur[k]
		if !ok {
			sub := make(Tree)
			cur[k] = sub
			cur = sub
			continue
		}
		sub, ok := isTree(next)
		if !ok {
			return &ConflictError{Path: path, At: path[:i+1].Clone(), Reason: "leaf in the way"}
		}
		cur = sub
	}
	cur[path[len(path)-1]] = value
	return nil
}

// Set is the pure form of [SetInto]: it deep-copies [t], writes [value]
// at [path] in the copy and returns it. [t] is never modified, even on
// error.
func Set(t Tree, path Path, value any) (Tree, error) {
	out := Clone(t)
	if err := SetInto(out, path, value); err != nil {
		return nil, err
	}
	return out, nil
}
