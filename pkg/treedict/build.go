package treedict

// New builds a tree from (path, value) entries, materializing every
// intermediate subtree. It fails with a [ConflictError] when one entry's
// path runs through another entry's leaf, or when an entry would replace
// a subtree that an earlier entry created (prefix collisions in either
// direction). Two entries with the same full path are not a conflict:
// the later one wins.
func New(entries ...Entry) (Tree, error) {
	t := make(Tree)
	if err := Update(t, entries...); err != nil {
		return nil, err
	}
	return t, nil
}

// Update inserts the given entries into [t] in place, following the same
// collision rules as [New]. On error the tree may hold a partial update.
func Update(t Tree, entries ...Entry) error {
	for _, e := range entries {
		if err := insert(t, e.Path, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// insert descends to the parent of the final path element, creating
// subtrees as needed, and writes the value under the strict collision
// rules: an intermediate leaf is never silently replaced by a subtree,
// and a subtree is never silently replaced by a leaf.
func insert(t Tree, path Path, value any) error {
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
	last := path[len(path)-1]
	if existing, ok := cur[last]; ok {
		if _, existingIsTree := isTree(existing); existingIsTree {
			return &ConflictError{Path: path, At: path.Clone(), Reason: "subtree in the way"}
		}
	}
	cur[last] = value
	return nil
}

// SetDefault returns the value at [path] if it exists; otherwise it sets
// [def] there (creating intermediate subtrees) and returns it. The
// collision rules of [New] apply when the path has to be created.
func SetDefault(t Tree, path Path, def any) (any, error) {
	if v, err := Get(t, path); err == nil {
		return v, nil
	}
	if err := SetInto(t, path, def); err != nil {
		return nil, err
	}
	return def, nil
}
