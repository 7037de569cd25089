package treedict

// Remove deletes the value at [path] from [t] and returns it. When
// [prune] is true, subtrees left empty by the removal are deleted as
// well, walking back up the path. Fails with a [PathNotFoundError] when
// the path does not resolve, in which case [t] is unchanged.
func Remove(t Tree, path Path, prune bool) (any, error) {
	if len(path) == 0 {
		return nil, &PathNotFoundError{Path: path}
	}

	// Collect the subtrees along the path so we can prune upwards after
	// the removal.
	parents := make([]Tree, 0, len(path))
	cur := t
	for _, k := range path[:len(path)-1] {
		parents = append(parents, cur)
		sub, ok := isTree(cur[k])
		if !ok {
			return nil, &PathNotFoundError{Path: path}
		}
		cur = sub
	}

	last := path[len(path)-1]
	value, ok := cur[last]
	if !ok {
		return nil, &PathNotFoundError{Path: path}
	}
	delete(cur, last)

	if prune {
		for i := len(parents) - 1; i >= 0; i-- {
			if len(cur) != 0 {
				break
			}
			cur = parents[i]
			delete(cur, path[i])
		}
	}
	return value, nil
}
