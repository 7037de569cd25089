package treedict

// Merge returns a new tree combining [a] and [b]. Keys holding subtrees
// on both sides are merged recursively; for every other shared key the
// value of [b] wins. Neither input is modified, and subtrees taken into
// the result are deep-copied so the result never aliases the inputs.
func Merge(a, b Tree) Tree {
	out := make(Tree, len(a)+len(b))
	for k, va := range a {
		if sub, ok := isTree(va); ok {
			out[k] = Clone(sub)
		} else {
			out[k] = va
		}
	}
	return MergeInto(out, b)
}

// MergeInto merges [src] into [dst] in place and returns [dst]. Keys
// holding subtrees on both sides are merged recursively (subtrees from
// [src] are deep-copied on the way in); otherwise the [src] value wins.
func MergeInto(dst, src Tree) Tree {
	for k, vs := range src {
		subSrc, srcIsTree := isTree(vs)
		if !srcIsTree {
			dst[k] = vs
			continue
		}
		if subDst, ok := isTree(dst[k]); ok {
			MergeInto(subDst, subSrc)
			continue
		}
		dst[k] = Clone(subSrc)
	}
	return dst
}
