package treedict

// Changeset returns the minimal change-set that turns [a] into [b],
// encoded as a tree itself: added or modified keys carry their new
// value, removed keys carry nil, and modified subtrees are expressed
// recursively. If the trees are equal it returns nil (not an empty map)
// so callers can test `Changeset(a, b) == nil` with zero allocations.
//
// A change-set is a lossy, applyable form of [Diff]: feed it to [Apply]
// to replay the change on another tree. Because nil doubles as the
// removal marker, a leaf whose new value is literally nil is
// indistinguishable from a removal; use [Diff] when that matters.
func Changeset(a, b Tree) Tree {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	chg := make(Tree)
	changesetInto(a, b, chg)
	if len(chg) == 0 {
		return nil
	}
	return chg
}

func changesetInto(a, b, out Tree) {
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			out[k] = nil // removed
			continue
		}
		if leafEqual(va, vb) {
			continue
		}
		if subA, okA := isTree(va); okA {
			if subB, okB := isTree(vb); okB {
				sub := make(Tree)
				changesetInto(subA, subB, sub)
				if len(sub) != 0 {
					out[k] = sub
				}
				continue
			}
		}
		out[k] = vb // leaf changed, or leaf/subtree swap
	}
	for k, vb := range b {
		if _, ok := a[k]; !ok {
			out[k] = vb
		}
	}
}

// Apply mutates [dst] so that, after the call, it equals the tree the
// given change-set was computed against:
//
//	dst := treedict.Tree{"a": 1, "b": treedict.Tree{"c": false}}
//	chg := treedict.Tree{"b": treedict.Tree{"c": true}}
//	treedict.Apply(dst, chg) // dst is now {"a":1,"b":{"c":true}}
func Apply(dst, chg Tree) {
	if dst == nil || len(chg) == 0 {
		return
	}
	applyInto(dst, chg)
}

func applyInto(dst, chg Tree) {
	for k, change := range chg {
		switch v := change.(type) {
		case nil: // removal
			delete(dst, k)

		case Tree: // nested change-set
			sub, ok := dst[k].(Tree)
			if !ok {
				// key absent or currently a leaf
				sub = make(Tree, len(v))
				dst[k] = sub
			}
			applyInto(sub, v)

		default: // leaf add / replace
			dst[k] = v
		}
	}
}
