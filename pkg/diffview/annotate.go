package diffview

import "github.com/dictkit-project/dictkit/pkg/treedict"

// ChangeKind classifies a node of the annotated tree.
type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Added
	Removed
	Modified
)

// Node is a tree node annotated with its change classification. Inner
// nodes carry Children; leaves carry Value.
type Node struct {
	Value    any
	Change   ChangeKind
	Children map[string]*Node
}

// Annotate diffs [a] against [b] and builds the annotated tree the
// renderer walks. Unchanged branches are carried over so the view shows
// the full document with changes in context.
func Annotate(a, b treedict.Tree) *Node {
	chg := treedict.Changeset(a, b)
	if chg == nil {
		return &Node{Value: a, Change: Unchanged}
	}
	return annotate(a, b, chg)
}

func annotate(a, b any, chg any) *Node {
	if chg == nil {
		return &Node{Value: a, Change: Unchanged}
	}

	changeTree, ok := chg.(treedict.Tree)
	if !ok {
		// leaf changed or leaf/subtree swap
		return &Node{Value: b, Change: Modified}
	}

	node := &Node{Children: make(map[string]*Node)}
	aTree, _ := a.(treedict.Tree)
	bTree, _ := b.(treedict.Tree)

	// everything the change-set does not mention is unchanged
	for key, va := range aTree {
		if _, touched := changeTree[key]; !touched {
			node.Children[key] = &Node{Value: va, Change: Unchanged}
		}
	}
	for key, sub := range changeTree {
		va, inA := aTree[key]
		vb := bTree[key]
		switch {
		case sub == nil:
			node.Children[key] = &Node{Value: va, Change: Removed}
		case !inA:
			node.Children[key] = &Node{Value: vb, Change: Added}
		default:
			node.Children[key] = annotate(va, vb, sub)
		}
	}
	return node
}
