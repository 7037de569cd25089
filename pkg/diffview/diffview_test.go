package diffview

import (
	"strings"
	"testing"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

func TestAnnotateClassification(t *testing.T) {
	a := treedict.Tree{
		"gone": 1,
		"same": "v",
		"mod":  false,
		"n":    treedict.Tree{"x": 1},
	}
	b := treedict.Tree{
		"new":  2,
		"same": "v",
		"mod":  true,
		"n":    treedict.Tree{"x": 9},
	}

	root := Annotate(a, b)

	want := map[string]ChangeKind{
		"gone": Removed,
		"same": Unchanged,
		"mod":  Modified,
		"new":  Added,
	}
	for key, kind := range want {
		child, ok := root.Children[key]
		if !ok {
			t.Fatalf("missing node for %q", key)
		}
		if child.Change != kind {
			t.Fatalf("%q: want change %d, got %d", key, kind, child.Change)
		}
	}

	// the shared subtree keeps per-key annotations
	n := root.Children["n"]
	if n.Children == nil {
		t.Fatal("shared subtree should be annotated recursively")
	}
	if n.Children["x"].Change != Modified {
		t.Fatalf("n.x should be modified, got %d", n.Children["x"].Change)
	}
}

func TestAnnotateEqualTrees(t *testing.T) {
	tree := treedict.Tree{"a": 1}
	root := Annotate(tree, tree)
	if root.Change != Unchanged || root.Children != nil {
		t.Fatalf("equal trees should yield a single unchanged node, got %+v", root)
	}
}

func TestRenderPlain(t *testing.T) {
	a := treedict.Tree{"name": "x", "n": treedict.Tree{"port": 80}}
	b := treedict.Tree{"name": "y", "n": treedict.Tree{"port": 80}}

	out := Render(a, b, NoColor)

	for _, want := range []string{`name: "y"`, "n:", "port: 80"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderIndentation(t *testing.T) {
	a := treedict.Tree{"n": treedict.Tree{"x": 1}}
	b := treedict.Tree{"n": treedict.Tree{"x": 2}}

	out := RenderWithOptions(a, b, NoColor, Options{IndentSize: 4})
	if !strings.Contains(out, "    x: 2") {
		t.Fatalf("want 4-space indent for nested key:\n%s", out)
	}
}
