package treedict_test

import (
	"reflect"
	"testing"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

func TestLeavesRoundTrip(t *testing.T) {
	tree := sample()

	rebuilt, err := treedict.New(treedict.Entries(tree)...)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if !reflect.DeepEqual(rebuilt, tree) {
		t.Fatalf("round trip failed: want %v, got %v", tree, rebuilt)
	}
}

func TestLeavesRestartable(t *testing.T) {
	tree := sample()
	seq := treedict.Leaves(tree)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 3 || second != 3 {
		t.Fatalf("each range should be a fresh traversal: %d, %d", first, second)
	}
}

func TestLeavesEarlyStop(t *testing.T) {
	tree := sample()
	n := 0
	for range treedict.Leaves(tree) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("break should stop the traversal, saw %d leaves", n)
	}
}

func TestSortedLeaves(t *testing.T) {
	tree := treedict.Tree{
		"b": treedict.Tree{"z": 1, "a": 2},
		"a": 3,
	}
	var paths []string
	for p := range treedict.SortedLeaves(tree) {
		paths = append(paths, p.String())
	}
	want := []string{"a", "b.a", "b.z"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("want %v, got %v", want, paths)
	}
}

func TestLeavesDepth(t *testing.T) {
	tree := sample()

	got := make(map[string]any)
	for p, v := range treedict.LeavesDepth(tree, 1) {
		got[p.String()] = v
	}
	// at depth 1 the subtree under "a" is the value itself
	if len(got) != 2 {
		t.Fatalf("want 2 entries at depth 1, got %v", got)
	}
	if _, ok := got["a"].(treedict.Tree); !ok {
		t.Fatalf("cut-off value should be the subtree, got %T", got["a"])
	}
	if got["e"] != true {
		t.Fatalf("shallow leaf should pass through, got %v", got["e"])
	}
}

func TestEntriesCopiesPaths(t *testing.T) {
	entries := treedict.Entries(sample())
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Path.String()] = struct{}{}
	}
	if len(seen) != len(entries) {
		t.Fatalf("paths alias each other: %v", entries)
	}
}

func BenchmarkLeaves(b *testing.B) {
	tree := sample()
	for i := 0; i < b.N; i++ {
		for range treedict.Leaves(tree) {
		}
	}
}
