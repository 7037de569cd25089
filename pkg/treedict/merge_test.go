package treedict_test

import (
	"reflect"
	"testing"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

func TestMerge(t *testing.T) {
	a := treedict.Tree{
		"a": 1,
		"n": treedict.Tree{"x": 1, "y": 2},
	}
	b := treedict.Tree{
		"b": 2,
		"n": treedict.Tree{"y": 3, "z": 4},
	}

	got := treedict.Merge(a, b)
	want := treedict.Tree{
		"a": 1,
		"b": 2,
		"n": treedict.Tree{"x": 1, "y": 3, "z": 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// inputs untouched
	if !reflect.DeepEqual(a, treedict.Tree{"a": 1, "n": treedict.Tree{"x": 1, "y": 2}}) {
		t.Fatalf("a was mutated: %v", a)
	}
	if !reflect.DeepEqual(b, treedict.Tree{"b": 2, "n": treedict.Tree{"y": 3, "z": 4}}) {
		t.Fatalf("b was mutated: %v", b)
	}

	// the result must not alias either input's subtrees
	if err := treedict.SetInto(got, treedict.Path{"n", "x"}, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := treedict.Get(a, treedict.Path{"n", "x"}); v != 1 {
		t.Fatalf("result aliases input a: %v", v)
	}
}

func TestMergeLeafVsSubtree(t *testing.T) {
	// only tree-in-both recurses; a leaf/subtree mismatch is an override
	a := treedict.Tree{"k": treedict.Tree{"x": 1}, "l": 5}
	b := treedict.Tree{"k": "scalar", "l": treedict.Tree{"y": 2}}

	got := treedict.Merge(a, b)
	if got["k"] != "scalar" {
		t.Fatalf("b's leaf should override a's subtree, got %v", got["k"])
	}
	want := treedict.Tree{"y": 2}
	if !reflect.DeepEqual(got["l"], want) {
		t.Fatalf("b's subtree should override a's leaf, got %v", got["l"])
	}
}

func TestMergeInto(t *testing.T) {
	dst := treedict.Tree{"n": treedict.Tree{"x": 1}}
	src := treedict.Tree{"n": treedict.Tree{"y": 2}}

	got := treedict.MergeInto(dst, src)
	if !reflect.DeepEqual(dst, treedict.Tree{"n": treedict.Tree{"x": 1, "y": 2}}) {
		t.Fatalf("dst not merged in place: %v", dst)
	}
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(dst).Pointer() {
		t.Fatal("MergeInto should return dst itself")
	}
	// src untouched
	if !reflect.DeepEqual(src, treedict.Tree{"n": treedict.Tree{"y": 2}}) {
		t.Fatalf("src was mutated: %v", src)
	}
}

func BenchmarkMerge(b *testing.B) {
	x := treedict.Tree{"a": 1, "n": treedict.Tree{"x": 1, "y": 2}}
	y := treedict.Tree{"b": 2, "n": treedict.Tree{"y": 3, "z": 4}}
	for i := 0; i < b.N; i++ {
		_ = treedict.Merge(x, y)
	}
}
