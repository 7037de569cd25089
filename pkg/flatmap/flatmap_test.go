package flatmap_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dictkit-project/dictkit/pkg/flatmap"
)

func TestMerge(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"b": 3, "c": 4}

	got := flatmap.Merge(a, b)
	want := map[string]int{"a": 1, "b": 3, "c": 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	// inputs untouched
	if !reflect.DeepEqual(a, map[string]int{"a": 1, "b": 2}) {
		t.Fatalf("a was mutated: %v", a)
	}
	if !reflect.DeepEqual(b, map[string]int{"b": 3, "c": 4}) {
		t.Fatalf("b was mutated: %v", b)
	}
}

func TestMergeInto(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	got := flatmap.MergeInto(a, map[string]int{"b": 3})

	if !reflect.DeepEqual(a, map[string]int{"a": 1, "b": 3}) {
		t.Fatalf("dst not updated in place: %v", a)
	}
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(a).Pointer() {
		t.Fatal("MergeInto should return dst itself")
	}
}

func TestMergeAll(t *testing.T) {
	got := flatmap.MergeAll(
		map[string]int{"a": 1},
		map[string]int{"a": 2, "b": 2},
		map[string]int{"b": 3},
	)
	want := map[string]int{"a": 2, "b": 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestExtract(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	got := flatmap.Extract(m, "a", "c", "nope")
	want := map[string]int{"a": 1, "c": 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestExtractStrict(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	got, err := flatmap.ExtractStrict(m, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("want %v, got %v", m, got)
	}

	_, err = flatmap.ExtractStrict(m, "a", "nope")
	var knf *flatmap.KeyNotFoundError
	if !errors.As(err, &knf) {
		t.Fatalf("want KeyNotFoundError, got %v", err)
	}
	if !reflect.DeepEqual(knf.Keys, []string{"nope"}) {
		t.Fatalf("error should name the missing key, got %v", knf.Keys)
	}
}

func TestLookup(t *testing.T) {
	m := map[string]string{"host": "a", "hostname": "b"}

	v, err := flatmap.Lookup(m, "host", "hostname")
	if err != nil || v != "a" {
		t.Fatalf("want first hit 'a', got %q / err=%v", v, err)
	}

	v, err = flatmap.Lookup(m, "addr", "hostname")
	if err != nil || v != "b" {
		t.Fatalf("want fallback hit 'b', got %q / err=%v", v, err)
	}

	_, err = flatmap.Lookup(m, "addr", "address")
	var knf *flatmap.KeyNotFoundError
	if !errors.As(err, &knf) {
		t.Fatalf("want KeyNotFoundError, got %v", err)
	}
	if !reflect.DeepEqual(knf.Keys, []string{"addr", "address"}) {
		t.Fatalf("error should name all attempted keys, got %v", knf.Keys)
	}
}

func TestLookupOr(t *testing.T) {
	m := map[string]int{"k1": 10, "k2": 20}

	if v := flatmap.LookupOr(m, -1, "k1", "k2"); v != 10 {
		t.Fatalf("want 10, got %d", v)
	}
	if v := flatmap.LookupOr(m, -1, "x", "k2"); v != 20 {
		t.Fatalf("want 20, got %d", v)
	}
	if v := flatmap.LookupOr(m, -1, "x", "y"); v != -1 {
		t.Fatalf("want default -1, got %d", v)
	}
}

func TestInvert(t *testing.T) {
	got := flatmap.Invert(map[string]int{"a": 1, "b": 2})
	want := map[int]string{1: "a", 2: "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
