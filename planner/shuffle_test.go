package planner

import (
	"reflect"
	"sort"
	"testing"
)

func TestShuffleDeterministic(t *testing.T) {
	items := make([]int, 200)
	for i := range items {
		items[i] = i
	}

	a := Shuffle(items, 42)
	b := Shuffle(items, 42)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed should produce identical permutations")
	}

	c := Shuffle(items, 43)
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds should produce different permutations")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{5, 3, 9, 1, 7, 2, 8}
	out := Shuffle(items, 7)

	if len(out) != len(items) {
		t.Fatalf("got %d items, want %d", len(out), len(items))
	}
	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	want := append([]int(nil), items...)
	sort.Ints(want)
	if !reflect.DeepEqual(sorted, want) {
		t.Fatalf("shuffle changed the multiset: got %v", out)
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	before := append([]string(nil), items...)
	Shuffle(items, 99)
	if !reflect.DeepEqual(items, before) {
		t.Fatalf("input mutated: %v", items)
	}
}

func TestSeedFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
	}
	for _, tt := range tests {
		if got := SeedFromKey(tt.key); got != tt.want {
			t.Errorf("SeedFromKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}

	if SeedFromKey("2025-01-01") != SeedFromKey("2025-01-01") {
		t.Fatal("SeedFromKey should be stable")
	}
	if SeedFromKey("2025-01-01") == SeedFromKey("2025-01-02") {
		t.Fatal("adjacent date keys should not collide")
	}
}
