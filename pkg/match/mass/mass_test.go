package mass

import (
	"testing"

	"github.com/ib-77/match3/pkg/match/act"
	"github.com/ib-77/match3/pkg/match/out"
)

func classify(n int) out.Chain[int, string] {
	return out.Match[int, string](n).
		When(func(v int) bool { return v < 0 }, func(int) string { return "neg" }).
		Case(0, "zero").
		When(func(v int) bool { return v < 100 }, func(int) string { return "low" })
}

func isEven(n int) act.Chain[int] {
	return act.Match(n).When(func(v int) bool { return v%2 == 0 }, nil)
}

func TestMap(t *testing.T) {
	t.Parallel()
	results := Map([]int{-1, 0, 5, 500}, classify)

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !results[0].IsMatched() || results[0].Value() != "neg" {
		t.Fatalf("expected neg, got %+v", results[0])
	}
	if !results[1].IsMatched() || results[1].Value() != "zero" {
		t.Fatalf("expected zero, got %+v", results[1])
	}
	if !results[2].IsMatched() || results[2].Value() != "low" {
		t.Fatalf("expected low, got %+v", results[2])
	}
	if results[3].IsMatched() {
		t.Fatalf("500 must stay unmatched, got %+v", results[3])
	}
	if results[3].Err() == nil {
		t.Fatalf("unmatched result must carry the no-match error")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()
	values := Values([]int{0, 500, -3}, classify, "other")

	want := []string{"zero", "other", "neg"}
	for i, w := range want {
		if values[i] != w {
			t.Fatalf("at %d: expected %q, got %q", i, w, values[i])
		}
	}
}

func TestEach(t *testing.T) {
	t.Parallel()
	if n := Each([]int{1, 2, 3, 4, 5}, isEven); n != 2 {
		t.Fatalf("expected 2 even subjects, got %d", n)
	}
	if n := Each(nil, isEven); n != 0 {
		t.Fatalf("expected 0 for empty input, got %d", n)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()
	matched, unmatched := Partition([]int{1, 2, 3, 4}, isEven)

	if len(matched) != 2 || matched[0] != 2 || matched[1] != 4 {
		t.Fatalf("unexpected matched set: %v", matched)
	}
	if len(unmatched) != 2 || unmatched[0] != 1 || unmatched[1] != 3 {
		t.Fatalf("unexpected unmatched set: %v", unmatched)
	}
}
