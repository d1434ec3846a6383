package match

import (
	"errors"
	"strings"
	"testing"
)

func TestEqual_ComparableFastPath(t *testing.T) {
	t.Parallel()
	if !Equal(1, 1) || Equal(1, 2) {
		t.Fatalf("int equality broken")
	}
	if !Equal("a", "a") || Equal("a", "b") {
		t.Fatalf("string equality broken")
	}
}

func TestEqual_DeepFallback(t *testing.T) {
	t.Parallel()
	if !Equal(map[string]int{"a": 1}, map[string]int{"a": 1}) {
		t.Fatalf("expected deep equality for equal maps")
	}
	if Equal([]string{"x"}, []string{"y"}) {
		t.Fatalf("expected inequality for different slices")
	}
}

func TestEqual_ComparableTypeIncomparableValue(t *testing.T) {
	t.Parallel()
	type boxed struct {
		v any
	}

	if !Equal(boxed{v: []int{1}}, boxed{v: []int{1}}) {
		t.Fatalf("expected deep equality for boxed equal slices")
	}
	if Equal(boxed{v: []int{1}}, boxed{v: []int{2}}) {
		t.Fatalf("expected inequality for boxed different slices")
	}
	if !Equal(boxed{v: 1}, boxed{v: 1}) {
		t.Fatalf("expected equality for boxed comparable values")
	}
}

func TestEqual_NilInterfaces(t *testing.T) {
	t.Parallel()
	if !Equal[any](nil, nil) {
		t.Fatalf("nil must equal nil")
	}
	if Equal[any](nil, 1) || Equal[any](1, nil) {
		t.Fatalf("nil must not equal a value")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("expected nil to be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatalf("expected typed nil pointer to be nil")
	}
	if IsNil(5) {
		t.Fatalf("expected 5 to be non-nil")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	if Describe(nil) != "<nil>" {
		t.Fatalf("expected <nil> for nil subject")
	}
	d := Describe(42)
	if !strings.Contains(d, "42") || !strings.Contains(d, "int") {
		t.Fatalf("expected value and type in description, got %q", d)
	}
}

func TestNoMatchErr(t *testing.T) {
	t.Parallel()
	err := NoMatchErr("subject-x")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected wrapped ErrNoMatch")
	}
	if !strings.Contains(err.Error(), "subject-x") {
		t.Fatalf("expected subject description in error, got %v", err)
	}
}

func TestResult_ZeroAndConstructed(t *testing.T) {
	t.Parallel()
	var zero Result[int]
	if !zero.IsEmpty() || zero.IsMatched() || zero.HasValue() {
		t.Fatalf("zero result must be empty")
	}

	m := Matched(7)
	if !m.IsMatched() || !m.HasValue() || m.Value() != 7 || m.Err() != nil {
		t.Fatalf("matched result malformed: %+v", m)
	}
	if m.CreatedAt().IsZero() {
		t.Fatalf("matched result must carry a creation time")
	}

	u := Unmatched[int](NoMatchErr(7))
	if u.IsMatched() || u.HasValue() || u.Err() == nil {
		t.Fatalf("unmatched result malformed: %+v", u)
	}
	if m.Id() == u.Id() {
		t.Fatalf("results must get distinct ids")
	}
}

func TestUnmatchedFrom(t *testing.T) {
	t.Parallel()
	src := Unmatched[int](NoMatchErr("s"))
	dst := UnmatchedFrom[int, string](src)
	if dst.IsMatched() || dst.Err() == nil {
		t.Fatalf("carried-over result must stay unmatched with its error")
	}
	if dst.Id() != src.Id() || !dst.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("carried-over result must keep id and creation time")
	}
}
