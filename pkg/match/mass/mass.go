package mass

import (
	"github.com/ib-77/match3/pkg/match"
	"github.com/ib-77/match3/pkg/match/act"
	"github.com/ib-77/match3/pkg/match/out"
)

// Map evaluates the chain built by eval for every subject and collects the
// held results, matched or not, in subject order.
func Map[T, R any](subjects []T, eval func(T) out.Chain[T, R]) []match.Result[R] {
	results := make([]match.Result[R], 0, len(subjects))
	for _, s := range subjects {
		results = append(results, eval(s).Result())
	}
	return results
}

// Values evaluates the chain built by eval for every subject and collects
// the result values, substituting def where no case matched.
func Values[T, R any](subjects []T, eval func(T) out.Chain[T, R], def R) []R {
	values := make([]R, 0, len(subjects))
	for _, s := range subjects {
		values = append(values, eval(s).ValueOr(def))
	}
	return values
}

// Each evaluates the chain built by eval for every subject and returns how
// many subjects matched some case.
func Each[T any](subjects []T, eval func(T) act.Chain[T]) int {
	matched := 0
	for _, s := range subjects {
		if eval(s).Matched() {
			matched++
		}
	}
	return matched
}

// Partition splits subjects into those matched by the chain built by eval
// and those left unmatched, preserving order.
func Partition[T any](subjects []T, eval func(T) act.Chain[T]) (matched, unmatched []T) {
	for _, s := range subjects {
		if eval(s).Matched() {
			matched = append(matched, s)
		} else {
			unmatched = append(unmatched, s)
		}
	}
	return matched, unmatched
}
