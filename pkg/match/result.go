package match

import (
	"time"

	"github.com/google/uuid"
)

type Result[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     R
	err       error
	isMatched bool
	hasValue  bool
}

func Matched[R any](v R) Result[R] {
	return Result[R]{
		value:     v,
		err:       nil,
		isMatched: true,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Unmatched[R any](err error) Result[R] {
	return Result[R]{
		err:       err,
		isMatched: false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

func UnmatchedFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isMatched: false,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

func (r Result[R]) Value() R {
	return r.value
}

func (r Result[R]) Err() error {
	return r.err
}

func (r Result[R]) IsMatched() bool {
	return r.isMatched
}

func (r Result[R]) HasValue() bool {
	return r.hasValue
}

func (r Result[R]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[R]) IsEmpty() bool {
	return r.err == nil && !r.isMatched
}

func (r Result[R]) Id() uuid.UUID {
	return r.id
}
