package rop

import (
	"time"

	"github.com/google/uuid"
)

var _ WithCancel[int] = Result[int]{}

// Result is either a success holding a value or a failure holding an
// AppFailure. Results are immutable once constructed.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   AppFailure
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed Result. A zero AppFailure is stored as unexpected so
// a constructed Result is never neither success nor failure.
func Fail[T any](f AppFailure) Result[T] {
	if f.IsZero() {
		f = Unexpected("empty failure")
	}
	return Result[T]{
		failure:   f,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom moves a failure from one result type to another, keeping its id.
// A success or empty input has no failure to carry and becomes unexpected.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if !from.IsFailure() {
		return Fail[Out](Unexpected("fail from non-failure result"))
	}
	return Result[Out]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.failure.IsZero()
}

func (r Result[T]) IsCancel() bool {
	return r.IsFailure() && r.failure.kind == KindCancelled
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if !r.isSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ValueOr returns the success value or fallback.
func (r Result[T]) ValueOr(fallback T) T {
	if !r.isSuccess {
		return fallback
	}
	return r.value
}

// Result returns the success value, or the zero value for a failure.
func (r Result[T]) Result() T {
	return r.value
}

// Failure returns the failure and true, or a zero AppFailure and false.
func (r Result[T]) Failure() (AppFailure, bool) {
	if !r.IsFailure() {
		return AppFailure{}, false
	}
	return r.failure, true
}

// Err returns the failure as an error, nil on success.
func (r Result[T]) Err() error {
	if !r.IsFailure() {
		return nil
	}
	return r.failure
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty is true only for the zero Result, which no constructor returns.
func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.failure.IsZero()
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Match calls exactly one of the handlers. Both are required; a nil
// handler panics with ErrIncompleteMatch.
func (r Result[T]) Match(onSuccess func(T), onFailure func(AppFailure)) {
	if onSuccess == nil || onFailure == nil {
		panic(ErrIncompleteMatch)
	}
	if r.isSuccess {
		onSuccess(r.value)
		return
	}
	onFailure(r.failureOrUnexpected())
}

// Match folds r into a single value.
func Match[T, R any](r Result[T], onSuccess func(T) R, onFailure func(AppFailure) R) R {
	if onSuccess == nil || onFailure == nil {
		panic(ErrIncompleteMatch)
	}
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.failureOrUnexpected())
}

func (r Result[T]) failureOrUnexpected() AppFailure {
	if r.failure.IsZero() {
		return Unexpected("empty result")
	}
	return r.failure
}
