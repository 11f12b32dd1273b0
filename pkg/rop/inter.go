package rop

import (
	"context"
	"time"
)

// Action is one fallible asynchronous operation. It classifies its own
// failures; panics are handled by whoever runs it.
type Action[T any] func(ctx context.Context) Result[T]

type ResultProvider[T any] interface {
	// Value returns the successful value and whether there is one
	Value() (T, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry a value or an AppFailure
type WithFailure[T any] interface {
	ResultProvider[T]
	// Failure returns the failure if the operation failed
	Failure() (AppFailure, bool)
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithFailure with cancellation support
type WithCancel[T any] interface {
	WithFailure[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}
