package rop

import (
	"errors"
	"fmt"
)

// Kind identifies one of the closed set of failure kinds.
type Kind uint8

const (
	KindNetwork Kind = iota + 1
	KindServer
	KindValidation
	KindNotFound
	KindUnauthorized
	KindUnexpected
	KindCancelled
)

var kinds = []Kind{
	KindNetwork,
	KindServer,
	KindValidation,
	KindNotFound,
	KindUnauthorized,
	KindUnexpected,
	KindCancelled,
}

var ErrIncompleteMatch = errors.New("rop: match is missing a branch")

var kindNames = map[Kind]string{
	KindNetwork:      "network",
	KindServer:       "server",
	KindValidation:   "validation",
	KindNotFound:     "not_found",
	KindUnauthorized: "unauthorized",
	KindUnexpected:   "unexpected",
	KindCancelled:    "cancelled",
}

// user-facing templates, the raw message never reaches these
var userMessages = map[Kind]string{
	KindNetwork:      "Please check your internet connection and try again.",
	KindServer:       "The server is having trouble right now. Please try again later.",
	KindNotFound:     "The requested item could not be found.",
	KindUnauthorized: "You are not authorized to do this. Please sign in again.",
	KindUnexpected:   "Something went wrong. Please try again.",
	KindCancelled:    "The operation was cancelled.",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// AppFailure is an immutable domain failure. The kind is fixed at
// construction and only the package constructors can produce one.
type AppFailure struct {
	kind    Kind
	message string
}

func Network(msg string) AppFailure {
	return AppFailure{kind: KindNetwork, message: msg}
}

func Server(msg string) AppFailure {
	return AppFailure{kind: KindServer, message: msg}
}

// Validation messages are expected to be safe for display as is.
func Validation(msg string) AppFailure {
	return AppFailure{kind: KindValidation, message: msg}
}

func NotFound(msg string) AppFailure {
	return AppFailure{kind: KindNotFound, message: msg}
}

func Unauthorized(msg string) AppFailure {
	return AppFailure{kind: KindUnauthorized, message: msg}
}

func Unexpected(msg string) AppFailure {
	return AppFailure{kind: KindUnexpected, message: msg}
}

func Cancelled(msg string) AppFailure {
	return AppFailure{kind: KindCancelled, message: msg}
}

func (f AppFailure) Kind() Kind {
	return f.kind
}

// Message returns the diagnostic text. It is meant for logs, not for users.
func (f AppFailure) Message() string {
	return f.message
}

// UserMessage returns the text safe to show to an end user. Validation
// failures return their raw message, every other kind a fixed template.
func (f AppFailure) UserMessage() string {
	if f.kind == KindValidation {
		return f.message
	}
	if msg, ok := userMessages[f.kind]; ok {
		return msg
	}
	return userMessages[KindUnexpected]
}

func (f AppFailure) IsZero() bool {
	return f.kind == 0
}

// Error implements error so failures can travel through (T, error) APIs.
func (f AppFailure) Error() string {
	return f.kind.String() + ": " + f.message
}

// Is matches another AppFailure of the same kind, so errors.Is(err, rop.NotFound(""))
// works regardless of the message.
func (f AppFailure) Is(target error) bool {
	var other AppFailure
	if errors.As(target, &other) {
		return other.kind == f.kind
	}
	return false
}

// FailureCases holds one handler per failure kind. MatchFailure refuses
// to run with a missing handler.
type FailureCases[R any] struct {
	Network      func(AppFailure) R
	Server       func(AppFailure) R
	Validation   func(AppFailure) R
	NotFound     func(AppFailure) R
	Unauthorized func(AppFailure) R
	Unexpected   func(AppFailure) R
	Cancelled    func(AppFailure) R
}

// Validate reports ErrIncompleteMatch when any branch is nil.
func (c FailureCases[R]) Validate() error {
	for _, kind := range kinds {
		if c.handler(kind) == nil {
			return fmt.Errorf("%w: %s", ErrIncompleteMatch, kind)
		}
	}
	return nil
}

func (c FailureCases[R]) handler(kind Kind) func(AppFailure) R {
	switch kind {
	case KindNetwork:
		return c.Network
	case KindServer:
		return c.Server
	case KindValidation:
		return c.Validation
	case KindNotFound:
		return c.NotFound
	case KindUnauthorized:
		return c.Unauthorized
	case KindCancelled:
		return c.Cancelled
	default:
		return c.Unexpected
	}
}

// MatchFailure dispatches f to the handler for its kind. It panics with
// ErrIncompleteMatch if cases does not cover every kind, whichever kind f is.
// The zero AppFailure is dispatched as unexpected.
func MatchFailure[R any](f AppFailure, cases FailureCases[R]) R {
	if err := cases.Validate(); err != nil {
		panic(err)
	}

	return cases.handler(f.kind)(f)
}
