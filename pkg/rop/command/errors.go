package command

import "errors"

var (
	// ErrArgumentsNotSet is returned when a parameterized command is replayed
	// before it was ever given arguments.
	ErrArgumentsNotSet = errors.New("command: arguments not set")

	// ErrNilAction is the panic value for constructing a command without an action.
	ErrNilAction = errors.New("command: action is nil")
)
