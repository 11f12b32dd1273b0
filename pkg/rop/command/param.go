package command

import (
	"context"
	"sync"

	"github.com/ib-77/asyncmd/pkg/rop"
)

// Command1 wraps a one-argument action and remembers the last argument it
// was given, even when the run itself was dropped.
type Command1[T, A any] struct {
	*core[T]
	action func(ctx context.Context, a A) rop.Result[T]

	argsMu sync.Mutex
	args   Args[A]
}

func New1[T, A any](action func(ctx context.Context, a A) rop.Result[T], opts ...Option) *Command1[T, A] {
	if action == nil {
		panic(ErrNilAction)
	}
	return &Command1[T, A]{core: newCore[T](opts), action: action}
}

// ExecuteWith stores a as the last argument and runs the action with it.
func (c *Command1[T, A]) ExecuteWith(ctx context.Context, a A) {
	c.TryExecuteWith(ctx, a)
}

func (c *Command1[T, A]) TryExecuteWith(ctx context.Context, a A) bool {
	c.setArgs(Set(a))
	return c.run(ctx, c.bind(a))
}

// Execute replays the last argument. It returns ErrArgumentsNotSet if none
// was ever supplied.
func (c *Command1[T, A]) Execute(ctx context.Context) error {
	_, err := c.TryExecute(ctx)
	return err
}

func (c *Command1[T, A]) TryExecute(ctx context.Context) (bool, error) {
	a, ok := c.LastArguments()
	if !ok {
		return false, ErrArgumentsNotSet
	}
	return c.run(ctx, c.bind(a)), nil
}

func (c *Command1[T, A]) LastArguments() (A, bool) {
	c.argsMu.Lock()
	defer c.argsMu.Unlock()
	return c.args.Get()
}

func (c *Command1[T, A]) setArgs(args Args[A]) {
	c.argsMu.Lock()
	c.args = args
	c.argsMu.Unlock()
}

func (c *Command1[T, A]) bind(a A) rop.Action[T] {
	return func(ctx context.Context) rop.Result[T] {
		return c.action(ctx, a)
	}
}

// Command2 is Command1 for two-argument actions.
type Command2[T, A, B any] struct {
	*core[T]
	action func(ctx context.Context, a A, b B) rop.Result[T]

	argsMu sync.Mutex
	args   Args[pair[A, B]]
}

func New2[T, A, B any](action func(ctx context.Context, a A, b B) rop.Result[T], opts ...Option) *Command2[T, A, B] {
	if action == nil {
		panic(ErrNilAction)
	}
	return &Command2[T, A, B]{core: newCore[T](opts), action: action}
}

func (c *Command2[T, A, B]) ExecuteWith(ctx context.Context, a A, b B) {
	c.TryExecuteWith(ctx, a, b)
}

func (c *Command2[T, A, B]) TryExecuteWith(ctx context.Context, a A, b B) bool {
	c.setArgs(Set(pair[A, B]{first: a, second: b}))
	return c.run(ctx, c.bind(a, b))
}

func (c *Command2[T, A, B]) Execute(ctx context.Context) error {
	_, err := c.TryExecute(ctx)
	return err
}

func (c *Command2[T, A, B]) TryExecute(ctx context.Context) (bool, error) {
	a, b, ok := c.LastArguments()
	if !ok {
		return false, ErrArgumentsNotSet
	}
	return c.run(ctx, c.bind(a, b)), nil
}

func (c *Command2[T, A, B]) LastArguments() (A, B, bool) {
	c.argsMu.Lock()
	defer c.argsMu.Unlock()
	p, ok := c.args.Get()
	return p.first, p.second, ok
}

func (c *Command2[T, A, B]) setArgs(args Args[pair[A, B]]) {
	c.argsMu.Lock()
	c.args = args
	c.argsMu.Unlock()
}

func (c *Command2[T, A, B]) bind(a A, b B) rop.Action[T] {
	return func(ctx context.Context) rop.Result[T] {
		return c.action(ctx, a, b)
	}
}
