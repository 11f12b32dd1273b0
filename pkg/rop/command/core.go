package command

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/asyncmd/pkg/rop"
	"github.com/ib-77/asyncmd/pkg/rop/notify"
)

// State is the snapshot delivered to observers on every transition.
type State[T any] struct {
	Executing bool
	Result    rop.Result[T]
	HasResult bool
}

// core holds the lifecycle shared by every command flavour. The embedding
// type decides which action a run uses.
type core[T any] struct {
	id       uuid.UUID
	name     string
	logger   *slog.Logger
	notifier *notify.Notifier[State[T]]

	mu        sync.Mutex
	executing bool
	result    rop.Result[T]
	hasResult bool
	disposed  bool
}

func newCore[T any](opts []Option) *core[T] {
	o := buildOptions(opts)
	id := uuid.New()
	return &core[T]{
		id:       id,
		name:     o.name,
		logger:   o.logger.With("command", o.name, "command_id", id.String()),
		notifier: notify.New[State[T]](),
	}
}

func (c *core[T]) ID() uuid.UUID {
	return c.id
}

func (c *core[T]) Name() string {
	return c.name
}

func (c *core[T]) IsExecuting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.executing
}

// LastResult returns the outcome of the most recent completed run. It is
// absent before the first completion and while a run is in flight.
func (c *core[T]) LastResult() (rop.Result[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.hasResult
}

func (c *core[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// ClearResult drops the last result and notifies observers. It does not
// cancel an in-flight run, which still records its result on completion.
func (c *core[T]) ClearResult() {
	c.mu.Lock()
	c.result = rop.Result[T]{}
	c.hasResult = false
	state := c.stateLocked()
	c.mu.Unlock()

	c.notifier.Notify(state)
}

// Subscribe registers fn for every state change. Callbacks run synchronously
// on the goroutine driving the transition.
func (c *core[T]) Subscribe(fn func(State[T])) notify.Handle {
	return c.notifier.Subscribe(fn)
}

func (c *core[T]) Unsubscribe(h notify.Handle) bool {
	return c.notifier.Unsubscribe(h)
}

// Watch streams state changes until ctx is done or the command is disposed.
func (c *core[T]) Watch(ctx context.Context) <-chan State[T] {
	return notify.Stream(ctx, c.notifier, 2)
}

// Dispose detaches every observer. Later runs are ignored.
func (c *core[T]) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()

	c.notifier.Close()
}

func (c *core[T]) stateLocked() State[T] {
	return State[T]{Executing: c.executing, Result: c.result, HasResult: c.hasResult}
}

// run drives one start/run/finish cycle. It returns false when the trigger
// was dropped because a run is already in flight or the command is disposed.
func (c *core[T]) run(ctx context.Context, action rop.Action[T]) bool {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		c.logger.Debug("command disposed, ignoring execute")
		return false
	}
	if c.executing {
		c.mu.Unlock()
		c.logger.Debug("command already executing")
		return false
	}
	c.executing = true
	c.result = rop.Result[T]{}
	c.hasResult = false
	started := c.stateLocked()
	c.mu.Unlock()

	start := time.Now()
	res := rop.Fail[T](rop.Unexpected("command did not complete"))
	defer func() {
		c.finish(res, start)
	}()

	c.notifier.Notify(started)
	res = c.invoke(ctx, action)
	return true
}

func (c *core[T]) finish(res rop.Result[T], start time.Time) {
	c.mu.Lock()
	c.result = res
	c.hasResult = true
	c.executing = false
	finished := c.stateLocked()
	c.mu.Unlock()

	c.logger.Debug("command finished",
		"success", res.IsSuccess(),
		"duration", time.Since(start),
	)
	c.notifier.Notify(finished)
}

func (c *core[T]) invoke(ctx context.Context, action rop.Action[T]) (res rop.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("command action panicked",
				"panic", r,
				"stack", string(debug.Stack()),
			)
			res = rop.Fail[T](rop.Unexpected(fmt.Sprint(r)))
		}
	}()

	res = action(ctx)
	if res.IsEmpty() {
		res = rop.Fail[T](rop.Unexpected("action returned an empty result"))
	}
	return res
}

// Command wraps a zero-argument action.
type Command[T any] struct {
	*core[T]
	action rop.Action[T]
}

// New creates a Command around action. It panics with ErrNilAction if
// action is nil.
func New[T any](action rop.Action[T], opts ...Option) *Command[T] {
	if action == nil {
		panic(ErrNilAction)
	}
	return &Command[T]{core: newCore[T](opts), action: action}
}

// Execute runs the action unless a run is already in flight, in which case
// it returns immediately and emits nothing.
func (c *Command[T]) Execute(ctx context.Context) {
	c.run(ctx, c.action)
}

// TryExecute behaves like Execute and reports whether the run happened.
func (c *Command[T]) TryExecute(ctx context.Context) bool {
	return c.run(ctx, c.action)
}
