package command

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/asyncmd/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gate is an action that blocks until released, so tests can observe a
// command mid-flight.
type gate[T any] struct {
	started chan struct{}
	release chan rop.Result[T]
	calls   atomic.Int32
}

func newGate[T any]() *gate[T] {
	return &gate[T]{
		started: make(chan struct{}, 8),
		release: make(chan rop.Result[T]),
	}
}

func (g *gate[T]) action(ctx context.Context) rop.Result[T] {
	g.calls.Add(1)
	g.started <- struct{}{}
	return <-g.release
}

func waitStarted(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("action did not start")
	}
}

func TestExecute_ScenarioA_SuccessStates(t *testing.T) {
	t.Parallel()

	g := newGate[int]()
	cmd := New(g.action, WithName("answer"))

	var mu sync.Mutex
	var states []State[int]
	cmd.Subscribe(func(s State[int]) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd.Execute(context.Background())
	}()

	waitStarted(t, g.started)
	assert.True(t, cmd.IsExecuting())
	_, has := cmd.LastResult()
	assert.False(t, has)

	g.release <- rop.Success(42)
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 2)

	assert.True(t, states[0].Executing)
	assert.False(t, states[0].HasResult)

	assert.False(t, states[1].Executing)
	require.True(t, states[1].HasResult)
	v, ok := states[1].Result.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	res, has := cmd.LastResult()
	require.True(t, has)
	assert.True(t, res.IsSuccess())
	assert.False(t, cmd.IsExecuting())
}

func TestExecute_ScenarioB_PanicBecomesUnexpected(t *testing.T) {
	t.Parallel()

	cmd := New(func(ctx context.Context) rop.Result[string] {
		panic("boom")
	})

	notifications := 0
	cmd.Subscribe(func(State[string]) { notifications++ })

	require.NotPanics(t, func() { cmd.Execute(context.Background()) })

	assert.False(t, cmd.IsExecuting())
	assert.Equal(t, 2, notifications)

	res, has := cmd.LastResult()
	require.True(t, has)
	require.True(t, res.IsFailure())

	f, _ := res.Failure()
	assert.Equal(t, rop.KindUnexpected, f.Kind())
	assert.Contains(t, f.Message(), "boom")
}

func TestExecute_PanicWithError(t *testing.T) {
	t.Parallel()

	cmd := New(func(ctx context.Context) rop.Result[int] {
		panic(errors.New("nil map write"))
	})
	cmd.Execute(context.Background())

	res, _ := cmd.LastResult()
	f, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, rop.KindUnexpected, f.Kind())
	assert.Contains(t, f.Message(), "nil map write")
}

func TestExecute_ScenarioC_SingleFlight(t *testing.T) {
	t.Parallel()

	g := newGate[int]()
	cmd := New(g.action)

	notifications := atomic.Int32{}
	cmd.Subscribe(func(State[int]) { notifications.Add(1) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd.Execute(context.Background())
	}()
	waitStarted(t, g.started)

	// dropped while the first run is in flight
	cmd.Execute(context.Background())
	assert.False(t, cmd.TryExecute(context.Background()))
	assert.Equal(t, int32(1), notifications.Load())

	g.release <- rop.Success(1)
	<-done

	assert.Equal(t, int32(1), g.calls.Load())
	assert.Equal(t, int32(2), notifications.Load())
}

func TestExecute_SingleFlightUnderConcurrency(t *testing.T) {
	t.Parallel()

	g := newGate[int]()
	cmd := New(g.action)

	var started atomic.Int32
	wg := sync.WaitGroup{}
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cmd.TryExecute(context.Background()) {
				started.Add(1)
			}
		}()
	}

	waitStarted(t, g.started)
	// give the other goroutines time to hit the guard
	time.Sleep(20 * time.Millisecond)
	g.release <- rop.Success(7)
	wg.Wait()

	assert.Equal(t, int32(1), started.Load())
	assert.Equal(t, int32(1), g.calls.Load())
}

func TestExecute_ClearsPreviousResultOnStart(t *testing.T) {
	t.Parallel()

	g := newGate[int]()
	cmd := New(g.action)

	go cmd.Execute(context.Background())
	waitStarted(t, g.started)
	g.release <- rop.Success(1)
	require.Eventually(t, func() bool { return !cmd.IsExecuting() }, time.Second, time.Millisecond)

	var startState State[int]
	seen := make(chan struct{}, 2)
	cmd.Subscribe(func(s State[int]) {
		if s.Executing {
			startState = s
		}
		seen <- struct{}{}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd.Execute(context.Background())
	}()
	waitStarted(t, g.started)
	<-seen

	assert.True(t, startState.Executing)
	assert.False(t, startState.HasResult)
	_, has := cmd.LastResult()
	assert.False(t, has)

	g.release <- rop.Fail[int](rop.Network("offline"))
	<-done

	res, has := cmd.LastResult()
	require.True(t, has)
	f, _ := res.Failure()
	assert.Equal(t, rop.KindNetwork, f.Kind())
}

func TestExecute_FailureStoredUnchanged(t *testing.T) {
	t.Parallel()

	want := rop.Fail[int](rop.Validation("email invalid"))
	cmd := New(func(ctx context.Context) rop.Result[int] { return want })
	cmd.Execute(context.Background())

	res, has := cmd.LastResult()
	require.True(t, has)
	assert.Equal(t, want.Id(), res.Id())
	f, _ := res.Failure()
	assert.Equal(t, "email invalid", f.UserMessage())
}

func TestExecute_EmptyResultBecomesUnexpected(t *testing.T) {
	t.Parallel()

	cmd := New(func(ctx context.Context) rop.Result[int] { return rop.Result[int]{} })
	cmd.Execute(context.Background())

	res, _ := cmd.LastResult()
	f, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, rop.KindUnexpected, f.Kind())
}

func TestExecute_Reentrant(t *testing.T) {
	t.Parallel()

	n := 0
	cmd := New(func(ctx context.Context) rop.Result[int] {
		n++
		return rop.Success(n)
	})

	for range 3 {
		cmd.Execute(context.Background())
	}

	res, _ := cmd.LastResult()
	v, _ := res.Value()
	assert.Equal(t, 3, v)
}

func TestClearResult_ScenarioD_MidFlight(t *testing.T) {
	t.Parallel()

	g := newGate[string]()
	cmd := New(g.action)

	done := make(chan struct{})
	go func() {
		defer close(done)
		cmd.Execute(context.Background())
	}()
	waitStarted(t, g.started)

	cmd.ClearResult()
	_, has := cmd.LastResult()
	assert.False(t, has)
	assert.True(t, cmd.IsExecuting())

	g.release <- rop.Success("late")
	<-done

	res, has := cmd.LastResult()
	require.True(t, has)
	v, _ := res.Value()
	assert.Equal(t, "late", v)
}

func TestClearResult_Notifies(t *testing.T) {
	t.Parallel()

	cmd := New(func(ctx context.Context) rop.Result[int] { return rop.Success(1) })
	cmd.Execute(context.Background())

	var last State[int]
	calls := 0
	cmd.Subscribe(func(s State[int]) {
		calls++
		last = s
	})

	cmd.ClearResult()

	assert.Equal(t, 1, calls)
	assert.False(t, last.HasResult)
	assert.False(t, last.Executing)
	_, has := cmd.LastResult()
	assert.False(t, has)
}

func TestUnsubscribe_StopsNotifications(t *testing.T) {
	t.Parallel()

	cmd := New(func(ctx context.Context) rop.Result[int] { return rop.Success(1) })
	calls := 0
	h := cmd.Subscribe(func(State[int]) { calls++ })

	cmd.Execute(context.Background())
	require.True(t, cmd.Unsubscribe(h))
	cmd.Execute(context.Background())

	assert.Equal(t, 2, calls)
}

func TestObserverReadsFieldsSynchronously(t *testing.T) {
	t.Parallel()

	cmd := New(func(ctx context.Context) rop.Result[int] { return rop.Success(9) })

	var executing []bool
	var hasResult []bool
	cmd.Subscribe(func(State[int]) {
		executing = append(executing, cmd.IsExecuting())
		_, has := cmd.LastResult()
		hasResult = append(hasResult, has)
	})

	cmd.Execute(context.Background())

	assert.Equal(t, []bool{true, false}, executing)
	assert.Equal(t, []bool{false, true}, hasResult)
}

func TestDispose(t *testing.T) {
	t.Parallel()

	calls := 0
	cmd := New(func(ctx context.Context) rop.Result[int] {
		calls++
		return rop.Success(1)
	})
	notifications := 0
	cmd.Subscribe(func(State[int]) { notifications++ })

	cmd.Dispose()

	assert.False(t, cmd.TryExecute(context.Background()))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, notifications)
}

func TestWatch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cmd := New(func(ctx context.Context) rop.Result[int] { return rop.Success(3) })
	states := cmd.Watch(ctx)

	cmd.Execute(context.Background())

	first := <-states
	second := <-states
	assert.True(t, first.Executing)
	assert.False(t, second.Executing)
	assert.True(t, second.HasResult)

	cmd.Dispose()
	_, ok := <-states
	assert.False(t, ok)
}

func TestNew_NilActionPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, ErrNilAction, func() { New[int](nil) })
}

func TestNameAndID(t *testing.T) {
	t.Parallel()

	a := New(func(ctx context.Context) rop.Result[int] { return rop.Success(1) }, WithName("load"))
	b := New(func(ctx context.Context) rop.Result[int] { return rop.Success(1) })

	assert.Equal(t, "load", a.Name())
	assert.Equal(t, "command", b.Name())
	assert.NotEqual(t, a.ID(), b.ID())
}
