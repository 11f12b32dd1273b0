package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ib-77/asyncmd/pkg/rop"
	"github.com/sony/gobreaker/v2"
)

// Decorator wraps an action with cross-cutting behaviour.
type Decorator[T any] func(rop.Action[T]) rop.Action[T]

// Apply wraps action with decorators; the first one becomes the outermost.
func Apply[T any](action rop.Action[T], decorators ...Decorator[T]) rop.Action[T] {
	for i := range len(decorators) {
		if d := decorators[len(decorators)-1-i]; d != nil {
			action = d(action)
		}
	}
	return action
}

// Standard wraps action with breaker, retry and timeout built from cfg.
// Each call creates fresh breaker state, so build the wrapped action once
// and reuse it; wrapping per invocation leaves the breaker always closed.
func Standard[T any](name string, action rop.Action[T], cfg Config, logger *slog.Logger) rop.Action[T] {
	var breaker Decorator[T]
	if cfg.BreakerEnabled {
		breaker = Breaker[T](name, cfg, logger)
	}
	return Apply(action,
		breaker,
		Retry[T](cfg.MaxRetries, cfg.InitialBackoff, cfg.MaxBackoff),
		Timeout[T](cfg.Timeout),
	)
}

// Timeout bounds one call of the action. An expired deadline yields a
// network failure even if the action ignores its context; the action's
// late result is discarded.
func Timeout[T any](d time.Duration) Decorator[T] {
	return func(next rop.Action[T]) rop.Action[T] {
		if d <= 0 {
			return next
		}
		return func(ctx context.Context) rop.Result[T] {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			done := make(chan rop.Result[T], 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						done <- rop.Fail[T](rop.Unexpected(fmt.Sprint(r)))
					}
				}()
				done <- next(ctx)
			}()

			select {
			case res := <-done:
				return res
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return rop.Fail[T](rop.Network(fmt.Sprintf("timeout after %s", d)))
				}
				return rop.Fail[T](rop.FromError(ctx.Err()))
			}
		}
	}
}

// Retry re-runs the action on retryable failures with exponential backoff
// capped at maxDelay. Non-retryable failures return at once.
func Retry[T any](maxRetries int, initialDelay, maxDelay time.Duration) Decorator[T] {
	return func(next rop.Action[T]) rop.Action[T] {
		if maxRetries <= 0 {
			return next
		}
		return func(ctx context.Context) rop.Result[T] {
			delay := min(initialDelay, maxDelay)
			var res rop.Result[T]

			for attempt := 0; attempt <= maxRetries; attempt++ {
				if attempt > 0 {
					select {
					case <-ctx.Done():
						return rop.Fail[T](rop.FromError(ctx.Err()))
					case <-time.After(delay):
					}

					delay *= 2
					if delay > maxDelay {
						delay = maxDelay
					}
				}

				res = next(ctx)
				f, failed := res.Failure()
				if !failed || !rop.IsRetryable(f) {
					return res
				}
			}

			return res
		}
	}
}

// Breaker guards the action with a gobreaker circuit breaker. Only
// retryable failures count against it; while it is open the action is not
// called and a server failure is returned. Every call to Breaker creates a
// new breaker with its own counts; actions decorated by the same returned
// Decorator share it. A zero failure threshold uses the default.
func Breaker[T any](name string, cfg Config, logger *slog.Logger) Decorator[T] {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = DefaultConfig().BreakerFailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !rop.IsRetryable(rop.FromError(err))
		},
	}
	cb := gobreaker.NewCircuitBreaker[T](settings)

	return func(next rop.Action[T]) rop.Action[T] {
		return func(ctx context.Context) rop.Result[T] {
			v, err := cb.Execute(func() (T, error) {
				res := next(ctx)
				if v, ok := res.Value(); ok {
					return v, nil
				}
				var zero T
				if err := res.Err(); err != nil {
					return zero, err
				}
				return zero, rop.Unexpected("action returned an empty result")
			})

			switch {
			case err == nil:
				return rop.Success(v)
			case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
				return rop.Fail[T](rop.Server(fmt.Sprintf("%s: %v", name, err)))
			default:
				return rop.Fail[T](rop.FromError(err))
			}
		}
	}
}
