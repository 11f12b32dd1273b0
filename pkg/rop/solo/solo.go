package solo

import (
	"context"

	"github.com/ib-77/asyncmd/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](f rop.AppFailure) rop.Result[T] {
	return rop.Fail[T](f)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.Fail[T](rop.Validation(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, f rop.AppFailure)) rop.Result[T] {

	input.Match(
		func(v T) { onSuccess(ctx, v) },
		func(f rop.AppFailure) { onFailure(ctx, f) },
	)
	return input
}

// Try calls onTryExecute with the successful value and classifies a
// returned error with rop.FromError.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		return rop.Fail[Out](rop.FromError(err))
	}
	return rop.Success(out)
}

// Lift adapts a plain (T, error) function into an action.
func Lift[T any](fn func(ctx context.Context) (T, error)) rop.Action[T] {
	return func(ctx context.Context) rop.Result[T] {
		v, err := fn(ctx)
		if err != nil {
			return rop.Fail[T](rop.FromError(err))
		}
		return rop.Success(v)
	}
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](rop.FromError(err))
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f rop.AppFailure) Out) Out {

	return rop.Match(input,
		func(v In) Out { return onSuccess(ctx, v) },
		func(f rop.AppFailure) Out { return onFailure(ctx, f) },
	)
}
