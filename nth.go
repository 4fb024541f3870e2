package gostreamsx

import "context"

// First returns the first element produced by prod, consuming exactly one element.
// It returns false if the stream ends without producing an element.
func First[T any](ctx context.Context, prod ProducerFunc[T]) (T, bool, error) {
	return Nth(ctx, prod, 0)
}

// Nth returns the nth (0-based) element produced by prod, consuming exactly n+1 elements.
// It returns false if the stream ends before producing n+1 elements.
// If prod cancels the stream's context, it returns a SourceStreamError wrapping the cause.
func Nth[T any](ctx context.Context, prod ProducerFunc[T], n uint64) (T, bool, error) {
	var result T

	found := false

	err := Each(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if index < n {
			return
		}

		result = elem
		found = true

		cancel(ErrShortCircuit)
	})
	if err != nil {
		var zero T
		return zero, false, sourceErr(err)
	}

	return result, found, nil
}

// TryFirst returns the first value produced by prod, consuming exactly one element.
// It returns false if the stream ends without producing a value.
func TryFirst[T any](ctx context.Context, prod TryProducerFunc[T]) (T, bool, error) {
	return TryNth(ctx, prod, 0)
}

// TryNth returns the nth (0-based) value produced by prod, consuming exactly n+1 elements.
// It returns false if the stream ends before producing n+1 values.
// An error element encountered before the nth value fails the call with a SourceStreamError
// wrapping that error.
func TryNth[T any](ctx context.Context, prod TryProducerFunc[T], n uint64) (T, bool, error) {
	var result T

	found := false

	err := TryEach(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if index < n {
			return
		}

		result = elem
		found = true

		cancel(ErrShortCircuit)
	})
	if err != nil {
		var zero T
		return zero, false, sourceErr(err)
	}

	return result, found, nil
}
