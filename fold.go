package gostreamsx

import "context"

// MutAccumulatorFunc folds element elem into the accumulator acc, mutating it in place.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MutAccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc *A)

// TryMutAccumulatorFunc folds element elem into the accumulator acc, mutating it in place.
// Returning a non-nil error short-circuits the fold.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type TryMutAccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc *A) error

// ReduceMut calls reduce for each element produced by prod, folding it into accumulator acc,
// returning the final accumulator. An empty stream returns acc unchanged.
// If prod or reduce cancel the stream's context, the accumulator is discarded and it returns
// a SourceStreamError wrapping the cause.
func ReduceMut[T any, A any](ctx context.Context, prod ProducerFunc[T], acc A, reduce MutAccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		reduce(ctx, cancel, elem, index, &acc)
	})
	if err != nil {
		var zero A
		return zero, sourceErr(err)
	}

	return acc, nil
}

// TryReduceMut calls reduce for each value produced by prod, folding it into accumulator acc,
// returning the final accumulator. An empty stream returns acc unchanged.
// An error element from prod, or an error returned by reduce, short-circuits the fold and
// discards the accumulator; reduce errors are returned unchanged, stream failures are
// returned as a SourceStreamError.
func TryReduceMut[T any, A any](ctx context.Context, prod TryProducerFunc[T], acc A, reduce TryMutAccumulatorFunc[T, A]) (A, error) {
	var reduceErr error

	err := TryEach(ctx, prod, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if err := reduce(ctx, cancel, elem, index, &acc); err != nil {
			reduceErr = err

			cancel(err)
		}
	})

	if reduceErr != nil {
		var zero A
		return zero, reduceErr
	}

	if err != nil {
		var zero A
		return zero, sourceErr(err)
	}

	return acc, nil
}
