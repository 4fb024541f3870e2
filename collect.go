package gostreamsx

import (
	"context"
	"errors"
)

// CollectWithLimit consumes prod, collecting its elements into a slice, in order,
// up to max elements. It completes once max elements have been collected or the
// stream ends, whichever occurs first; reaching the limit releases the source by
// canceling it with ErrLimitReached. A max of 0 returns an empty slice without
// starting the source.
// If prod cancels the stream's context, no partial result is returned and it
// returns a SourceStreamError wrapping the cause.
func CollectWithLimit[T any](ctx context.Context, prod ProducerFunc[T], max uint64) ([]T, error) {
	if max == 0 {
		return []T{}, nil
	}

	result := []T{}

	err := Each(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		result = append(result, elem)

		if uint64(len(result)) == max {
			cancel(ErrLimitReached)
		}
	})
	if err != nil && !errors.Is(err, ErrLimitReached) {
		return nil, sourceErr(err)
	}

	return result, nil
}

// TryCollectWithLimit consumes prod, collecting its values into a slice, in order,
// up to max values. It completes once max values have been collected or the stream
// ends, whichever occurs first; reaching the limit releases the source by canceling
// it with ErrLimitReached. A max of 0 returns an empty slice without starting the
// source.
// An error element encountered before the limit fails the call with a SourceStreamError
// wrapping that error; no partial result is returned.
func TryCollectWithLimit[T any](ctx context.Context, prod TryProducerFunc[T], max uint64) ([]T, error) {
	if max == 0 {
		return []T{}, nil
	}

	result := []T{}

	err := TryEach(ctx, prod, func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		result = append(result, elem)

		if uint64(len(result)) == max {
			cancel(ErrLimitReached)
		}
	})
	if err != nil && !errors.Is(err, ErrLimitReached) {
		return nil, sourceErr(err)
	}

	return result, nil
}
