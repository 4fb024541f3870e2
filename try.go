package gostreamsx

import (
	"context"
	"errors"
)

// A Try is a single element of a fallible stream: either a value, or an error.
type Try[T any] struct {
	// Elem is the value. It is only meaningful if Err is nil.
	Elem T

	// Err is the error the source surfaced in place of a value.
	Err error
}

// TryProducerFunc returns a channel of elements for a fallible stream.
// Errors travel in-band, as elements with a non-nil Err.
type TryProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Try[T]

// TryValue returns a Try element carrying elem.
func TryValue[T any](elem T) Try[T] {
	return Try[T]{Elem: elem}
}

// TryError returns a Try element carrying err.
func TryError[T any](err error) Try[T] {
	return Try[T]{Err: err}
}

// Ok returns true if t carries a value.
func (t Try[T]) Ok() bool {
	return t.Err == nil
}

// ProduceTry returns a producer that produces the elements of the given slices, in order.
func ProduceTry[T any](slices ...[]Try[T]) TryProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan Try[T] {
		outCh := make(chan Try[T])

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Lift returns a fallible producer that produces the same elements as prod, in order.
// The new producer never produces an error element.
func Lift[T any](prod ProducerFunc[T]) TryProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Try[T] {
		ch := prod(ctx, cancel)

		outCh := make(chan Try[T])

		go func() {
			defer close(outCh)

			for elem := range ch {
				select {
				case outCh <- TryValue(elem):

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// TryEach calls each for each value produced by prod.
// The first error element cancels the stream with that error and consumption stops.
// If prod or each cancel the stream's context, it returns the cause of the cancelation.
func TryEach[T any](ctx context.Context, prod TryProducerFunc[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := prod(ctx, cancel)

	index := uint64(0)

	var srcErr error

	for elem := range ch {
		if elem.Err != nil {
			srcErr = elem.Err

			cancel(srcErr)

			break
		}

		each(ctx, cancel, elem.Elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	if srcErr != nil {
		return srcErr
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}
