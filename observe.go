package gostreamsx

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Meter returns a producer that produces the same elements as prod, in order,
// adding 1 to counter for each element. Metering does not otherwise affect the stream.
func Meter[T any](prod ProducerFunc[T], counter metric.Int64Counter) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range ch {
				counter.Add(ctx, 1)

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// TryMeter returns a producer that produces the same elements as prod, in order,
// adding 1 to values for each value and 1 to failures for each error element.
// Metering does not otherwise affect the stream.
func TryMeter[T any](prod TryProducerFunc[T], values metric.Int64Counter, failures metric.Int64Counter) TryProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Try[T] {
		ch := prod(ctx, cancel)

		outCh := make(chan Try[T])

		go func() {
			defer close(outCh)

			for elem := range ch {
				if elem.Err != nil {
					failures.Add(ctx, 1)
				} else {
					values.Add(ctx, 1)
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
