package gostreamsx

import "context"

// FuseOnFail returns a producer that produces the same elements as prod, in order,
// until prod produces an error element. The error is produced, then the new producer
// ends the stream and releases the source by canceling it with ErrFused.
func FuseOnFail[T any](prod TryProducerFunc[T]) TryProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Try[T] {
		prodCtx, cancelProd := context.WithCancelCause(ctx)

		ch := prod(prodCtx, cancel)

		outCh := make(chan Try[T])

		go func() {
			defer cancelProd(nil)

			defer close(outCh)

			for elem := range ch {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}

				if elem.Err != nil {
					cancelProd(ErrFused)
					return
				}
			}
		}()

		return outCh
	}
}
