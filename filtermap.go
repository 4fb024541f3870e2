package gostreamsx

import "context"

// OptionMapperFunc maps element elem to type U, or drops it by returning false.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type OptionMapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) (U, bool)

// FilterMapOk returns a producer that calls mapp for each value produced by prod,
// mapping it to type U, and only produces values for which mapp returns true.
// Error elements pass through unchanged and do not consume an index.
func FilterMapOk[T any, U any](prod TryProducerFunc[T], mapp OptionMapperFunc[T, U]) TryProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Try[U] {
		ch := prod(ctx, cancel)

		outCh := make(chan Try[U])

		go func() {
			defer close(outCh)

			index := uint64(0)

			for elem := range ch {
				if elem.Err != nil {
					select {
					case outCh <- TryError[U](elem.Err):

					case <-ctx.Done():
						return
					}

					continue
				}

				outElem, ok := mapp(ctx, cancel, elem.Elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if !ok {
					continue
				}

				select {
				case outCh <- TryValue(outElem):

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}
