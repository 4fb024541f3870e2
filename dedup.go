package gostreamsx

import "context"

// Dedup returns a producer that produces the same elements as prod, in order,
// dropping every element that has been produced before.
func Dedup[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return DedupBy(prod, Identity[T]())
}

// DedupBy returns a producer that produces the same elements as prod, in order,
// dropping every element whose key has been produced before.
// Keys are computed using key.
func DedupBy[T any, K comparable](prod ProducerFunc[T], key MapperFunc[T, K]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			seen := map[K]struct{}{}

			index := uint64(0)

			for elem := range ch {
				elemKey := key(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if _, ok := seen[elemKey]; ok {
					continue
				}

				seen[elemKey] = struct{}{}

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

// TryDedup returns a producer that produces the same elements as prod, in order,
// dropping every value that has been produced before.
// Error elements pass through unchanged and are never checked against the seen values.
func TryDedup[T comparable](prod TryProducerFunc[T]) TryProducerFunc[T] {
	return TryDedupBy(prod, Identity[T]())
}

// TryDedupBy returns a producer that produces the same elements as prod, in order,
// dropping every value whose key has been produced before.
// Keys are computed using key; the index given to key counts values only.
// Error elements pass through unchanged and are never checked against the seen keys.
func TryDedupBy[T any, K comparable](prod TryProducerFunc[T], key MapperFunc[T, K]) TryProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan Try[T] {
		ch := prod(ctx, cancel)

		outCh := make(chan Try[T])

		go func() {
			defer close(outCh)

			seen := map[K]struct{}{}

			index := uint64(0)

			for elem := range ch {
				if elem.Err == nil {
					elemKey := key(ctx, cancel, elem.Elem, index)

					if contextDone(ctx) {
						return
					}

					index++

					if _, ok := seen[elemKey]; ok {
						continue
					}

					seen[elemKey] = struct{}{}
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
