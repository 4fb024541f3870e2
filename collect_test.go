package gostreamsx

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestCollectWithLimit(t *testing.T) {
	tests := []struct {
		givenElems []int
		givenMax   uint64
		want       []int
	}{
		{
			givenElems: []int{1, 2, 3, 4},
			givenMax:   2,
			want:       []int{1, 2},
		},
		{
			givenElems: []int{1, 2},
			givenMax:   5,
			want:       []int{1, 2},
		},
		{
			givenElems: []int{},
			givenMax:   3,
			want:       []int{},
		},
	}

	for idx, test := range tests {
		t.Run(strconv.Itoa(idx), func(t *testing.T) {
			is := is.New(t)

			ctx := context.Background()

			result, err := CollectWithLimit(ctx, Produce(test.givenElems), test.givenMax)

			is.NoErr(err)
			is.Equal(result, test.want)
		})
	}
}

func TestCollectWithLimit_ZeroDoesNotStartSource(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	started := false

	ints := ProducerFunc[int](func(_ context.Context, _ context.CancelCauseFunc) <-chan int {
		started = true

		outCh := make(chan int)
		close(outCh)

		return outCh
	})

	result, err := CollectWithLimit(ctx, ints, 0)

	is.NoErr(err)
	is.Equal(result, []int{})
	is.True(!started)
}

func TestCollectWithLimit_ReleasesSource(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	producerCancelCause := make(chan error)

	ints := func(ctx context.Context, _ context.CancelCauseFunc) <-chan int {
		outCh := make(chan int)

		go func() {
			var cancelCause error

			defer func() {
				producerCancelCause <- cancelCause
			}()

			defer close(outCh)

			for i := 1; ; i++ {
				select {
				case outCh <- i:

				case <-ctx.Done():
					cancelCause = context.Cause(ctx)
					return
				}
			}
		}()

		return outCh
	}

	result, err := CollectWithLimit(ctx, ints, 3)

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
	is.Equal(<-producerCancelCause, ErrLimitReached)
}

func TestCollectWithLimit_SourceFails(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := failAfter(Produce([]int{1, 2, 3, 4}), 2, errStream)

	result, err := CollectWithLimit(ctx, ints, 4)

	is.Equal(result, nil)

	srcErr := &SourceStreamError{}
	is.True(errors.As(err, &srcErr))
	is.Equal(srcErr.Err, errStream)
}

func TestTryCollectWithLimit(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := ProduceTry([]Try[int]{TryValue(1), TryValue(2), TryValue(3), TryValue(4)})

	result, err := TryCollectWithLimit(ctx, ints, 2)

	is.NoErr(err)
	is.Equal(result, []int{1, 2})
}

func TestTryCollectWithLimit_ErrorBeforeLimit(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := ProduceTry([]Try[int]{TryValue(1), TryError[int](errStream), TryValue(2)})

	result, err := TryCollectWithLimit(ctx, ints, 3)

	is.Equal(result, nil)
	is.True(errors.Is(err, errStream))

	srcErr := &SourceStreamError{}
	is.True(errors.As(err, &srcErr))
}

func TestTryCollectWithLimit_ErrorBeyondLimit(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := ProduceTry([]Try[int]{TryValue(1), TryValue(2), TryError[int](errStream)})

	result, err := TryCollectWithLimit(ctx, ints, 2)

	is.NoErr(err)
	is.Equal(result, []int{1, 2})
}
