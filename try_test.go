package gostreamsx

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

var errStream = errors.New("stream broke")

func TestProduceTry(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := ProduceTry([]Try[int]{TryValue(1), TryValue(2), TryValue(3)})

	result := []int{}

	err := TryEach(ctx, ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		is.Equal(index, uint64(elem-1))

		result = append(result, elem)
	})

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
}

func TestTryEach_Error(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := ProduceTry([]Try[int]{TryValue(1), TryValue(2), TryError[int](errStream), TryValue(3)})

	result := []int{}

	err := TryEach(ctx, ints, func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) {
		result = append(result, elem)
	})

	is.Equal(result, []int{1, 2})
	is.Equal(err, errStream)
}

func TestLift(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Lift(Produce([]int{1, 2, 3}))

	result, err := TryCollectWithLimit(ctx, ints, 10)

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
}

func TestTryOk(t *testing.T) {
	is := is.New(t)

	is.True(TryValue(42).Ok())
	is.True(!TryError[int](errStream).Ok())
}
