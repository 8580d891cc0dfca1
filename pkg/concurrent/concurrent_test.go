package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachVisitsEveryItem(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	out := make([]int, len(items))

	err := ForEach(context.Background(), items, 4, func(_ context.Context, i int, item int) error {
		out[i] = item * 2
		return nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*2, v)
	}
}

func TestForEachRespectsLimit(t *testing.T) {
	var running, peak atomic.Int32
	items := make([]struct{}, 50)

	err := ForEach(context.Background(), items, 3, func(context.Context, int, struct{}) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, _ int, item int) error {
		if item == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestForEachCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := ForEach(ctx, []int{1, 2, 3}, 2, func(context.Context, int, int) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

func TestForEachAllKeepsGoing(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32

	errs, err := ForEachAll(context.Background(), []int{1, 2, 3, 4}, 2, func(_ context.Context, _ int, item int) error {
		calls.Add(1)
		if item%2 == 0 {
			return boom
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
	require.Len(t, errs, 4)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
	assert.ErrorIs(t, errs[3], boom)
}

func TestForEachAllNoErrors(t *testing.T) {
	errs, err := ForEachAll(context.Background(), []int{1, 2}, 0, func(context.Context, int, int) error {
		return nil
	})
	assert.NoError(t, err)
	assert.Nil(t, errs)
}
