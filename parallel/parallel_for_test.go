package parallel_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/arkmesh/meshkit/parallel"
	"github.com/stretchr/testify/require"
)

// TestForVisitsEveryIndexExactlyOnce checks property 11: for every length
// and every block size, every index in [0,length) is visited exactly once,
// regardless of how the range is cut into blocks.
func TestForVisitsEveryIndexExactlyOnce(t *testing.T) {
	lengths := []int{0, 1, 2, 7, 100, 100000}
	for _, n := range lengths {
		blockSizes := []int{0, 1, 2, 10, n - 1, n, n + 1, 2 * n}
		for _, bs := range blockSizes {
			n, bs := n, bs
			t.Run("", func(t *testing.T) {
				visited := make([]int32, n)
				var mu sync.Mutex
				parallel.For(n, bs, func(i int) {
					mu.Lock()
					visited[i]++
					mu.Unlock()
				})
				for i, c := range visited {
					require.Equal(t, int32(1), c, "index %d visited %d times (n=%d blockSize=%d)", i, c, n, bs)
				}
			})
		}
	}
}

func TestForNonPositiveLengthIsNoOp(t *testing.T) {
	called := false
	parallel.For(0, 0, func(i int) { called = true })
	parallel.For(-5, 0, func(i int) { called = true })
	require.False(t, called)
}

func TestForErrPropagatesFirstError(t *testing.T) {
	sentinel := errors.New("boom")
	err := parallel.ForErr(10, 1, func(i int) error {
		if i == 3 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestForErrRunsAllBlocksToCompletion(t *testing.T) {
	var count int32
	var mu sync.Mutex
	err := parallel.ForErr(20, 2, func(i int) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 20, count)
}

func TestForErrNoErrorReturnsNil(t *testing.T) {
	err := parallel.ForErr(0, 0, func(i int) error { return errors.New("never") })
	require.NoError(t, err)
}
