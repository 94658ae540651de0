package draw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pool(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestWithoutReplacement(t *testing.T) {
	t.Run("draws distinct elements", func(t *testing.T) {
		got := WithoutReplacement(pool(100), 20, NewSource(42))

		require.Len(t, got, 20)
		seen := make(map[int]struct{}, len(got))
		for _, v := range got {
			_, dup := seen[v]
			require.False(t, dup, "element %d drawn twice", v)
			seen[v] = struct{}{}
		}
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		first := WithoutReplacement(pool(50), 10, NewSource(7))
		second := WithoutReplacement(pool(50), 10, NewSource(7))

		require.Equal(t, first, second)
	})

	t.Run("different seeds give different draws", func(t *testing.T) {
		first := WithoutReplacement(pool(1000), 50, NewSource(1))
		second := WithoutReplacement(pool(1000), 50, NewSource(2))

		require.NotEqual(t, first, second)
	})

	t.Run("caps at pool size", func(t *testing.T) {
		got := WithoutReplacement(pool(5), 99, NewSource(42))

		require.ElementsMatch(t, pool(5), got)
	})

	t.Run("non-positive count draws nothing", func(t *testing.T) {
		require.Empty(t, WithoutReplacement(pool(5), 0, NewSource(42)))
		require.Empty(t, WithoutReplacement(pool(5), -3, NewSource(42)))
	})

	t.Run("does not modify the pool", func(t *testing.T) {
		p := pool(20)
		WithoutReplacement(p, 10, NewSource(42))

		require.Equal(t, pool(20), p)
	})
}

func TestShuffle(t *testing.T) {
	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		first, second := pool(30), pool(30)
		Shuffle(first, NewSource(42))
		Shuffle(second, NewSource(42))

		require.Equal(t, first, second)
	})

	t.Run("permutes without losing elements", func(t *testing.T) {
		p := pool(30)
		Shuffle(p, NewSource(42))

		require.ElementsMatch(t, pool(30), p)
		require.NotEqual(t, pool(30), p, "30 elements staying in place is astronomically unlikely")
	})
}

func TestSubSeed(t *testing.T) {
	t.Run("is a pure function of label and seed", func(t *testing.T) {
		require.Equal(t, SubSeed("2012-07/medium", 42), SubSeed("2012-07/medium", 42))
	})

	t.Run("distinct labels decorrelate", func(t *testing.T) {
		require.NotEqual(t, SubSeed("2012-07/medium", 42), SubSeed("2012-07/long", 42))
	})

	t.Run("distinct run seeds decorrelate", func(t *testing.T) {
		require.NotEqual(t, SubSeed("2012-07/medium", 1), SubSeed("2012-07/medium", 2))
	})
}
