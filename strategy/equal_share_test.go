package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualShare_Allocate(t *testing.T) {
	alloc := NewEqualShare()

	t.Run("splits evenly with remainder to the first cells", func(t *testing.T) {
		quotas, err := alloc.Allocate([]int{100, 100, 100}, 10)

		require.NoError(t, err)
		require.Equal(t, []int{4, 3, 3}, quotas)
	})

	t.Run("does not redistribute freed capacity", func(t *testing.T) {
		quotas, err := alloc.Allocate([]int{2, 100}, 10)

		require.NoError(t, err)
		require.Equal(t, []int{2, 5}, quotas)
		require.Equal(t, 7, sum(quotas)) // under-fills the target of 10
	})

	t.Run("zero target yields all-zero quotas", func(t *testing.T) {
		quotas, err := alloc.Allocate([]int{4, 4}, 0)

		require.NoError(t, err)
		require.Equal(t, []int{0, 0}, quotas)
	})

	t.Run("rejects negative target", func(t *testing.T) {
		_, err := alloc.Allocate([]int{5}, -2)

		require.ErrorIs(t, err, ErrNegativeTarget)
	})

	t.Run("rejects non-positive cell size", func(t *testing.T) {
		_, err := alloc.Allocate([]int{-3}, 2)

		require.ErrorIs(t, err, ErrBadCellSize)
	})
}
