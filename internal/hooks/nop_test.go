package hooks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alanchen34/stratify/types"
)

func TestNopHooks(t *testing.T) {
	h := NewNop()

	require.NotNil(t, h.OnPlanComputed)
	require.NotNil(t, h.OnSampled)

	require.NoError(t, h.OnPlanComputed(types.QuotaPlan{Target: 10}))
	require.NoError(t, h.OnSampled(7))
}
