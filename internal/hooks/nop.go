// Package hooks provides the default no-op hook implementations.
package hooks

import "github.com/alanchen34/stratify/types"

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided, eliminating
// nil checks on the sampling path.
type NopHooks struct{}

// Compile-time assertions that NopHooks provides the hook callbacks.
var (
	_ func(types.QuotaPlan) error = (*NopHooks)(nil).OnPlanComputed
	_ func(int) error             = (*NopHooks)(nil).OnSampled
)

// NewNop creates a new no-op hooks set.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnPlanComputed: h.OnPlanComputed,
		OnSampled:      h.OnSampled,
	}
}

// OnPlanComputed is a no-op implementation.
func (h *NopHooks) OnPlanComputed(_ types.QuotaPlan) error {
	return nil
}

// OnSampled is a no-op implementation.
func (h *NopHooks) OnSampled(_ int) error {
	return nil
}
