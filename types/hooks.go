package types

// Hooks defines optional callbacks invoked during a sampling run.
//
// Unlike asynchronous lifecycle hooks in long-running systems, these run
// synchronously inside Sample: the sampler has no background goroutines and
// a run is a pure function of its inputs. Hook errors are logged and never
// abort the run.
//
// Best practices for hook implementations:
//   - Complete quickly (hooks sit on the sampling path)
//   - Do not retain the QuotaPlan slices beyond the call; copy if needed
//   - Be safe for concurrent use when one sampler serves parallel runs
//
// Example:
//
//	hooks := &stratify.Hooks{
//	    OnPlanComputed: func(plan stratify.QuotaPlan) error {
//	        reportQuotas(plan)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPlanComputed is called after quota allocation, before any drawing.
	// The plan describes every populated cell and its quota.
	OnPlanComputed func(plan QuotaPlan) error

	// OnSampled is called after the final permutation with the realized
	// sample size.
	OnSampled func(count int) error
}
