package types

// Cell is one stratum of the pool: the records sharing a StratumKey.
// Only the key and the population size travel through the allocator; the
// member records stay inside the sampler.
type Cell struct {
	Key  StratumKey `json:"key"`
	Size int        `json:"size"`
}

// QuotaPlan is the allocator output for one sampling run: an integer quota
// per cell, in cell order.
//
// Invariants (guaranteed by the built-in allocators):
//   - 0 <= Quotas[i] <= Cells[i].Size for every i
//   - Realized() == min(Target, total population)
type QuotaPlan struct {
	// Cells are the populated strata in cell iteration order.
	Cells []Cell `json:"cells"`

	// Quotas holds the per-cell draw counts, parallel to Cells.
	Quotas []int `json:"quotas"`

	// Target is the requested total sample count.
	Target int `json:"target"`
}

// Realized returns the total number of records the plan actually draws.
// It is smaller than Target only when the population cannot satisfy it.
func (p QuotaPlan) Realized() int {
	total := 0
	for _, q := range p.Quotas {
		total += q
	}

	return total
}

// Population returns the total number of eligible records across all cells.
func (p QuotaPlan) Population() int {
	total := 0
	for _, c := range p.Cells {
		total += c.Size
	}

	return total
}
