package types

import "fmt"

// Unbounded marks a bucket with no upper word-count limit.
const Unbounded = -1

// Bucket is one named range of word counts: [Min, Max), with Max of
// Unbounded meaning no upper limit.
type Bucket struct {
	Label string `yaml:"label" json:"label"`
	Min   int    `yaml:"min"   json:"min"`
	Max   int    `yaml:"max"   json:"max"`
}

// Contains reports whether the word count falls inside the bucket range.
func (b Bucket) Contains(length int) bool {
	if length < b.Min {
		return false
	}

	return b.Max == Unbounded || length < b.Max
}

// Buckets is an ordered partition of non-negative word counts into named
// ranges. A valid partition starts at zero, is contiguous with half-open
// boundaries, and ends with an unbounded bucket, so every non-negative
// length lands in exactly one bucket.
type Buckets []Bucket

// DefaultBuckets returns the standard four-bucket partition shared by every
// place length bucketing occurs:
//
//	[0, 50)   short
//	[50, 200) medium
//	[200,500) long
//	[500, ∞)  extra_long
func DefaultBuckets() Buckets {
	return Buckets{
		{Label: "short", Min: 0, Max: 50},
		{Label: "medium", Min: 50, Max: 200},
		{Label: "long", Min: 200, Max: 500},
		{Label: "extra_long", Min: 500, Max: Unbounded},
	}
}

// Validate checks the partition invariants.
//
// Rules:
//   - at least one bucket with a non-empty label
//   - first bucket starts at 0
//   - each bucket's Max equals the next bucket's Min (contiguous, strictly increasing)
//   - only the last bucket is unbounded
//
// Returns:
//   - error: wrapped ErrInvalidBuckets describing the first violation, nil if valid
func (bs Buckets) Validate() error {
	if len(bs) == 0 {
		return fmt.Errorf("%w: partition is empty", ErrInvalidBuckets)
	}
	if bs[0].Min != 0 {
		return fmt.Errorf("%w: first bucket must start at 0, got %d", ErrInvalidBuckets, bs[0].Min)
	}

	for i, b := range bs {
		if b.Label == "" {
			return fmt.Errorf("%w: bucket %d has no label", ErrInvalidBuckets, i)
		}

		last := i == len(bs)-1
		if last {
			if b.Max != Unbounded {
				return fmt.Errorf("%w: last bucket %q must be unbounded", ErrInvalidBuckets, b.Label)
			}

			continue
		}

		if b.Max == Unbounded {
			return fmt.Errorf("%w: only the last bucket may be unbounded, %q is not last", ErrInvalidBuckets, b.Label)
		}
		if b.Max <= b.Min {
			return fmt.Errorf("%w: bucket %q bounds [%d,%d) are not increasing", ErrInvalidBuckets, b.Label, b.Min, b.Max)
		}
		if bs[i+1].Min != b.Max {
			return fmt.Errorf("%w: gap between %q and %q (%d != %d)",
				ErrInvalidBuckets, b.Label, bs[i+1].Label, b.Max, bs[i+1].Min)
		}
	}

	return nil
}

// Lookup returns the index of the bucket containing the word count.
//
// Parameters:
//   - length: Non-negative word count
//
// Returns:
//   - int: Bucket index, -1 when no bucket matches (negative length or invalid partition)
func (bs Buckets) Lookup(length int) int {
	for i, b := range bs {
		if b.Contains(length) {
			return i
		}
	}

	return -1
}
