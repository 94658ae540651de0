package types

import (
	"fmt"
	"time"
)

// Month is a calendar year-month period.
//
// It replaces dynamic period types with a plain (year, month) pair so it can
// serve directly as part of a comparable map key.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// MonthOf extracts the calendar month of t. The zero time yields the zero
// Month, which marks the record date as undefined.
func MonthOf(t time.Time) Month {
	if t.IsZero() {
		return Month{}
	}

	return Month{Year: t.Year(), Month: t.Month()}
}

// IsZero reports whether the month is undefined.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Compare orders months chronologically.
//
// Returns:
//   - int: -1 if m < o, 0 if equal, +1 if m > o
func (m Month) Compare(o Month) int {
	if m.Year != o.Year {
		if m.Year < o.Year {
			return -1
		}

		return 1
	}
	if m.Month != o.Month {
		if m.Month < o.Month {
			return -1
		}

		return 1
	}

	return 0
}

// String renders the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// StratumKey identifies one stratum of the sampling pool.
//
// Two records belong to the same stratum iff their keys compare equal. The
// key is a comparable struct and is used directly as a map key when grouping
// records into cells.
type StratumKey struct {
	// Month is the calendar month of the record date.
	Month Month `json:"month"`

	// BucketIndex is the position of the length bucket within the active
	// partition. It exists so keys order by bucket range, not label text.
	BucketIndex int `json:"bucketIndex"`

	// Bucket is the label of the length bucket (e.g. "short", "medium").
	Bucket string `json:"bucket"`

	// Rating is the 1-5 rating component, or 0 when rating stratification
	// is disabled.
	Rating int `json:"rating,omitempty"`
}

// Compare orders keys by month, then bucket position, then rating.
//
// This is the grouping order used for cell iteration: reproducible, never
// influenced by cell sizes.
//
// Returns:
//   - int: -1 if k < o, 0 if equal, +1 if k > o
func (k StratumKey) Compare(o StratumKey) int {
	if c := k.Month.Compare(o.Month); c != 0 {
		return c
	}
	if k.BucketIndex != o.BucketIndex {
		if k.BucketIndex < o.BucketIndex {
			return -1
		}

		return 1
	}
	if k.Rating != o.Rating {
		if k.Rating < o.Rating {
			return -1
		}

		return 1
	}

	return 0
}

// String renders the key as "YYYY-MM/bucket" or "YYYY-MM/bucket/rating".
//
// The rendering is stable and unique per key, making it suitable for seed
// derivation and metric labels.
func (k StratumKey) String() string {
	if k.Rating == 0 {
		return k.Month.String() + "/" + k.Bucket
	}

	return fmt.Sprintf("%s/%s/%d", k.Month.String(), k.Bucket, k.Rating)
}
