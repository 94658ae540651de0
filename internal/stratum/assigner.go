// Package stratum derives stratum keys from records.
//
// The assigner is a pure function over a record's body, date, and rating: it
// either produces the record's StratumKey or an exclusion reason. It holds
// no state beyond its configuration and performs no I/O.
package stratum

import (
	"strings"

	"github.com/alanchen34/stratify/types"
)

// Exclusion reasons reported alongside a failed key assignment. They double
// as metric labels.
const (
	ReasonTooShort  = "too_short"
	ReasonNoDate    = "no_date"
	ReasonBadRating = "bad_rating"
)

// Assigner derives stratum keys for one sampler configuration.
type Assigner struct {
	minWords int
	buckets  types.Buckets
	byRating bool
}

// New creates an assigner.
//
// Parameters:
//   - minWords: Minimum body word count for eligibility
//   - buckets: Validated length bucket partition
//   - byRating: Whether the rating joins the stratum key
//
// Returns:
//   - *Assigner: Initialized assigner
func New(minWords int, buckets types.Buckets, byRating bool) *Assigner {
	return &Assigner{minWords: minWords, buckets: buckets, byRating: byRating}
}

// WordCount returns the number of whitespace-delimited tokens in body.
// A missing body counts zero tokens.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// Assign derives the stratum key of rec.
//
// A record is excluded, never erroring, when its body is below the word
// threshold, its date is undefined, or (with rating stratification on) its
// rating falls outside 1-5. Excluded records belong to no cell.
//
// Parameters:
//   - rec: Record to classify
//
// Returns:
//   - types.StratumKey: Derived key (zero value when excluded)
//   - string: Exclusion reason, "" when the record is eligible
func (a *Assigner) Assign(rec types.Record) (types.StratumKey, string) {
	length := WordCount(rec.Body())
	if length < a.minWords {
		return types.StratumKey{}, ReasonTooShort
	}

	month := types.MonthOf(rec.Date())
	if month.IsZero() {
		return types.StratumKey{}, ReasonNoDate
	}

	key := types.StratumKey{Month: month}

	idx := a.buckets.Lookup(length)
	if idx < 0 {
		// Unreachable with a validated partition; treat as too short.
		return types.StratumKey{}, ReasonTooShort
	}
	key.BucketIndex = idx
	key.Bucket = a.buckets[idx].Label

	if a.byRating {
		rating := rec.Rating()
		if rating < 1 || rating > 5 {
			return types.StratumKey{}, ReasonBadRating
		}
		key.Rating = rating
	}

	return key, ""
}
