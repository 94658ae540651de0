package testing

import (
	"fmt"
	"strings"
	"time"

	"github.com/alanchen34/stratify/types"
)

// Rec is a minimal in-memory record for building sampling pools in tests.
type Rec struct {
	// ID labels the record so tests can track which records were drawn.
	ID string

	Text  string
	At    time.Time
	Stars int
}

var _ types.Record = (*Rec)(nil)

// Body returns the record text.
func (r *Rec) Body() string { return r.Text }

// Date returns the record timestamp (zero = undefined).
func (r *Rec) Date() time.Time { return r.At }

// Rating returns the star rating.
func (r *Rec) Rating() int { return r.Stars }

// NewRec builds a record with a body of exactly `words` tokens.
//
// Parameters:
//   - id: Record label
//   - words: Body word count
//   - at: Record date (zero time = undefined)
//   - stars: Rating value
//
// Returns:
//   - *Rec: The fixture record
func NewRec(id string, words int, at time.Time, stars int) *Rec {
	return &Rec{
		ID:    id,
		Text:  strings.TrimSpace(strings.Repeat("w ", words)),
		At:    at,
		Stars: stars,
	}
}

// Pool builds n records sharing one stratum: same month, same word count,
// same rating. IDs are "<prefix>-0" .. "<prefix>-n-1".
//
// Returns:
//   - []types.Record: The fixture pool
func Pool(prefix string, n, words int, at time.Time, stars int) []types.Record {
	out := make([]types.Record, n)
	for i := range out {
		out[i] = NewRec(fmt.Sprintf("%s-%d", prefix, i), words, at, stars)
	}

	return out
}
