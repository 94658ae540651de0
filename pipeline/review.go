package pipeline

import (
	"time"

	"github.com/alanchen34/stratify/types"
)

// Review is one product review row. The sampler reads only the body, date,
// and star rating; everything else is payload carried through to the output.
type Review struct {
	Marketplace      string
	CustomerID       int64
	ReviewID         string
	ProductID        string
	ProductParent    int64
	ProductTitle     string
	ProductCategory  string
	StarRating       int
	HelpfulVotes     int
	TotalVotes       int
	Vine             bool
	VerifiedPurchase bool
	ReviewHeadline   string
	ReviewBody       string

	// ReviewDate is the review date; the zero time means the date was
	// missing or unparseable and the review cannot be stratified.
	ReviewDate time.Time

	// Category is the pipeline category label, set after sampling.
	Category string
}

var _ types.Record = (*Review)(nil)

// Body returns the review body text.
func (r *Review) Body() string { return r.ReviewBody }

// Date returns the review date (zero = undefined).
func (r *Review) Date() time.Time { return r.ReviewDate }

// Rating returns the star rating.
func (r *Review) Rating() int { return r.StarRating }
