package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alanchen34/stratify/internal/stratum"
	"github.com/alanchen34/stratify/types"
)

// CategorySummary describes one category's sample.
type CategorySummary struct {
	// ReviewCount is the number of sampled reviews.
	ReviewCount int

	// LengthDistribution counts reviews per length bucket label.
	LengthDistribution map[string]int

	// RatingDistribution counts reviews per star rating.
	RatingDistribution map[int]int
}

// Summary describes a full pipeline run.
type Summary struct {
	// TotalReviews is the size of the merged dataset.
	TotalReviews int

	// Categories holds one summary per processed category.
	Categories map[string]CategorySummary
}

// Summarize builds the run summary from per-category samples.
//
// Parameters:
//   - categories: Sampled reviews keyed by category name
//   - buckets: Length bucket partition used for the distribution
//
// Returns:
//   - Summary: Counts and distributions for reporting
func Summarize(categories map[string][]*Review, buckets types.Buckets) Summary {
	summary := Summary{Categories: make(map[string]CategorySummary, len(categories))}

	for name, reviews := range categories {
		cs := CategorySummary{
			ReviewCount:        len(reviews),
			LengthDistribution: make(map[string]int),
			RatingDistribution: make(map[int]int),
		}
		for _, r := range reviews {
			if i := buckets.Lookup(stratum.WordCount(r.ReviewBody)); i >= 0 {
				cs.LengthDistribution[buckets[i].Label]++
			}
			cs.RatingDistribution[r.StarRating]++
		}
		summary.Categories[name] = cs
		summary.TotalReviews += len(reviews)
	}

	return summary
}

// String renders the summary as a human-readable report.
func (s Summary) String() string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "total reviews: %d\n", s.TotalReviews)
	for _, name := range names {
		cs := s.Categories[name]
		fmt.Fprintf(&b, "%s: %d reviews\n", name, cs.ReviewCount)

		labels := make([]string, 0, len(cs.LengthDistribution))
		for label := range cs.LengthDistribution {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(&b, "  length %s: %d\n", label, cs.LengthDistribution[label])
		}

		ratings := make([]int, 0, len(cs.RatingDistribution))
		for rating := range cs.RatingDistribution {
			ratings = append(ratings, rating)
		}
		sort.Ints(ratings)
		for _, rating := range ratings {
			fmt.Fprintf(&b, "  rating %d: %d\n", rating, cs.RatingDistribution[rating])
		}
	}

	return b.String()
}

// ValidationWarning flags a suspicious review in a sampled dataset.
type ValidationWarning struct {
	// Category is the review's category label.
	Category string

	// ReviewID identifies the review, when available.
	ReviewID string

	// Problem describes the issue.
	Problem string
}

// ValidateReviews scans sampled reviews for data quality problems.
//
// Problems are reported, never fatal: the sampler already excluded
// ineligible reviews, so anything flagged here points at loader or
// source-data issues worth inspecting.
//
// Parameters:
//   - reviews: Sampled reviews to scan
//
// Returns:
//   - []ValidationWarning: One entry per detected problem, nil when clean
func ValidateReviews(reviews []*Review) []ValidationWarning {
	var warnings []ValidationWarning
	add := func(r *Review, problem string) {
		warnings = append(warnings, ValidationWarning{
			Category: r.Category,
			ReviewID: r.ReviewID,
			Problem:  problem,
		})
	}

	for _, r := range reviews {
		body := strings.TrimSpace(r.ReviewBody)
		switch {
		case body == "":
			add(r, "empty review body")
		case len(body) < 10:
			add(r, "very short review body")
		}
		if r.StarRating < 1 || r.StarRating > 5 {
			add(r, fmt.Sprintf("invalid star rating %d", r.StarRating))
		}
		if r.ReviewDate.IsZero() {
			add(r, "missing review date")
		}
	}

	return warnings
}
