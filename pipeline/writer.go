package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{
	"marketplace",
	"customer_id",
	"review_id",
	"product_id",
	"product_parent",
	"product_title",
	"product_category",
	"star_rating",
	"helpful_votes",
	"total_votes",
	"vine",
	"verified_purchase",
	"review_headline",
	"review_body",
	"review_date",
	"category",
}

// WriteCSV writes reviews to path as a CSV file, creating parent
// directories as needed.
//
// Parameters:
//   - path: Output file path (overwritten if present)
//   - reviews: Reviews to write
//
// Returns:
//   - error: Directory creation, file, or write failure
func WriteCSV(path string, reviews []*Review) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range reviews {
		if err := w.Write(csvRow(r)); err != nil {
			return fmt.Errorf("write review %s: %w", r.ReviewID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return f.Close()
}

func csvRow(r *Review) []string {
	date := ""
	if !r.ReviewDate.IsZero() {
		date = r.ReviewDate.Format(reviewDateLayout)
	}

	return []string{
		r.Marketplace,
		strconv.FormatInt(r.CustomerID, 10),
		r.ReviewID,
		r.ProductID,
		strconv.FormatInt(r.ProductParent, 10),
		r.ProductTitle,
		r.ProductCategory,
		strconv.Itoa(r.StarRating),
		strconv.Itoa(r.HelpfulVotes),
		strconv.Itoa(r.TotalVotes),
		flag(r.Vine),
		flag(r.VerifiedPurchase),
		r.ReviewHeadline,
		r.ReviewBody,
		date,
		r.Category,
	}
}

func flag(v bool) string {
	if v {
		return "Y"
	}

	return "N"
}
