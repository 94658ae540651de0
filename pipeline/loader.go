package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column names required in a review file header.
var requiredColumns = []string{
	"marketplace", "customer_id", "review_id", "product_id", "product_parent",
	"product_title", "product_category", "star_rating", "helpful_votes",
	"total_votes", "vine", "verified_purchase", "review_headline",
	"review_body", "review_date",
}

// lineSeparators are Unicode line/paragraph separators that occasionally
// appear inside review bodies and break line-oriented consumers.
var lineSeparators = strings.NewReplacer(" ", " ", " ", " ")

// reviewDateLayout is the date format of the review files.
const reviewDateLayout = "2006-01-02"

// maxLineBytes caps a single review row. Bodies are large but bounded.
const maxLineBytes = 4 << 20

// LoadResult is the outcome of loading one review file.
type LoadResult struct {
	// Reviews are the parsed rows in file order.
	Reviews []*Review

	// SkippedRows counts rows dropped for a wrong field count. Field-level
	// problems (bad numbers, bad dates) never drop a row; they yield zero
	// values and the review is excluded later if it cannot be stratified.
	SkippedRows int
}

// LoadReviews reads a tab-delimited review file.
//
// The format is header-first TSV with no quoting: quote characters are data
// and tabs separate fields unless backslash-escaped. A backslash makes the
// next byte literal (so \" stays a quote and \<tab> stays inside its field)
// and is itself dropped. Unicode line separators inside fields are scrubbed
// to plain spaces. Y/N columns become booleans; an unparseable review date
// yields the zero time, marking the review as undated rather than failing
// the load.
//
// Parameters:
//   - path: Path to the .tsv file
//
// Returns:
//   - *LoadResult: Parsed reviews plus load statistics
//   - error: Open/read failure or a header missing required columns
func LoadReviews(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reviews: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidHeader, path)
	}

	col, err := headerIndex(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := &LoadResult{}
	fieldCount := col.fields
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) != fieldCount {
			result.SkippedRows++
			continue
		}
		result.Reviews = append(result.Reviews, parseReview(fields, col))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read reviews: %w", err)
	}

	return result, nil
}

// splitFields splits a row on tab separators, honoring backslash escapes:
// a backslash makes the next byte literal and is dropped, matching the
// writers that escape quotes and tabs inside review bodies.
func splitFields(line string) []string {
	if !strings.Contains(line, `\`) {
		return strings.Split(line, "\t")
	}

	var fields []string
	var field strings.Builder
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '\\':
			if i+1 < len(line) {
				i++
				field.WriteByte(line[i])
			}
		case '\t':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, field.String())
}

// columnIndex maps required column names to their field positions.
type columnIndex struct {
	fields int
	pos    map[string]int
}

func headerIndex(header string) (*columnIndex, error) {
	names := splitFields(header)
	pos := make(map[string]int, len(names))
	for i, name := range names {
		pos[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHeader, name)
		}
	}

	return &columnIndex{fields: len(names), pos: pos}, nil
}

func parseReview(fields []string, col *columnIndex) *Review {
	get := func(name string) string {
		return lineSeparators.Replace(fields[col.pos[name]])
	}

	date, err := time.Parse(reviewDateLayout, strings.TrimSpace(get("review_date")))
	if err != nil {
		date = time.Time{}
	}

	return &Review{
		Marketplace:      get("marketplace"),
		CustomerID:       parseInt64(get("customer_id")),
		ReviewID:         get("review_id"),
		ProductID:        get("product_id"),
		ProductParent:    parseInt64(get("product_parent")),
		ProductTitle:     get("product_title"),
		ProductCategory:  get("product_category"),
		StarRating:       parseInt(get("star_rating")),
		HelpfulVotes:     parseInt(get("helpful_votes")),
		TotalVotes:       parseInt(get("total_votes")),
		Vine:             get("vine") == "Y",
		VerifiedPurchase: get("verified_purchase") == "Y",
		ReviewHeadline:   get("review_headline"),
		ReviewBody:       get("review_body"),
		ReviewDate:       date,
	}
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return v
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}

	return v
}
