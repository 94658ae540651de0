package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testHeader = "marketplace\tcustomer_id\treview_id\tproduct_id\tproduct_parent\t" +
	"product_title\tproduct_category\tstar_rating\thelpful_votes\ttotal_votes\t" +
	"vine\tverified_purchase\treview_headline\treview_body\treview_date"

func reviewRow(id, body, date string) string {
	return strings.Join([]string{
		"US", "12345", id, "B000TEST", "67890",
		"Test Product", "Books", "4", "2", "3",
		"N", "Y", "Great", body, date,
	}, "\t")
}

func writeTSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.tsv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	return path
}

func TestLoadReviews(t *testing.T) {
	t.Run("parses rows in file order", func(t *testing.T) {
		path := writeTSV(t,
			testHeader,
			reviewRow("R1", "a fine book overall", "2012-03-15"),
			reviewRow("R2", "did not enjoy it", "2012-07-01"),
		)

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Zero(t, result.SkippedRows)
		require.Len(t, result.Reviews, 2)

		r := result.Reviews[0]
		require.Equal(t, "R1", r.ReviewID)
		require.Equal(t, "US", r.Marketplace)
		require.Equal(t, int64(12345), r.CustomerID)
		require.Equal(t, int64(67890), r.ProductParent)
		require.Equal(t, 4, r.StarRating)
		require.Equal(t, 2, r.HelpfulVotes)
		require.Equal(t, 3, r.TotalVotes)
		require.False(t, r.Vine)
		require.True(t, r.VerifiedPurchase)
		require.Equal(t, "a fine book overall", r.ReviewBody)
		require.Equal(t, time.Date(2012, time.March, 15, 0, 0, 0, 0, time.UTC), r.ReviewDate)
		require.Equal(t, "R2", result.Reviews[1].ReviewID)
	})

	t.Run("skips rows with wrong field count", func(t *testing.T) {
		path := writeTSV(t,
			testHeader,
			reviewRow("R1", "a fine book overall", "2012-03-15"),
			"US\t12345\ttruncated row",
			reviewRow("R2", "did not enjoy it", "2012-07-01"),
		)

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Equal(t, 1, result.SkippedRows)
		require.Len(t, result.Reviews, 2)
	})

	t.Run("bad date yields zero time", func(t *testing.T) {
		path := writeTSV(t, testHeader, reviewRow("R1", "some body text here", "not-a-date"))

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Len(t, result.Reviews, 1)
		require.True(t, result.Reviews[0].ReviewDate.IsZero())
	})

	t.Run("bad numbers yield zero values", func(t *testing.T) {
		row := strings.Join([]string{
			"US", "not-a-number", "R1", "B000TEST", "x",
			"Test Product", "Books", "bad", "2", "3",
			"N", "Y", "Great", "some body text here", "2012-03-15",
		}, "\t")
		path := writeTSV(t, testHeader, row)

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Len(t, result.Reviews, 1)
		require.Zero(t, result.Reviews[0].CustomerID)
		require.Zero(t, result.Reviews[0].ProductParent)
		require.Zero(t, result.Reviews[0].StarRating)
	})

	t.Run("scrubs unicode line separators", func(t *testing.T) {
		path := writeTSV(t, testHeader, reviewRow("R1", "first second third", "2012-03-15"))

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Len(t, result.Reviews, 1)
		require.Equal(t, "first second third", result.Reviews[0].ReviewBody)
	})

	t.Run("backslash escapes keep tabs inside a field", func(t *testing.T) {
		path := writeTSV(t, testHeader, reviewRow("R1", "columns:\\\tA\\\tB done", "2012-03-15"))

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Zero(t, result.SkippedRows)
		require.Len(t, result.Reviews, 1)
		require.Equal(t, "columns:\tA\tB done", result.Reviews[0].ReviewBody)
	})

	t.Run("escaped quotes and backslashes are unescaped", func(t *testing.T) {
		path := writeTSV(t, testHeader, reviewRow("R1", `said \"wow\" about C:\\temp`, "2012-03-15"))

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Len(t, result.Reviews, 1)
		require.Equal(t, `said "wow" about C:\temp`, result.Reviews[0].ReviewBody)
	})

	t.Run("quote characters are plain data", func(t *testing.T) {
		path := writeTSV(t, testHeader, reviewRow("R1", `he said "buy it" twice`, "2012-03-15"))

		result, err := LoadReviews(path)
		require.NoError(t, err)
		require.Len(t, result.Reviews, 1)
		require.Equal(t, `he said "buy it" twice`, result.Reviews[0].ReviewBody)
	})

	t.Run("rejects header missing required columns", func(t *testing.T) {
		path := writeTSV(t, "marketplace\treview_id", "US\tR1")

		_, err := LoadReviews(path)
		require.ErrorIs(t, err, ErrInvalidHeader)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.tsv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := LoadReviews(path)
		require.ErrorIs(t, err, ErrInvalidHeader)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		_, err := LoadReviews(filepath.Join(t.TempDir(), "absent.tsv"))
		require.Error(t, err)
	})
}
