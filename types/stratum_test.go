package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	t.Run("extracts year and month", func(t *testing.T) {
		m := MonthOf(time.Date(2012, time.July, 15, 10, 0, 0, 0, time.UTC))
		require.Equal(t, Month{Year: 2012, Month: time.July}, m)
		require.False(t, m.IsZero())
	})

	t.Run("zero time yields zero month", func(t *testing.T) {
		m := MonthOf(time.Time{})
		require.True(t, m.IsZero())
	})
}

func TestMonth_Compare(t *testing.T) {
	jan2012 := Month{Year: 2012, Month: time.January}
	dec2011 := Month{Year: 2011, Month: time.December}
	feb2012 := Month{Year: 2012, Month: time.February}

	require.Equal(t, 0, jan2012.Compare(jan2012))
	require.Equal(t, -1, dec2011.Compare(jan2012))
	require.Equal(t, 1, feb2012.Compare(jan2012))
}

func TestMonth_String(t *testing.T) {
	require.Equal(t, "2012-07", Month{Year: 2012, Month: time.July}.String())
	require.Equal(t, "2012-11", Month{Year: 2012, Month: time.November}.String())
}

func TestStratumKey_Compare(t *testing.T) {
	t.Run("orders by month first", func(t *testing.T) {
		a := StratumKey{Month: Month{2012, time.January}, BucketIndex: 3, Bucket: "extra_long"}
		b := StratumKey{Month: Month{2012, time.February}, BucketIndex: 0, Bucket: "short"}
		require.Equal(t, -1, a.Compare(b))
		require.Equal(t, 1, b.Compare(a))
	})

	t.Run("orders by bucket position within a month", func(t *testing.T) {
		a := StratumKey{Month: Month{2012, time.March}, BucketIndex: 0, Bucket: "short"}
		b := StratumKey{Month: Month{2012, time.March}, BucketIndex: 1, Bucket: "medium"}
		require.Equal(t, -1, a.Compare(b))
	})

	t.Run("orders by rating last", func(t *testing.T) {
		a := StratumKey{Month: Month{2012, time.March}, BucketIndex: 1, Bucket: "medium", Rating: 2}
		b := StratumKey{Month: Month{2012, time.March}, BucketIndex: 1, Bucket: "medium", Rating: 5}
		require.Equal(t, -1, a.Compare(b))
		require.Equal(t, 0, a.Compare(a))
	})
}

func TestStratumKey_String(t *testing.T) {
	t.Run("omits rating when stratification is off", func(t *testing.T) {
		k := StratumKey{Month: Month{2012, time.July}, BucketIndex: 1, Bucket: "medium"}
		require.Equal(t, "2012-07/medium", k.String())
	})

	t.Run("includes rating when present", func(t *testing.T) {
		k := StratumKey{Month: Month{2012, time.July}, BucketIndex: 1, Bucket: "medium", Rating: 4}
		require.Equal(t, "2012-07/medium/4", k.String())
	})
}

func TestQuotaPlan_Totals(t *testing.T) {
	plan := QuotaPlan{
		Cells: []Cell{
			{Key: StratumKey{Bucket: "short"}, Size: 10},
			{Key: StratumKey{Bucket: "medium"}, Size: 4},
		},
		Quotas: []int{7, 2},
		Target: 9,
	}

	require.Equal(t, 9, plan.Realized())
	require.Equal(t, 14, plan.Population())
}
