package feed_test

import (
	"math"
	"regexp"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitaran/vitaran/pkg/feed"
	"github.com/vitaran/vitaran/pkg/plans"
)

var orderIDPattern = regexp.MustCompile(`^#VT[1-9]\d{3}$`)

func TestGenerateProperties(t *testing.T) {
	for _, plan := range plans.Catalog() {
		t.Run(plan.ID.String(), func(t *testing.T) {
			g := feed.NewSeeded(42)
			for run := 0; run < 1000; run++ {
				f, err := g.Generate(plan.ID)
				require.NoError(t, err)
				requireValidFeed(t, plan, f)
			}
		})
	}
}

func requireValidFeed(t *testing.T, plan plans.Plan, f feed.Feed) {
	t.Helper()

	require.Equal(t, plan.ID, f.Plan)
	require.GreaterOrEqual(t, len(f.Orders), feed.MinOrders)
	require.LessOrEqual(t, len(f.Orders), feed.MaxOrders)

	for i, o := range f.Orders {
		require.True(t, plan.Allows(o.Platform), "platform %s not in %s", o.Platform, plan.ID)
		require.GreaterOrEqual(t, o.Profit, feed.MinProfit)
		require.LessOrEqual(t, o.Profit, plan.MaxProfit)
		require.Regexp(t, orderIDPattern, o.OrderID)
		require.Contains(t, []string{feed.StatusAccepted, feed.StatusPicked, feed.StatusOut}, o.Status)
		require.GreaterOrEqual(t, o.DistanceKm, 1.0)
		require.LessOrEqual(t, o.DistanceKm, 9.0)
		require.InDelta(t, o.DistanceKm, math.Round(o.DistanceKm*10)/10, 1e-9, "one decimal place")
		require.Equal(t, plans.LogoPath(o.Platform), o.Logo)
		require.Equal(t, o.Profit >= feed.HighProfitThreshold, o.HighProfit)
		require.Equal(t, i == 0, o.Priority)
		if i > 0 {
			require.GreaterOrEqual(t, f.Orders[i-1].Profit, o.Profit, "orders sorted by profit desc")
		}
	}

	require.GreaterOrEqual(t, f.Stats.TotalOrders, 80)
	require.LessOrEqual(t, f.Stats.TotalOrders, 200)
	require.GreaterOrEqual(t, f.Stats.Active, 3)
	require.LessOrEqual(t, f.Stats.Active, 9)
	require.GreaterOrEqual(t, f.Stats.Completed, 70)
	require.LessOrEqual(t, f.Stats.Completed, 180)
	require.GreaterOrEqual(t, f.Stats.Earnings, 3000)
	require.LessOrEqual(t, f.Stats.Earnings, 12000)

	require.Equal(t, feed.ProgressSteps, f.Progress.Steps)
	require.GreaterOrEqual(t, f.Progress.Active, 1)
	require.LessOrEqual(t, f.Progress.Active, 3)
}

func TestGenerateEcomNeverShowsQuickCommerce(t *testing.T) {
	g := feed.NewSeeded(7)
	for run := 0; run < 200; run++ {
		f, err := g.Generate(plans.Ecom)
		require.NoError(t, err)
		for _, o := range f.Orders {
			require.Contains(t, []string{"Amazon", "Flipkart", "Meesho", "Myntra"}, o.Platform)
			require.LessOrEqual(t, o.Profit, 60)
			require.False(t, o.HighProfit, "ECOM tops out below the highlight threshold")
		}
	}
}

func TestGenerateCoversRanges(t *testing.T) {
	g := feed.NewSeeded(1)
	counts := map[int]bool{}
	platforms := map[string]bool{}
	for run := 0; run < 2000; run++ {
		f, err := g.Generate(plans.All)
		require.NoError(t, err)
		counts[len(f.Orders)] = true
		for _, o := range f.Orders {
			platforms[o.Platform] = true
		}
	}
	for n := feed.MinOrders; n <= feed.MaxOrders; n++ {
		require.True(t, counts[n], "order count %d never produced", n)
	}
	require.Len(t, platforms, 9)
}

func TestGenerateRejectsUnknownPlan(t *testing.T) {
	_, err := feed.NewSeeded(1).Generate("GOLD")
	require.ErrorIs(t, err, feed.ErrInvalidPlan)

	_, err = feed.NewSeeded(1).Generate("")
	require.ErrorIs(t, err, feed.ErrInvalidPlan)
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a, err := feed.NewSeeded(99).Generate(plans.Quick)
	require.NoError(t, err)
	b, err := feed.NewSeeded(99).Generate(plans.Quick)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGeneratorConcurrentUse(t *testing.T) {
	g := feed.NewGenerator(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f, err := g.Generate(plans.All)
				require.NoError(t, err)
				require.True(t, slices.IsSortedFunc(f.Orders, func(a, b feed.Order) int { return b.Profit - a.Profit }))
			}
		}()
	}
	wg.Wait()
}

func TestProgressAndEarnings(t *testing.T) {
	p := feed.Progress{Steps: 4, Active: 2}
	require.True(t, p.IsActive(0))
	require.True(t, p.IsActive(1))
	require.False(t, p.IsActive(2))
	require.False(t, p.IsActive(-1))

	require.Equal(t, "₹4500", feed.Stats{Earnings: 4500}.EarningsLabel())
}
