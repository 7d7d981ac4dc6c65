// Package feed simulates the rider dashboard: a short list of delivery orders
// from the platforms a plan unlocks, headline stats and a progress indicator.
// Nothing is persisted; every call produces a fresh feed.
package feed

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/vitaran/vitaran/pkg/plans"
)

// ErrInvalidPlan is returned when the plan is not in the catalog.
var ErrInvalidPlan = errors.New("feed: invalid plan")

// Order statuses.
const (
	StatusAccepted = "Accepted"
	StatusPicked   = "Picked"
	StatusOut      = "Out"
)

var statuses = []string{StatusAccepted, StatusPicked, StatusOut}

// Generation bounds.
const (
	MinOrders = 5
	MaxOrders = 9

	MinProfit = 20

	// HighProfitThreshold marks orders worth highlighting.
	HighProfitThreshold = 70

	MinDistanceKm = 1.0
	MaxDistanceKm = 9.0

	ProgressSteps = 4
)

type Order struct {
	Platform   string  `json:"platform"`
	OrderID    string  `json:"orderId"`
	Status     string  `json:"status"`
	DistanceKm float64 `json:"km"`
	Profit     int     `json:"profit"`
	Logo       string  `json:"logo"`
	Priority   bool    `json:"priority"`
	HighProfit bool    `json:"highProfit"`
}

type Stats struct {
	TotalOrders int `json:"totalOrders"`
	Active      int `json:"active"`
	Completed   int `json:"completed"`
	Earnings    int `json:"earnings"` // whole rupees
}

// EarningsLabel renders earnings the way the dashboard shows them.
func (s Stats) EarningsLabel() string {
	return fmt.Sprintf("₹%d", s.Earnings)
}

// Progress is a step indicator where the first Active of Steps are lit.
type Progress struct {
	Steps  int `json:"steps"`
	Active int `json:"active"`
}

func (p Progress) IsActive(step int) bool {
	return step >= 0 && step < p.Active
}

type Feed struct {
	Plan     plans.ID `json:"plan"`
	Orders   []Order  `json:"orders"`
	Stats    Stats    `json:"stats"`
	Progress Progress `json:"progress"`
}

// Generator builds feeds from a random source. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng. A nil rng gets a randomly
// seeded PCG source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// NewSeeded returns a deterministic Generator, mostly for tests.
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate builds a feed for plan id.
func (g *Generator) Generate(id plans.ID) (Feed, error) {
	plan, ok := plans.Lookup(id)
	if !ok {
		return Feed{}, fmt.Errorf("%w: %q", ErrInvalidPlan, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.between(MinOrders, MaxOrders)
	orders := make([]Order, 0, n)
	for range n {
		orders = append(orders, g.order(plan))
	}

	slices.SortStableFunc(orders, func(a, b Order) int {
		return cmp.Compare(b.Profit, a.Profit)
	})
	orders[0].Priority = true

	return Feed{
		Plan:   plan.ID,
		Orders: orders,
		Stats: Stats{
			TotalOrders: g.between(80, 200),
			Active:      g.between(3, 9),
			Completed:   g.between(70, 180),
			Earnings:    g.between(3000, 12000),
		},
		Progress: Progress{
			Steps:  ProgressSteps,
			Active: g.between(1, ProgressSteps-1),
		},
	}, nil
}

func (g *Generator) order(plan plans.Plan) Order {
	platform := plan.Platforms[g.rng.IntN(len(plan.Platforms))]
	profit := g.between(MinProfit, plan.MaxProfit)
	km := g.rng.Float64()*(MaxDistanceKm-MinDistanceKm) + MinDistanceKm

	return Order{
		Platform:   platform,
		OrderID:    fmt.Sprintf("#VT%d", g.between(1000, 9999)),
		Status:     statuses[g.rng.IntN(len(statuses))],
		DistanceKm: math.Round(km*10) / 10,
		Profit:     profit,
		Logo:       plans.LogoPath(platform),
		HighProfit: profit >= HighProfitThreshold,
	}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
