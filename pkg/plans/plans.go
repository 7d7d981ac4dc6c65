// Package plans is the catalog of subscription tiers. Each tier decides which
// delivery platforms a rider sees and the profit ceiling of a simulated order.
package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ID names a subscription tier. The set is closed: only the constants below
// are valid and Parse rejects everything else.
type ID string

const (
	Ecom  ID = "ECOM"
	Quick ID = "QUICK"
	All   ID = "ALL"
)

// ErrUnknown is returned for a plan name outside the catalog.
var ErrUnknown = errors.New("plans: unknown plan")

// Platform names as shown to the rider.
const (
	Amazon    = "Amazon"
	Flipkart  = "Flipkart"
	Meesho    = "Meesho"
	Myntra    = "Myntra"
	Swiggy    = "Swiggy"
	Zomato    = "Zomato"
	Zepto     = "Zepto"
	Instamart = "Instamart"
	Blinkit   = "Blinkit"
)

// Plan describes a tier: the platforms it unlocks and the highest per-order
// profit the simulator may generate for it.
type Plan struct {
	ID        ID       `json:"id"`
	Platforms []string `json:"platforms"`
	MaxProfit int      `json:"maxProfit"`
}

var catalog = []Plan{
	{
		ID:        Ecom,
		Platforms: []string{Amazon, Flipkart, Meesho, Myntra},
		MaxProfit: 60,
	},
	{
		ID:        Quick,
		Platforms: []string{Swiggy, Zomato, Zepto, Instamart, Blinkit},
		MaxProfit: 80,
	},
	{
		ID: All,
		Platforms: []string{
			Amazon, Flipkart, Meesho, Myntra,
			Swiggy, Zomato, Zepto, Instamart, Blinkit,
		},
		MaxProfit: 100,
	},
}

// Parse maps a user-supplied plan name onto the catalog. Surrounding space
// and letter case are ignored.
func Parse(s string) (ID, error) {
	id := ID(strings.ToUpper(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return id, nil
}

// Valid reports whether id is one of the catalog tiers.
func (id ID) Valid() bool {
	switch id {
	case Ecom, Quick, All:
		return true
	}
	return false
}

func (id ID) String() string { return string(id) }

// UnmarshalJSON only accepts catalog ids, so a decoded plan is always renderable.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Lookup returns the plan for id. The returned Plan owns its platform slice.
func Lookup(id ID) (Plan, bool) {
	for _, p := range catalog {
		if p.ID == id {
			p.Platforms = slices.Clone(p.Platforms)
			return p, true
		}
	}
	return Plan{}, false
}

// Catalog lists every plan in display order.
func Catalog() []Plan {
	out := make([]Plan, len(catalog))
	for i, p := range catalog {
		p.Platforms = slices.Clone(p.Platforms)
		out[i] = p
	}
	return out
}

// Allows reports whether the plan unlocks platform.
func (p Plan) Allows(platform string) bool {
	return slices.Contains(p.Platforms, platform)
}

// LogoPath is the static asset path for a platform's logo.
func LogoPath(platform string) string {
	return "/logos/" + strings.ToLower(platform) + ".png"
}
