// README: Deterministic lookup table used when no TollGuru key is configured.
package tollguru

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"tollwise/internal/modules/estimate"
)

type mockRoute struct {
	from string
	to   string
	tag  string
	cash string
}

// mockRoutes simulates different toll costs for a handful of well-known
// corridors; anything else falls back to the default split.
var mockRoutes = []mockRoute{
	{from: "Miami, FL", to: "Orlando, FL", tag: "8.50", cash: "12.75"},
	{from: "New York, NY", to: "Boston, MA", tag: "15.25", cash: "22.50"},
	{from: "Los Angeles, CA", to: "San Francisco, CA", tag: "12.00", cash: "18.00"},
	{from: "Chicago, IL", to: "Milwaukee, WI", tag: "6.75", cash: "10.25"},
	{from: "Dallas, TX", to: "Houston, TX", tag: "9.50", cash: "14.25"},
}

const (
	defaultMockTag  = "5.00"
	defaultMockCash = "7.50"
)

// Mock implements estimate.TollLookup from a static table. It never fails,
// which makes it the development and demo collaborator.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Lookup(_ context.Context, req estimate.LookupRequest) (estimate.LegTollCost, error) {
	fromCity := cityOf(req.Origin)
	toCity := cityOf(req.Destination)
	for _, r := range mockRoutes {
		if strings.Contains(strings.ToLower(r.from), fromCity) ||
			strings.Contains(strings.ToLower(r.to), toCity) {
			return estimate.LegTollCost{
				Tag:  decimal.RequireFromString(r.tag),
				Cash: decimal.RequireFromString(r.cash),
			}, nil
		}
	}
	return estimate.LegTollCost{
		Tag:  decimal.RequireFromString(defaultMockTag),
		Cash: decimal.RequireFromString(defaultMockCash),
	}, nil
}

// cityOf extracts the city portion of an address ("Miami, FL" -> "miami").
func cityOf(address string) string {
	city, _, _ := strings.Cut(address, ",")
	return strings.ToLower(strings.TrimSpace(city))
}
