// README: Estimate domain types and the toll lookup capability interface.
package estimate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tollwise/internal/types"
)

var (
	ErrNoLegs        = errors.New("at least one trip leg is required")
	ErrInvalidWindow = errors.New("rental end before rental start")
)

// TripLeg is one directional trip segment. Immutable once submitted.
type TripLeg struct {
	Origin      string
	Destination string
	Waypoints   []string
	// DepartureTime is the leg's own departure timestamp. Zero means the
	// caller did not track one; the rental start is used instead.
	DepartureTime time.Time
}

// RentalWindow is the rental period. Same-day rentals are allowed; an end
// before the start is rejected.
type RentalWindow struct {
	Start time.Time
	End   time.Time
}

// LegTollCost is the per-leg toll split returned by the lookup collaborator.
// Cash is normally >= Tag but that is not enforced here.
type LegTollCost struct {
	Tag  decimal.Decimal
	Cash decimal.Decimal
}

// LookupRequest carries everything the lookup collaborator needs for one leg.
type LookupRequest struct {
	Origin        string
	Destination   string
	Waypoints     []string
	VehicleType   string
	DepartureTime time.Time
	Currency      string
}

// TollLookup is the capability interface for the external toll-cost service.
// A test double and the real client are interchangeable behind it.
type TollLookup interface {
	Lookup(ctx context.Context, req LookupRequest) (LegTollCost, error)
}

// LookupError reports which leg's lookup failed. Legs are 1-indexed in the
// message because that is how the caller submitted them.
type LookupError struct {
	Leg int
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("toll lookup failed for leg %d: %v", e.Leg, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Aggregate is the folded output of the per-leg lookups.
type Aggregate struct {
	TagTollsTotal  decimal.Decimal
	CashTollsTotal decimal.Decimal
	// TollDays is the set of calendar-day keys (jurisdiction-local,
	// "2006-01-02") on which at least one leg incurred tolls. Its size,
	// not the leg count, drives per-toll-day fee rules.
	TollDays map[string]struct{}
}

// Result is the full plan comparison for one request. Derived and ephemeral,
// recomputed per request. Money fields carry the request currency.
type Result struct {
	StandardTotal       types.Money
	UnlimitedTotal      types.Money
	Savings             types.Money
	TagTollsTotal       types.Money
	CashTollsTotal      types.Money
	ConvenienceFeeTotal types.Money
	RentalDayCount      int
	TollDayCount        int
	Recommendation      string
}
