// README: Jurisdiction rate definitions for the two e-Toll plans.
package rates

import (
	"time"

	"github.com/shopspring/decimal"
)

// Basis selects how the Standard plan's convenience fee accrues.
type Basis string

const (
	// BasisFlatPerRentalDay charges the fee for every day of the rental.
	BasisFlatPerRentalDay Basis = "flat_per_rental_day"
	// BasisPerTollDay charges the fee only on calendar days with at least
	// one toll.
	BasisPerTollDay Basis = "per_toll_day"
)

// Rate is one jurisdiction's billing rule set. It is configuration data:
// resolved once per request and never mutated.
type Rate struct {
	Code                string
	Basis               Basis
	DailyConvenienceFee decimal.Decimal
	// ConvenienceFeeCap bounds the fee per rental; nil means uncapped.
	ConvenienceFeeCap  *decimal.Decimal
	UnlimitedDailyRate decimal.Decimal
	// UnlimitedCapDays bounds how many days the Unlimited plan bills;
	// nil means every rental day is charged.
	UnlimitedCapDays *int
	// TimeZone is the IANA zone used for all calendar-day math in this
	// jurisdiction. Legs and rental windows are bucketed in this zone,
	// never the caller's.
	TimeZone string
}

// Location resolves the jurisdiction's reference time zone.
func (r Rate) Location() (*time.Location, error) {
	return time.LoadLocation(r.TimeZone)
}

func capOf(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func daysOf(n int) *int {
	return &n
}
