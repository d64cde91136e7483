// README: Built-in rate table used when no database overrides exist.
package rates

import "github.com/shopspring/decimal"

// usStates is the set of jurisdiction codes the estimator accepts. Codes
// outside this list are rejected rather than silently priced with the
// generic rule.
var usStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// defaultRates holds the jurisdictions with their own published rules.
// Everything else gets genericRate.
var defaultRates = map[string]Rate{
	// Florida charges the convenience fee only on days a toll occurs and
	// bills Unlimited at the Orlando tier.
	"FL": {
		Code:                "FL",
		Basis:               BasisPerTollDay,
		DailyConvenienceFee: decimal.RequireFromString("6.95"),
		ConvenienceFeeCap:   capOf("34.95"),
		UnlimitedDailyRate:  decimal.RequireFromString("13.49"),
		TimeZone:            "America/New_York",
	},
	// California caps both the convenience fee per rental and the
	// Unlimited plan at one week of charges.
	"CA": {
		Code:                "CA",
		Basis:               BasisFlatPerRentalDay,
		DailyConvenienceFee: decimal.RequireFromString("6.95"),
		ConvenienceFeeCap:   capOf("34.95"),
		UnlimitedDailyRate:  decimal.RequireFromString("11.99"),
		UnlimitedCapDays:    daysOf(7),
		TimeZone:            "America/Los_Angeles",
	},
}

// genericRate is the uncapped flat-per-rental-day rule applied to states
// without a specific entry.
var genericRate = Rate{
	Basis:               BasisFlatPerRentalDay,
	DailyConvenienceFee: decimal.RequireFromString("6.95"),
	UnlimitedDailyRate:  decimal.RequireFromString("11.99"),
	TimeZone:            "America/New_York",
}

func defaultTable() map[string]Rate {
	table := make(map[string]Rate, len(usStates))
	for _, code := range usStates {
		if r, ok := defaultRates[code]; ok {
			table[code] = r
			continue
		}
		r := genericRate
		r.Code = code
		table[code] = r
	}
	return table
}
