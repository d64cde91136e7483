// README: Plan comparator; applies jurisdiction rate rules to aggregated tolls.
package estimate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tollwise/internal/modules/rates"
	"tollwise/internal/types"
)

// Compare prices both plans for one rental and produces the recommendation.
// Pure function of its inputs: identical inputs yield a byte-identical
// Result.
func Compare(agg Aggregate, window RentalWindow, rate rates.Rate, currency string) (Result, error) {
	loc, err := rate.Location()
	if err != nil {
		return Result{}, err
	}

	days := RentalDays(window, loc)
	if days <= 0 {
		return Result{}, ErrInvalidWindow
	}

	// Standard plan: convenience fee on the basis the jurisdiction defines,
	// capped per rental, plus tolls passed through at the cash rate.
	feeDays := days
	if rate.Basis == rates.BasisPerTollDay {
		feeDays = len(agg.TollDays)
	}
	fee := rate.DailyConvenienceFee.Mul(decimal.NewFromInt(int64(feeDays)))
	if rate.ConvenienceFeeCap != nil && fee.GreaterThan(*rate.ConvenienceFeeCap) {
		fee = *rate.ConvenienceFeeCap
	}
	standard := fee.Add(agg.CashTollsTotal)

	// Unlimited plan: flat daily rate, optionally capped at a fixed number
	// of billable days.
	billableDays := days
	if rate.UnlimitedCapDays != nil && billableDays > *rate.UnlimitedCapDays {
		billableDays = *rate.UnlimitedCapDays
	}
	unlimited := rate.UnlimitedDailyRate.Mul(decimal.NewFromInt(int64(billableDays)))

	// Positive savings means Unlimited is cheaper; ties favor Unlimited.
	savings := standard.Sub(unlimited)

	money := func(v decimal.Decimal) types.Money {
		return types.Money{Amount: v, Currency: currency}
	}
	return Result{
		StandardTotal:       money(standard),
		UnlimitedTotal:      money(unlimited),
		Savings:             money(savings),
		TagTollsTotal:       money(agg.TagTollsTotal),
		CashTollsTotal:      money(agg.CashTollsTotal),
		ConvenienceFeeTotal: money(fee),
		RentalDayCount:      days,
		TollDayCount:        len(agg.TollDays),
		Recommendation:      recommendation(standard, unlimited, savings),
	}, nil
}

// RentalDays is the inclusive count of calendar days the window spans in
// the reference zone. Both endpoints are truncated to local midnight first;
// a raw duration division would undercount rentals that end mid-day one
// calendar day later. Returns 0 when the end precedes the start, including
// reversed timestamps on the same calendar day.
func RentalDays(window RentalWindow, loc *time.Location) int {
	if window.End.Before(window.Start) {
		return 0
	}
	s := window.Start.In(loc)
	e := window.End.In(loc)
	s0 := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	e0 := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, loc)
	if e0.Before(s0) {
		return 0
	}
	// Midnight-to-midnight spans are within an hour of a 24h multiple;
	// rounding absorbs DST transitions.
	return int(e0.Sub(s0).Round(24*time.Hour)/(24*time.Hour)) + 1
}

func recommendation(standard, unlimited, savings decimal.Decimal) string {
	if savings.Sign() >= 0 {
		return fmt.Sprintf("You're saving $%s with e-Toll Unlimited! Standard e-Toll: $%s, Unlimited: $%s.",
			savings.StringFixed(2), standard.StringFixed(2), unlimited.StringFixed(2))
	}
	return fmt.Sprintf("Standard e-Toll ($%s) is cheaper than Unlimited ($%s) by $%s.",
		standard.StringFixed(2), unlimited.StringFixed(2), savings.Abs().StringFixed(2))
}
