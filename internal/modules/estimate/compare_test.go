package estimate

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tollwise/internal/modules/rates"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %q: %v", name, err)
	}
	return loc
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func floridaRate() rates.Rate {
	return rates.Rate{
		Code:                "FL",
		Basis:               rates.BasisPerTollDay,
		DailyConvenienceFee: dec("6.95"),
		ConvenienceFeeCap:   decPtr("34.95"),
		UnlimitedDailyRate:  dec("13.49"),
		TimeZone:            "America/New_York",
	}
}

func californiaRate() rates.Rate {
	return rates.Rate{
		Code:                "CA",
		Basis:               rates.BasisFlatPerRentalDay,
		DailyConvenienceFee: dec("6.95"),
		ConvenienceFeeCap:   decPtr("34.95"),
		UnlimitedDailyRate:  dec("11.99"),
		UnlimitedCapDays:    intPtr(7),
		TimeZone:            "America/Los_Angeles",
	}
}

func tollDays(keys ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

func TestRentalDays(t *testing.T) {
	ny := mustLoc(t, "America/New_York")

	tests := []struct {
		name  string
		start string
		end   string
		loc   *time.Location
		want  int
	}{
		{
			name:  "same day",
			start: "2025-08-25T08:00:00-04:00",
			end:   "2025-08-25T20:00:00-04:00",
			loc:   ny,
			want:  1,
		},
		{
			name:  "three calendar days inclusive",
			start: "2025-08-25T10:00:00-04:00",
			end:   "2025-08-27T23:59:59-04:00",
			loc:   ny,
			want:  3,
		},
		{
			name:  "late return on a fourth day counts it",
			start: "2025-08-25T23:00:00-04:00",
			end:   "2025-08-28T00:30:00-04:00",
			loc:   ny,
			want:  4,
		},
		{
			name:  "utc instants bucket in the reference zone",
			start: "2025-08-25T00:00:00Z",
			end:   "2025-08-27T23:59:59Z",
			loc:   ny,
			want:  4,
		},
		{
			name:  "spring forward does not lose a day",
			start: "2025-03-07T12:00:00-05:00",
			end:   "2025-03-10T12:00:00-04:00",
			loc:   ny,
			want:  4,
		},
		{
			name:  "end before start",
			start: "2025-08-27T10:00:00-04:00",
			end:   "2025-08-25T10:00:00-04:00",
			loc:   ny,
			want:  0,
		},
		{
			name:  "reversed timestamps on the same day",
			start: "2025-08-25T20:00:00-04:00",
			end:   "2025-08-25T08:00:00-04:00",
			loc:   ny,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := RentalWindow{Start: mustTime(t, tt.start), End: mustTime(t, tt.end)}
			if got := RentalDays(window, tt.loc); got != tt.want {
				t.Fatalf("RentalDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComparePerTollDayBasis(t *testing.T) {
	window := RentalWindow{
		Start: mustTime(t, "2025-08-25T10:00:00-04:00"),
		End:   mustTime(t, "2025-08-27T23:59:59-04:00"),
	}
	agg := Aggregate{
		TagTollsTotal:  dec("17.00"),
		CashTollsTotal: dec("25.50"),
		TollDays:       tollDays("2025-08-25", "2025-08-27"),
	}

	result, err := Compare(agg, window, floridaRate(), "USD")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	// Two toll days at 6.95 plus cash tolls; Unlimited runs all three days.
	if got := result.ConvenienceFeeTotal.String(); got != "13.90" {
		t.Fatalf("convenience fee = %s, want 13.90", got)
	}
	if got := result.StandardTotal.String(); got != "39.40" {
		t.Fatalf("standard total = %s, want 39.40", got)
	}
	if got := result.UnlimitedTotal.String(); got != "40.47" {
		t.Fatalf("unlimited total = %s, want 40.47", got)
	}
	if got := result.Savings.String(); got != "-1.07" {
		t.Fatalf("savings = %s, want -1.07", got)
	}
	if result.RentalDayCount != 3 || result.TollDayCount != 2 {
		t.Fatalf("day counts = %d/%d, want 3/2", result.RentalDayCount, result.TollDayCount)
	}
	want := "Standard e-Toll ($39.40) is cheaper than Unlimited ($40.47) by $1.07."
	if result.Recommendation != want {
		t.Fatalf("recommendation = %q, want %q", result.Recommendation, want)
	}
	if result.StandardTotal.Currency != "USD" {
		t.Fatalf("currency = %q, want USD", result.StandardTotal.Currency)
	}
}

func TestCompareConvenienceFeeCap(t *testing.T) {
	window := RentalWindow{
		Start: mustTime(t, "2025-08-01T10:00:00-04:00"),
		End:   mustTime(t, "2025-08-10T10:00:00-04:00"),
	}
	days := make([]string, 0, 10)
	for d := 1; d <= 10; d++ {
		days = append(days, time.Date(2025, 8, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
	}
	agg := Aggregate{
		TagTollsTotal:  dec("50.00"),
		CashTollsTotal: dec("75.00"),
		TollDays:       tollDays(days...),
	}

	result, err := Compare(agg, window, floridaRate(), "USD")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	// 10 toll days at 6.95 would be 69.50; the cap holds it at 34.95.
	if got := result.ConvenienceFeeTotal.String(); got != "34.95" {
		t.Fatalf("convenience fee = %s, want 34.95", got)
	}
	if got := result.StandardTotal.String(); got != "109.95" {
		t.Fatalf("standard total = %s, want 109.95", got)
	}
}

func TestCompareUnlimitedCapDays(t *testing.T) {
	window := RentalWindow{
		Start: mustTime(t, "2025-08-01T10:00:00-07:00"),
		End:   mustTime(t, "2025-08-10T10:00:00-07:00"),
	}
	agg := Aggregate{TollDays: tollDays()}

	result, err := Compare(agg, window, californiaRate(), "USD")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	// Flat basis bills all 10 rental days but caps at 34.95; Unlimited
	// bills at most 7 days.
	if got := result.ConvenienceFeeTotal.String(); got != "34.95" {
		t.Fatalf("convenience fee = %s, want 34.95", got)
	}
	if got := result.UnlimitedTotal.String(); got != "83.93" {
		t.Fatalf("unlimited total = %s, want 83.93", got)
	}
	if got := result.Savings.String(); got != "-48.98" {
		t.Fatalf("savings = %s, want -48.98", got)
	}
}

func TestCompareTieFavorsUnlimited(t *testing.T) {
	generic := rates.Rate{
		Code:                "TX",
		Basis:               rates.BasisFlatPerRentalDay,
		DailyConvenienceFee: dec("6.95"),
		UnlimitedDailyRate:  dec("11.99"),
		TimeZone:            "America/New_York",
	}
	window := RentalWindow{
		Start: mustTime(t, "2025-08-25T08:00:00-04:00"),
		End:   mustTime(t, "2025-08-25T20:00:00-04:00"),
	}
	agg := Aggregate{
		CashTollsTotal: dec("5.04"),
		TollDays:       tollDays("2025-08-25"),
	}

	result, err := Compare(agg, window, generic, "USD")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !result.Savings.Amount.IsZero() {
		t.Fatalf("savings = %s, want 0.00", result.Savings.String())
	}
	want := "You're saving $0.00 with e-Toll Unlimited! Standard e-Toll: $11.99, Unlimited: $11.99."
	if result.Recommendation != want {
		t.Fatalf("recommendation = %q, want %q", result.Recommendation, want)
	}
}

func TestCompareDeterministic(t *testing.T) {
	window := RentalWindow{
		Start: mustTime(t, "2025-08-25T10:00:00-04:00"),
		End:   mustTime(t, "2025-08-27T23:59:59-04:00"),
	}
	agg := Aggregate{
		TagTollsTotal:  dec("13.50"),
		CashTollsTotal: dec("20.25"),
		TollDays:       tollDays("2025-08-25", "2025-08-27"),
	}

	first, err := Compare(agg, window, floridaRate(), "USD")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	second, err := Compare(agg, window, floridaRate(), "USD")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across identical calls:\n%+v\n%+v", first, second)
	}
}

func TestCompareInvalidWindow(t *testing.T) {
	window := RentalWindow{
		Start: mustTime(t, "2025-08-27T10:00:00-04:00"),
		End:   mustTime(t, "2025-08-25T10:00:00-04:00"),
	}
	_, err := Compare(Aggregate{TollDays: tollDays()}, window, floridaRate(), "USD")
	if err != ErrInvalidWindow {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
}
