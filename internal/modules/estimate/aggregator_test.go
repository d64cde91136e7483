package estimate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// fakeLookup returns canned costs keyed by destination and records every
// request it serves.
type fakeLookup struct {
	mu       sync.Mutex
	costs    map[string]LegTollCost
	failFor  string
	requests []LookupRequest
}

func (f *fakeLookup) Lookup(_ context.Context, req LookupRequest) (LegTollCost, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.failFor != "" && req.Destination == f.failFor {
		return LegTollCost{}, errors.New("upstream unavailable")
	}
	if cost, ok := f.costs[req.Destination]; ok {
		return cost, nil
	}
	return LegTollCost{Tag: dec("5.00"), Cash: dec("7.50")}, nil
}

func testWindow(t *testing.T) RentalWindow {
	return RentalWindow{
		Start: mustTime(t, "2025-08-25T10:00:00-04:00"),
		End:   mustTime(t, "2025-08-27T23:59:59-04:00"),
	}
}

func TestAggregateTotalsAndTollDays(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	agg := NewAggregator(&fakeLookup{})

	// Two legs on the 25th, one on the 27th; toll days deduplicate.
	legs := []TripLeg{
		{Origin: "A", Destination: "B", DepartureTime: mustTime(t, "2025-08-25T09:00:00-04:00")},
		{Origin: "B", Destination: "A", DepartureTime: mustTime(t, "2025-08-25T17:00:00-04:00")},
		{Origin: "A", Destination: "C", DepartureTime: mustTime(t, "2025-08-27T09:00:00-04:00")},
	}

	got, err := agg.Aggregate(context.Background(), legs, testWindow(t), "2AxlesAuto", "USD", ny)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if s := got.TagTollsTotal.String(); s != "15" {
		t.Fatalf("tag total = %s, want 15", s)
	}
	if s := got.CashTollsTotal.String(); s != "22.5" {
		t.Fatalf("cash total = %s, want 22.5", s)
	}
	if len(got.TollDays) != 2 {
		t.Fatalf("toll days = %d, want 2", len(got.TollDays))
	}
	for _, day := range []string{"2025-08-25", "2025-08-27"} {
		if _, ok := got.TollDays[day]; !ok {
			t.Fatalf("missing toll day %s", day)
		}
	}
}

func TestAggregateZeroCostLegSkipsDay(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	lookup := &fakeLookup{costs: map[string]LegTollCost{
		"Free Rd": {},
	}}
	agg := NewAggregator(lookup)

	legs := []TripLeg{{Origin: "A", Destination: "Free Rd"}}
	got, err := agg.Aggregate(context.Background(), legs, testWindow(t), "", "USD", ny)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got.TollDays) != 0 {
		t.Fatalf("toll days = %d, want 0 for a toll-free leg", len(got.TollDays))
	}
	if !got.CashTollsTotal.IsZero() || !got.TagTollsTotal.IsZero() {
		t.Fatalf("totals = %s/%s, want zero", got.TagTollsTotal, got.CashTollsTotal)
	}
}

func TestAggregateLookupFailureNamesLeg(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	lookup := &fakeLookup{failFor: "Broken St"}
	agg := NewAggregator(lookup)

	legs := []TripLeg{
		{Origin: "A", Destination: "B"},
		{Origin: "B", Destination: "Broken St"},
		{Origin: "Broken St", Destination: "A"},
	}

	_, err := agg.Aggregate(context.Background(), legs, testWindow(t), "", "USD", ny)
	if err == nil {
		t.Fatal("expected error for failing leg")
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("err = %T, want *LookupError", err)
	}
	if lookupErr.Leg != 2 {
		t.Fatalf("failing leg = %d, want 2", lookupErr.Leg)
	}
	if !strings.Contains(err.Error(), "leg 2") {
		t.Fatalf("error %q does not name leg 2", err.Error())
	}
}

func TestAggregateNoLegs(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	agg := NewAggregator(&fakeLookup{})

	_, err := agg.Aggregate(context.Background(), nil, testWindow(t), "", "USD", ny)
	if err != ErrNoLegs {
		t.Fatalf("err = %v, want ErrNoLegs", err)
	}
}

func TestAggregateDepartureFallsBackToRentalStart(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	lookup := &fakeLookup{}
	agg := NewAggregator(lookup)
	window := testWindow(t)

	legs := []TripLeg{{Origin: "A", Destination: "B"}}
	got, err := agg.Aggregate(context.Background(), legs, window, "", "USD", ny)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if len(lookup.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(lookup.requests))
	}
	if !lookup.requests[0].DepartureTime.Equal(window.Start) {
		t.Fatalf("departure = %v, want rental start %v", lookup.requests[0].DepartureTime, window.Start)
	}
	if _, ok := got.TollDays["2025-08-25"]; !ok {
		t.Fatalf("toll day should bucket on the rental start date, got %v", got.TollDays)
	}
}

func TestAggregateManyLegs(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	lookup := &fakeLookup{}
	agg := NewAggregator(lookup)

	legs := make([]TripLeg, 50)
	for i := range legs {
		legs[i] = TripLeg{Origin: "A", Destination: fmt.Sprintf("stop-%d", i)}
	}

	got, err := agg.Aggregate(context.Background(), legs, testWindow(t), "", "USD", ny)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if s := got.TagTollsTotal.String(); s != "250" {
		t.Fatalf("tag total = %s, want 250", s)
	}
	if len(lookup.requests) != 50 {
		t.Fatalf("requests = %d, want 50", len(lookup.requests))
	}
}
