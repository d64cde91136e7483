// README: Leg cost aggregator; concurrent lookups folded into per-rental totals.
package estimate

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Aggregator resolves toll costs for every leg of a request and buckets
// them by jurisdiction-local calendar day. It holds no per-request state.
type Aggregator struct {
	lookup TollLookup
}

func NewAggregator(lookup TollLookup) *Aggregator {
	return &Aggregator{lookup: lookup}
}

// Aggregate looks up every leg concurrently and folds the results. Legs have
// no ordering dependency, so lookups fan out; each result lands in its own
// slot and the fold runs only after all lookups finish. The first failure
// cancels the remaining lookups and is returned as a *LookupError; partial
// totals are never produced. No retries and no timeout here; both belong to
// the lookup collaborator.
func (a *Aggregator) Aggregate(ctx context.Context, legs []TripLeg, window RentalWindow, vehicleType, currency string, loc *time.Location) (Aggregate, error) {
	if len(legs) == 0 {
		return Aggregate{}, ErrNoLegs
	}

	costs := make([]LegTollCost, len(legs))
	g, gctx := errgroup.WithContext(ctx)
	for i, leg := range legs {
		g.Go(func() error {
			cost, err := a.lookup.Lookup(gctx, LookupRequest{
				Origin:        leg.Origin,
				Destination:   leg.Destination,
				Waypoints:     leg.Waypoints,
				VehicleType:   vehicleType,
				DepartureTime: departureTime(leg, window),
				Currency:      currency,
			})
			if err != nil {
				return &LookupError{Leg: i + 1, Err: err}
			}
			costs[i] = cost
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Aggregate{}, err
	}

	agg := Aggregate{TollDays: make(map[string]struct{})}
	for i, leg := range legs {
		agg.TagTollsTotal = agg.TagTollsTotal.Add(costs[i].Tag)
		agg.CashTollsTotal = agg.CashTollsTotal.Add(costs[i].Cash)
		// A toll-free leg does not mark its day; per-toll-day fees bill
		// only days with actual toll activity.
		if costs[i].Tag.IsPositive() || costs[i].Cash.IsPositive() {
			agg.TollDays[dayKey(departureTime(leg, window), loc)] = struct{}{}
		}
	}
	return agg, nil
}

// departureTime picks the timestamp used for both the lookup and the
// calendar-day bucket: the leg's own departure when tracked, otherwise the
// rental start. One rule, applied uniformly.
func departureTime(leg TripLeg, window RentalWindow) time.Time {
	if leg.DepartureTime.IsZero() {
		return window.Start
	}
	return leg.DepartureTime
}

// dayKey truncates a timestamp to a calendar-day identifier in the
// jurisdiction's reference zone.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
