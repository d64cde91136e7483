// README: Estimate service; validates requests and runs aggregate + compare.
package estimate

import (
	"context"

	"tollwise/internal/modules/rates"
)

// Request is one validated estimate computation.
type Request struct {
	Legs         []TripLeg
	Window       RentalWindow
	Jurisdiction string
	VehicleType  string
	Currency     string
}

// Service ties the aggregator to the jurisdiction rate table. Stateless
// between calls.
type Service struct {
	aggregator *Aggregator
	rates      *rates.Service
}

func NewService(aggregator *Aggregator, rateSvc *rates.Service) *Service {
	return &Service{aggregator: aggregator, rates: rateSvc}
}

// Estimate resolves the jurisdiction, aggregates per-leg toll costs, and
// compares the two plans. Validation faults surface before any lookup runs.
func (s *Service) Estimate(ctx context.Context, req Request) (Result, error) {
	rate, err := s.rates.Resolve(req.Jurisdiction)
	if err != nil {
		return Result{}, err
	}
	loc, err := rate.Location()
	if err != nil {
		return Result{}, err
	}

	if len(req.Legs) == 0 {
		return Result{}, ErrNoLegs
	}
	if RentalDays(req.Window, loc) <= 0 {
		return Result{}, ErrInvalidWindow
	}

	agg, err := s.aggregator.Aggregate(ctx, req.Legs, req.Window, req.VehicleType, req.Currency, loc)
	if err != nil {
		return Result{}, err
	}
	return Compare(agg, req.Window, rate, req.Currency)
}
