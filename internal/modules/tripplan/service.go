// README: Trip leg generator; expands a visit plan into dated trip legs.
package tripplan

import (
	"time"

	"tollwise/internal/modules/estimate"
)

// Service expands a Plan into the TripLeg sequence the estimator consumes.
// Stateless; the output depends only on the plan and the rental window.
type Service struct{}

func NewService() *Service { return &Service{} }

// Generate produces an out-and-back leg pair per outing, spreading outings
// across the rental days round-robin and staggering departure hours so legs
// on the same day stay distinguishable. Every leg carries its own departure
// timestamp so the estimator buckets multi-day plans correctly.
func (s *Service) Generate(plan Plan, rentalStart time.Time, rentalDays int) ([]estimate.TripLeg, error) {
	if plan.totalOutings() == 0 {
		return nil, ErrNoTrips
	}
	if rentalDays < 1 {
		rentalDays = 1
	}

	home := plan.homeBase()
	base := time.Date(rentalStart.Year(), rentalStart.Month(), rentalStart.Day(), 0, 0, 0, 0, rentalStart.Location())

	var legs []estimate.TripLeg
	outing := 0

	departure := func(startHour, i int) time.Time {
		day := base.AddDate(0, 0, i%rentalDays)
		return day.Add(time.Duration(startHour+outing%6) * time.Hour)
	}

	for i := 0; i < plan.DisneyDays; i++ {
		out := departure(10, i)
		legs = append(legs,
			estimate.TripLeg{Origin: home, Destination: POIDisney, DepartureTime: out},
			estimate.TripLeg{Origin: POIDisney, Destination: home, DepartureTime: out.Add(6 * time.Hour)},
		)
		outing++
	}

	for i := 0; i < plan.UniversalVisits; i++ {
		out := departure(11, i)
		legs = append(legs,
			estimate.TripLeg{Origin: home, Destination: POIUniversal, DepartureTime: out},
			estimate.TripLeg{Origin: POIUniversal, Destination: home, DepartureTime: out.Add(6 * time.Hour)},
		)
		outing++
	}

	for i := 0; i < plan.KennedyTrips; i++ {
		out := departure(9, i)
		legs = append(legs,
			estimate.TripLeg{
				Origin:        home,
				Destination:   POIKennedy,
				Waypoints:     []string{POICocoaBeach},
				DepartureTime: out,
			},
			estimate.TripLeg{
				Origin:        POIKennedy,
				Destination:   home,
				Waypoints:     []string{POICocoaBeach},
				DepartureTime: out.Add(8 * time.Hour),
			},
		)
		outing++
	}

	for i := 0; i < plan.AirportTrips; i++ {
		out := departure(8, i)
		leg := estimate.TripLeg{Origin: POIAirport, Destination: home, DepartureTime: out}
		if i%2 == 1 {
			leg.Origin, leg.Destination = home, POIAirport
		}
		legs = append(legs, leg)
		outing++
	}

	return legs, nil
}
