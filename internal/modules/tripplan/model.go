// README: Visit-plan input and canonical Orlando points of interest.
package tripplan

import "errors"

var ErrNoTrips = errors.New("no toll-likely trips in plan")

// Canonical POI addresses used by the Orlando wizard.
const (
	POIAirport    = "1 Jeff Fuqua Blvd, Orlando, FL 32827"
	POIDisney     = "1180 Seven Seas Dr, Lake Buena Vista, FL 32830"
	POIUniversal  = "6000 Universal Blvd, Orlando, FL 32819"
	POIIDrive     = "9800 International Dr, Orlando, FL 32819"
	POIKennedy    = "Space Commerce Way, Merritt Island, FL 32953"
	POICocoaBeach = "1500 N Atlantic Ave, Cocoa Beach, FL 32931"
)

// Plan captures the wizard's answers: where the renter is staying and how
// many outings of each kind they expect during the rental.
type Plan struct {
	// HomeBaseIDrive pins the home base to International Drive. When
	// false the home base follows the visit priority Disney > Universal >
	// I-Drive.
	HomeBaseIDrive  bool
	DisneyDays      int
	UniversalVisits int
	KennedyTrips    int
	AirportTrips    int
}

func (p Plan) totalOutings() int {
	return p.DisneyDays + p.UniversalVisits + p.KennedyTrips + p.AirportTrips
}

func (p Plan) homeBase() string {
	if p.HomeBaseIDrive {
		return POIIDrive
	}
	if p.DisneyDays > 0 {
		return POIDisney
	}
	if p.UniversalVisits > 0 {
		return POIUniversal
	}
	return POIIDrive
}
