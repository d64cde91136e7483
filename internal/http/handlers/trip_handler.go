// README: Trip wizard endpoint; expands a visit plan and estimates it.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tollwise/internal/modules/estimate"
	"tollwise/internal/modules/rates"
	"tollwise/internal/modules/tripplan"
)

type tripPlanRequest struct {
	RentalStart     string `json:"rentalStart"`
	RentalEnd       string `json:"rentalEnd"`
	HomeBaseIDrive  bool   `json:"homeBaseIDrive"`
	DisneyDays      int    `json:"disneyDays"`
	UniversalVisits int    `json:"universalVisits"`
	KennedyTrips    int    `json:"kennedyTrips"`
	AirportTrips    int    `json:"airportTrips"`
	Jurisdiction    string `json:"jurisdiction"`
	VehicleType     string `json:"vehicleType"`
	Currency        string `json:"currency"`
}

type tripPlanResponse struct {
	Answer  string          `json:"answer"`
	Details estimateDetails `json:"details"`
	Legs    []legPayload    `json:"legs"`
}

type TripHandler struct {
	plans     *tripplan.Service
	estimates *estimate.Service
	rates     *rates.Service
}

func NewTripHandler(plans *tripplan.Service, estimates *estimate.Service, rateSvc *rates.Service) *TripHandler {
	return &TripHandler{plans: plans, estimates: estimates, rates: rateSvc}
}

// Plan turns wizard answers into dated legs and runs the comparison in one
// call. Defaults suit the Orlando wizard; callers can override them.
func (h *TripHandler) Plan(c *gin.Context) {
	var req tripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.RentalStart == "" || req.RentalEnd == "" {
		writeError(c, http.StatusBadRequest, "Missing required fields: rentalStart and rentalEnd")
		return
	}
	if req.Jurisdiction == "" {
		req.Jurisdiction = "FL"
	}
	if req.VehicleType == "" {
		req.VehicleType = "2AxlesAuto"
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	start, err := time.Parse(time.RFC3339, req.RentalStart)
	if err != nil {
		writeError(c, http.StatusBadRequest, "rentalStart must be an RFC 3339 timestamp")
		return
	}
	end, err := time.Parse(time.RFC3339, req.RentalEnd)
	if err != nil {
		writeError(c, http.StatusBadRequest, "rentalEnd must be an RFC 3339 timestamp")
		return
	}

	rate, err := h.rates.Resolve(req.Jurisdiction)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	loc, err := rate.Location()
	if err != nil {
		writeDomainError(c, err)
		return
	}

	window := estimate.RentalWindow{Start: start, End: end}
	days := estimate.RentalDays(window, loc)
	if days <= 0 {
		writeDomainError(c, estimate.ErrInvalidWindow)
		return
	}

	legs, err := h.plans.Generate(tripplan.Plan{
		HomeBaseIDrive:  req.HomeBaseIDrive,
		DisneyDays:      req.DisneyDays,
		UniversalVisits: req.UniversalVisits,
		KennedyTrips:    req.KennedyTrips,
		AirportTrips:    req.AirportTrips,
	}, start.In(loc), days)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	result, err := h.estimates.Estimate(c.Request.Context(), estimate.Request{
		Legs:         legs,
		Window:       window,
		Jurisdiction: req.Jurisdiction,
		VehicleType:  req.VehicleType,
		Currency:     req.Currency,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	out := tripPlanResponse{
		Answer:  result.Recommendation,
		Details: toEstimateResponse(result).Details,
		Legs:    make([]legPayload, 0, len(legs)),
	}
	for _, leg := range legs {
		out.Legs = append(out.Legs, legPayload{
			Origin:        leg.Origin,
			Destination:   leg.Destination,
			Waypoints:     leg.Waypoints,
			DepartureTime: leg.DepartureTime.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}
