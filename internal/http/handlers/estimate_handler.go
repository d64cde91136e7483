// README: Estimate endpoint; wire shapes for the plan comparison API.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tollwise/internal/modules/estimate"
)

type legPayload struct {
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	Waypoints     []string `json:"waypoints,omitempty"`
	DepartureTime string   `json:"departureTime,omitempty"`
}

type estimateRequest struct {
	RentalStart  string       `json:"rentalStart"`
	RentalEnd    string       `json:"rentalEnd"`
	Days         []legPayload `json:"days"`
	Jurisdiction string       `json:"jurisdiction"`
	VehicleType  string       `json:"vehicleType"`
	Currency     string       `json:"currency"`
}

type estimateDetails struct {
	StandardEToll  string `json:"standardEToll"`
	UnlimitedEToll string `json:"unlimitedEToll"`
	Savings        string `json:"savings"`
	TagTollsTotal  string `json:"tagTollsTotal"`
	CashTollsTotal string `json:"cashTollsTotal"`
	FlatRateTotal  string `json:"flatRateTotal"`
	RentalDays     int    `json:"rentalDays"`
	DaysWithTolls  int    `json:"daysWithTolls"`
}

type estimateResponse struct {
	Answer  string          `json:"answer"`
	Details estimateDetails `json:"details"`
}

type EstimateHandler struct {
	svc *estimate.Service
}

func NewEstimateHandler(svc *estimate.Service) *EstimateHandler {
	return &EstimateHandler{svc: svc}
}

func (h *EstimateHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.RentalStart == "" || req.RentalEnd == "" || len(req.Days) == 0 {
		writeError(c, http.StatusBadRequest,
			"Missing required fields: rentalStart, rentalEnd, and days array with at least one day")
		return
	}
	if req.Jurisdiction == "" || req.VehicleType == "" || req.Currency == "" {
		writeError(c, http.StatusBadRequest,
			"Missing required fields: jurisdiction, vehicleType, and currency")
		return
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

	legs := make([]estimate.TripLeg, 0, len(req.Days))
	for i, d := range req.Days {
		if d.Origin == "" || d.Destination == "" {
			writeError(c, http.StatusBadRequest,
				fmt.Sprintf("Day %d is missing required fields: origin and destination", i+1))
			return
		}
		leg := estimate.TripLeg{
			Origin:      d.Origin,
			Destination: d.Destination,
			Waypoints:   d.Waypoints,
		}
		if d.DepartureTime != "" {
			dep, err := time.Parse(time.RFC3339, d.DepartureTime)
			if err != nil {
				writeError(c, http.StatusBadRequest,
					fmt.Sprintf("Day %d has an invalid departureTime", i+1))
				return
			}
			leg.DepartureTime = dep
		}
		legs = append(legs, leg)
	}

	result, err := h.svc.Estimate(c.Request.Context(), estimate.Request{
		Legs:         legs,
		Window:       estimate.RentalWindow{Start: start, End: end},
		Jurisdiction: req.Jurisdiction,
		VehicleType:  req.VehicleType,
		Currency:     req.Currency,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEstimateResponse(result))
}

func toEstimateResponse(r estimate.Result) estimateResponse {
	return estimateResponse{
		Answer: r.Recommendation,
		Details: estimateDetails{
			StandardEToll:  r.StandardTotal.String(),
			UnlimitedEToll: r.UnlimitedTotal.String(),
			Savings:        r.Savings.String(),
			TagTollsTotal:  r.TagTollsTotal.String(),
			CashTollsTotal: r.CashTollsTotal.String(),
			FlatRateTotal:  r.ConvenienceFeeTotal.String(),
			RentalDays:     r.RentalDayCount,
			DaysWithTolls:  r.TollDayCount,
		},
	}
}
