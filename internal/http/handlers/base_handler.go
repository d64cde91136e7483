// README: Shared handler plumbing; maps domain errors to HTTP statuses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tollwise/internal/logging"
	"tollwise/internal/modules/assist"
	"tollwise/internal/modules/estimate"
	"tollwise/internal/modules/rates"
	"tollwise/internal/modules/tripplan"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeDomainError translates a service error into the right status. Caller
// validation faults become 400s with the error text; everything else is a
// 500 and the detail stays in the log.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estimate.ErrNoLegs),
		errors.Is(err, estimate.ErrInvalidWindow),
		errors.Is(err, rates.ErrUnknownJurisdiction),
		errors.Is(err, tripplan.ErrNoTrips),
		errors.Is(err, assist.ErrEmptyPrompt):
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	var lookupErr *estimate.LookupError
	if errors.As(err, &lookupErr) {
		logging.Logger.Error("toll lookup failed",
			zap.Int("leg", lookupErr.Leg), zap.Error(lookupErr.Err))
		writeError(c, http.StatusInternalServerError, lookupErr.Error())
		return
	}

	logging.Logger.Error("request failed", zap.Error(err))
	writeError(c, http.StatusInternalServerError, "internal error")
}
