// README: Route preview endpoint; distance and duration for one leg.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwise/internal/maps"
)

type routePreviewRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Waypoints   []string `json:"waypoints,omitempty"`
}

type routePreviewResponse struct {
	Distance        string `json:"distance"`
	DurationMinutes int    `json:"durationMinutes"`
}

type RouteHandler struct {
	routes *maps.RouteService
}

func NewRouteHandler(routes *maps.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

func (h *RouteHandler) Preview(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "route preview is not configured")
		return
	}

	var req routePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(c, http.StatusBadRequest, "Missing required fields: origin and destination")
		return
	}

	preview, err := h.routes.Preview(c.Request.Context(), req.Origin, req.Destination, req.Waypoints)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routePreviewResponse{
		Distance:        preview.Distance,
		DurationMinutes: int(preview.Duration.Minutes()),
	})
}
