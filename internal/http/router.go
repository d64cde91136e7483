// README: Gin router; wires middleware and API routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwise/internal/http/handlers"
	"tollwise/internal/http/middleware"
	"tollwise/internal/maps"
	"tollwise/internal/modules/assist"
	"tollwise/internal/modules/estimate"
	"tollwise/internal/modules/rates"
	"tollwise/internal/modules/tripplan"
)

// Services collects everything the router exposes. Assist and Routes may be
// nil; their endpoints answer 503 until configured.
type Services struct {
	Estimates *estimate.Service
	Rates     *rates.Service
	Plans     *tripplan.Service
	Assist    *assist.Service
	Routes    *maps.RouteService
}

func NewRouter(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	estimateHandler := handlers.NewEstimateHandler(svcs.Estimates)
	tripHandler := handlers.NewTripHandler(svcs.Plans, svcs.Estimates, svcs.Rates)
	assistHandler := handlers.NewAssistHandler(svcs.Assist)
	routeHandler := handlers.NewRouteHandler(svcs.Routes)

	api := r.Group("/api")
	{
		api.POST("/estimate", estimateHandler.Estimate)
		api.POST("/trips/plan", tripHandler.Plan)
		api.POST("/assist", assistHandler.Explain)
		api.POST("/routes/preview", routeHandler.Preview)
	}

	return r
}
