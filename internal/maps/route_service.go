package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RoutePreview summarizes one driving leg for the wizard UI.
type RoutePreview struct {
	Distance string
	Duration time.Duration
}

// RouteService handles interactions with the Google Maps Directions API.
// It serves leg previews only; toll pricing never depends on it.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// Preview returns the distance and duration for a leg, including optional
// waypoints. It assumes driving mode.
func (s *RouteService) Preview(ctx context.Context, origin, destination string, waypoints []string) (RoutePreview, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Waypoints:   waypoints,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return RoutePreview{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RoutePreview{}, fmt.Errorf("no route found")
	}

	// A route with waypoints has one leg per segment; report the whole trip.
	var total RoutePreview
	meters := 0
	for _, leg := range routes[0].Legs {
		total.Duration += leg.Duration
		meters += leg.Distance.Meters
	}
	total.Distance = fmt.Sprintf("%.1f km", float64(meters)/1000.0)
	return total, nil
}
