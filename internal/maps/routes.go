// README: Google Maps travel-duration estimates for itinerary route enrichment.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"yatra/internal/itinerary"
)

// RouteService wraps the Google Maps Directions API for route enrichment.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps: create client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// Estimate returns the travel duration from origin to destination for the
// given itinerary travel mode. Flight legs have no Directions coverage and
// return an error so callers leave the generator's value in place.
func (s *RouteService) Estimate(ctx context.Context, origin, destination, mode string) (time.Duration, error) {
	travelMode, err := directionsMode(mode)
	if err != nil {
		return 0, err
	}

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        travelMode,
		Region:      "in", // bias results to India
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("maps: directions: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("maps: no route from %s to %s", origin, destination)
	}

	var total time.Duration
	for _, leg := range routes[0].Legs {
		total += leg.Duration
	}
	return total, nil
}

func directionsMode(mode string) (maps.Mode, error) {
	switch mode {
	case itinerary.ModeBus, itinerary.ModeTrain, itinerary.ModeMixed:
		return maps.TravelModeTransit, nil
	case itinerary.ModeFlight:
		return "", fmt.Errorf("maps: no directions coverage for flights")
	default:
		return maps.TravelModeDriving, nil
	}
}
