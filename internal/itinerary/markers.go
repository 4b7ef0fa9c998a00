// README: Map-marker derivation from a validated itinerary.
package itinerary

import "fmt"

// DeriveMarkers computes the map markers for an itinerary. Pure function of
// its input: calling it twice on the same value yields identical output, so
// callers recompute instead of caching.
//
// Only entries whose coordinates survived sanitation produce markers; an
// activity without coordinates is kept in the itinerary but simply not
// plotted. IDs are deterministic: attraction-<day>-<index> and hotel-<day>.
func DeriveMarkers(it *Itinerary) []MapMarker {
	markers := []MapMarker{}
	for _, day := range it.Days {
		for i, act := range day.Activities {
			if act.Coordinates == nil {
				continue
			}
			markers = append(markers, MapMarker{
				ID:          fmt.Sprintf("%s-%d-%d", MarkerAttraction, day.Day, i),
				Name:        act.Name,
				Type:        MarkerAttraction,
				Coordinates: *act.Coordinates,
				Description: act.Description,
			})
		}
		if acc := day.Accommodation; acc != nil && acc.Coordinates != nil {
			markers = append(markers, MapMarker{
				ID:          fmt.Sprintf("%s-%d", MarkerHotel, day.Day),
				Name:        acc.Name,
				Type:        MarkerHotel,
				Coordinates: *acc.Coordinates,
			})
		}
	}
	return markers
}
