// README: Defensive parsing and repair of generator output into a valid Itinerary.
package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrNotJSON is returned when the extracted payload fails to parse at all.
// This is terminal: nothing can be repaired without a parse tree.
var ErrNotJSON = errors.New("payload is not valid JSON")

// ErrMissingField is the sentinel behind every MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports a required field that is absent or of the wrong
// kind. Terminal: the structural skeleton cannot be guessed.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing or mistyped required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// ParseAndRepair turns a candidate JSON payload into a valid Itinerary.
//
// Policy: structural absence (not JSON, or title/destination/days missing)
// is terminal; everything else is repaired with safe defaults.
//
// prefs supplies defaults the generator commonly omits: trip dates and the
// per-day calendar date, inherited from StartDate by day number.
func ParseAndRepair(payload []byte, prefs Preferences) (*Itinerary, error) {
	var root any
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: "title"}
	}

	// Some provider/request revisions wrap the answer under a single key
	// (e.g. {"itinerary": {...}}). Unwrap one level when the top level is a
	// lone wrapper and the real skeleton sits inside.
	if inner := unwrapEnvelope(obj); inner != nil {
		obj = inner
	}

	title, ok := asString(obj["title"])
	if !ok || title == "" {
		return nil, &MissingFieldError{Field: "title"}
	}
	destination, ok := asString(obj["destination"])
	if !ok || destination == "" {
		return nil, &MissingFieldError{Field: "destination"}
	}
	rawDays, ok := obj["days"].([]any)
	if !ok {
		return nil, &MissingFieldError{Field: "days"}
	}

	it := &Itinerary{
		Title:           title,
		Destination:     destination,
		StartDate:       stringOr(obj["startDate"], prefs.StartDate),
		EndDate:         stringOr(obj["endDate"], prefs.EndDate),
		Days:            make([]DayPlan, 0, len(rawDays)),
		MoneyTips:       stringSlice(obj["moneyTips"]),
		BestTimeToVisit: stringOr(obj["bestTimeToVisit"], ""),
		TravelRoutes:    repairRoutes(obj["travelRoutes"]),
	}

	trustDays := daySequenceValid(rawDays)
	for i, raw := range rawDays {
		it.Days = append(it.Days, repairDay(raw, i+1, trustDays, prefs))
	}

	it.BudgetBreakdown = repairBudget(obj["budgetBreakdown"])
	return it, nil
}

// unwrapEnvelope returns the nested object when obj is a single-key wrapper
// around the real payload, nil otherwise.
func unwrapEnvelope(obj map[string]any) map[string]any {
	if len(obj) != 1 {
		return nil
	}
	if _, ok := obj["title"]; ok {
		return nil
	}
	for _, v := range obj {
		if inner, ok := v.(map[string]any); ok {
			return inner
		}
	}
	return nil
}

// daySequenceValid reports whether the generator's day numbers form a
// strictly ascending sequence starting at 1. Day numbers are only honored as
// a whole sequence: a duplicate or out-of-order value anywhere means every
// day is renumbered by position, since a partially trusted sequence could
// still collide.
func daySequenceValid(rawDays []any) bool {
	prev := 0.0
	for i, raw := range rawDays {
		obj, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		v, ok := asNumber(obj["day"])
		if !ok || v <= prev || (i == 0 && v != 1) {
			return false
		}
		prev = v
	}
	return true
}

func repairDay(raw any, n int, trustDay bool, prefs Preferences) DayPlan {
	day := DayPlan{
		Day:        n,
		Date:       prefs.DateForDay(n),
		Activities: []Activity{},
		Meals:      []Meal{},
		Tips:       []string{},
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return day
	}

	if v, ok := asNumber(obj["day"]); trustDay && ok && v >= 1 {
		day.Day = int(v)
		day.Date = prefs.DateForDay(day.Day)
	}
	if v, ok := asString(obj["date"]); ok && v != "" {
		day.Date = v
	}
	day.Tips = stringSlice(obj["tips"])

	if items, ok := obj["activities"].([]any); ok {
		for _, it := range items {
			if a, ok := repairActivity(it); ok {
				day.Activities = append(day.Activities, a)
			}
		}
	}
	if items, ok := obj["meals"].([]any); ok {
		for _, it := range items {
			if m, ok := repairMeal(it); ok {
				day.Meals = append(day.Meals, m)
			}
		}
	}
	// Absent accommodation stays absent; a placeholder would mis-render as
	// a real booking suggestion.
	if acc, ok := obj["accommodation"].(map[string]any); ok {
		day.Accommodation = repairAccommodation(acc)
	}
	return day
}

func repairActivity(raw any) (Activity, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Activity{}, false
	}
	a := Activity{
		Time:        stringOr(obj["time"], ""),
		Name:        stringOr(obj["name"], ""),
		Description: stringOr(obj["description"], ""),
		Location:    stringOr(obj["location"], ""),
		Cost:        nonNegative(obj["cost"]),
		Duration:    stringOr(obj["duration"], ""),
		Coordinates: sanitizeCoordinates(obj["coordinates"]),
	}
	return a, true
}

func repairMeal(raw any) (Meal, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Meal{}, false
	}
	m := Meal{
		Type:           stringOr(obj["type"], ""),
		Name:           stringOr(obj["name"], ""),
		Place:          stringOr(obj["place"], ""),
		EstimatedCost:  nonNegative(obj["estimatedCost"]),
		Recommendation: stringOr(obj["recommendation"], ""),
	}
	switch m.Type {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
	default:
		m.Type = MealSnack
	}
	return m, true
}

func repairAccommodation(obj map[string]any) *Accommodation {
	acc := &Accommodation{
		Name:        stringOr(obj["name"], ""),
		Type:        stringOr(obj["type"], ""),
		Cost:        nonNegative(obj["cost"]),
		Location:    stringOr(obj["location"], ""),
		Coordinates: sanitizeCoordinates(obj["coordinates"]),
	}
	switch acc.Type {
	case StayHostel, StayHotel, StayHomestay, StayAirbnb:
	default:
		acc.Type = StayHostel
	}
	return acc
}

func repairRoutes(raw any) []TravelRoute {
	routes := []TravelRoute{}
	items, ok := raw.([]any)
	if !ok {
		return routes
	}
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		routes = append(routes, TravelRoute{
			From:           stringOr(obj["from"], ""),
			To:             stringOr(obj["to"], ""),
			Mode:           stringOr(obj["mode"], ""),
			Duration:       stringOr(obj["duration"], ""),
			EstimatedCost:  nonNegative(obj["estimatedCost"]),
			Recommendation: stringOr(obj["recommendation"], ""),
		})
	}
	return routes
}

// repairBudget fills an all-zero breakdown when absent and never trusts the
// reported total: generators routinely return one that disagrees with its
// own parts, so the total is always recomputed.
func repairBudget(raw any) BudgetBreakdown {
	var b BudgetBreakdown
	if obj, ok := raw.(map[string]any); ok {
		b.Travel = nonNegative(obj["travel"])
		b.Accommodation = nonNegative(obj["accommodation"])
		b.Food = nonNegative(obj["food"])
		b.Activities = nonNegative(obj["activities"])
		b.Miscellaneous = nonNegative(obj["miscellaneous"])
	}
	b.Total = b.Sum()
	return b
}

// sanitizeCoordinates returns a valid pair or nil. A pair with a missing or
// non-finite component is dropped entirely, never defaulted to (0,0).
func sanitizeCoordinates(raw any) *Coordinates {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	lat, okLat := asNumber(obj["lat"])
	lng, okLng := asNumber(obj["lng"])
	if !okLat || !okLng {
		return nil
	}
	return &Coordinates{Lat: lat, Lng: lng}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func asNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func nonNegative(v any) float64 {
	f, ok := asNumber(v)
	if !ok || f < 0 {
		return 0
	}
	return f
}

func stringSlice(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
