// README: Trip preferences (generation input) and their validation rules.
package itinerary

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all itinerary dates (ISO 8601 date).
const DateLayout = "2006-01-02"

// ErrInvalidPreferences is the sentinel wrapped by every preference
// validation failure so callers can classify without string matching.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Budget levels.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Travel modes.
const (
	ModeBus    = "bus"
	ModeTrain  = "train"
	ModeFlight = "flight"
	ModeMixed  = "mixed"
)

// Preferences describes the trip a user wants generated. Immutable once
// handed to the planner.
type Preferences struct {
	Destination  string   `json:"destination"`
	StartingCity string   `json:"startingCity"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	BudgetLevel  string   `json:"budgetLevel"`
	Interests    []string `json:"interests"`
	TravelMode   string   `json:"travelMode"`
}

// Validate checks the submission invariants: non-empty destination, origin
// and interests, known enum values, parseable dates with startDate <= endDate.
func (p Preferences) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidPreferences)
	}
	if p.StartingCity == "" {
		return fmt.Errorf("%w: startingCity is required", ErrInvalidPreferences)
	}
	if len(p.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", ErrInvalidPreferences)
	}
	switch p.BudgetLevel {
	case BudgetLow, BudgetMedium, BudgetHigh:
	default:
		return fmt.Errorf("%w: unknown budget level %q", ErrInvalidPreferences, p.BudgetLevel)
	}
	switch p.TravelMode {
	case ModeBus, ModeTrain, ModeFlight, ModeMixed:
	default:
		return fmt.Errorf("%w: unknown travel mode %q", ErrInvalidPreferences, p.TravelMode)
	}
	start, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return fmt.Errorf("%w: bad startDate %q", ErrInvalidPreferences, p.StartDate)
	}
	end, err := time.Parse(DateLayout, p.EndDate)
	if err != nil {
		return fmt.Errorf("%w: bad endDate %q", ErrInvalidPreferences, p.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate before startDate", ErrInvalidPreferences)
	}
	return nil
}

// DaySpan returns the trip length in days, inclusive of both endpoints.
// Preferences must already be validated; malformed dates return 0.
func (p Preferences) DaySpan() int {
	start, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, p.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DateForDay returns the calendar date of day n (1-indexed from StartDate).
func (p Preferences) DateForDay(n int) string {
	start, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, n-1).Format(DateLayout)
}
