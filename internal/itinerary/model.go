// README: Itinerary domain model (mirrors the JSON shape the generator is asked to emit).
package itinerary

// Coordinates is a WGS84 point. The pointer form is used everywhere a
// coordinate pair is optional so "absent" and "present" stay distinguishable.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single scheduled entry within a day.
type Activity struct {
	Time        string       `json:"time"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Cost        float64      `json:"cost"`
	Duration    string       `json:"duration"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Meal types the generator may emit.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type Meal struct {
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	Place          string  `json:"place"`
	EstimatedCost  float64 `json:"estimatedCost"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// Accommodation types the generator may emit.
const (
	StayHostel   = "hostel"
	StayHotel    = "hotel"
	StayHomestay = "homestay"
	StayAirbnb   = "airbnb"
)

type Accommodation struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Cost        float64      `json:"cost"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// DayPlan is one day of the trip. Accommodation is nil when the generator
// returned none; it is never synthesized.
type DayPlan struct {
	Day           int            `json:"day"`
	Date          string         `json:"date"`
	Activities    []Activity     `json:"activities"`
	Meals         []Meal         `json:"meals"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	Tips          []string       `json:"tips"`
}

type BudgetBreakdown struct {
	Travel        float64 `json:"travel"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
}

// Sum recomputes the total from the five component fields.
func (b BudgetBreakdown) Sum() float64 {
	return b.Travel + b.Accommodation + b.Food + b.Activities + b.Miscellaneous
}

type TravelRoute struct {
	From           string  `json:"from"`
	To             string  `json:"to"`
	Mode           string  `json:"mode"`
	Duration       string  `json:"duration"`
	EstimatedCost  float64 `json:"estimatedCost"`
	Recommendation string  `json:"recommendation"`
}

// Itinerary is the validated output of a generation run. Values are treated
// as immutable once built; consumers needing changes construct a new value.
type Itinerary struct {
	Title           string          `json:"title"`
	Destination     string          `json:"destination"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Days            []DayPlan       `json:"days"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
	MoneyTips       []string        `json:"moneyTips"`
	BestTimeToVisit string          `json:"bestTimeToVisit"`
	TravelRoutes    []TravelRoute   `json:"travelRoutes"`
}

// Marker types consumed by the map renderer.
const (
	MarkerAttraction = "attraction"
	MarkerRestaurant = "restaurant"
	MarkerHotel      = "hotel"
	MarkerTransport  = "transport"
)

// MapMarker is a derived view over an Itinerary; recomputed on demand,
// never persisted on its own.
type MapMarker struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
	Description string      `json:"description,omitempty"`
}
