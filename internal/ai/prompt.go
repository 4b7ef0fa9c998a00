// README: Deterministic prompt construction from trip preferences.
package ai

import (
	"fmt"
	"strings"

	"yatra/internal/itinerary"
)

// Generation parameters applied to every itinerary request.
const (
	promptTemperature = 0.7
	promptMaxTokens   = 4000
)

const systemPrompt = `You are an expert travel planner specializing in budget-friendly student travel in India.
Create detailed, practical travel itineraries that maximize experiences while minimizing costs.
Always provide specific recommendations with estimated costs in INR.
Focus on student-friendly options like hostels, local food, and free attractions.
Include exact location coordinates for mapping when possible.
Respond with a single JSON object only. Do not include any prose, explanation or markdown outside the JSON object.`

// BuildPrompt turns validated preferences into a generation request.
//
// Pure and deterministic: the same preferences always produce byte-identical
// instruction text. The user prompt spells out the exact JSON shape the
// response extractor and validator assume, so prompt and parser must be
// revised together.
func BuildPrompt(prefs itinerary.Preferences) Request {
	user := fmt.Sprintf(`Create a detailed travel itinerary for a student trip:

TRIP DETAILS:
- From: %s
- To: %s
- Dates: %s to %s
- Budget Level: %s (%s)
- Interests: %s
- Preferred Travel: %s

Respond with exactly the following JSON structure and nothing else:
{
  "title": "Trip title",
  "destination": "%s",
  "startDate": "%s",
  "endDate": "%s",
  "bestTimeToVisit": "Best months to visit",
  "days": [
    {
      "day": 1,
      "date": "%s",
      "activities": [
        {
          "time": "09:00",
          "name": "Activity name",
          "description": "What to do",
          "location": "Place name",
          "cost": 0,
          "duration": "2 hours",
          "coordinates": {"lat": 0.0, "lng": 0.0}
        }
      ],
      "meals": [
        {
          "type": "breakfast",
          "name": "Meal recommendation",
          "place": "Restaurant/cafe name",
          "estimatedCost": 100,
          "recommendation": "Try their special dish"
        }
      ],
      "accommodation": {
        "name": "Hostel/Hotel name",
        "type": "hostel",
        "cost": 500,
        "location": "Area name",
        "coordinates": {"lat": 0.0, "lng": 0.0}
      },
      "tips": ["Local tip for the day"]
    }
  ],
  "budgetBreakdown": {
    "travel": 0,
    "accommodation": 0,
    "food": 0,
    "activities": 0,
    "miscellaneous": 0,
    "total": 0
  },
  "moneyTips": ["Student money-saving tips"],
  "travelRoutes": [
    {
      "from": "%s",
      "to": "%s",
      "mode": "%s",
      "duration": "Duration",
      "estimatedCost": 0,
      "recommendation": "Best booking platform"
    }
  ]
}

"meal.type" must be one of breakfast, lunch, dinner, snack.
"accommodation.type" must be one of hostel, hotel, homestay, airbnb.
Provide one entry in "days" for every date from %s to %s inclusive.
Ensure all costs are realistic and in INR. Include coordinates for major attractions in %s.`,
		prefs.StartingCity,
		prefs.Destination,
		prefs.StartDate, prefs.EndDate,
		prefs.BudgetLevel, budgetRange(prefs.BudgetLevel),
		strings.Join(prefs.Interests, ", "),
		prefs.TravelMode,
		prefs.Destination,
		prefs.StartDate,
		prefs.EndDate,
		prefs.StartDate,
		prefs.StartingCity,
		prefs.Destination,
		prefs.TravelMode,
		prefs.StartDate, prefs.EndDate,
		prefs.Destination,
	)

	return Request{
		System:      systemPrompt,
		User:        user,
		Temperature: promptTemperature,
		MaxTokens:   promptMaxTokens,
	}
}

func budgetRange(level string) string {
	switch level {
	case itinerary.BudgetLow:
		return "INR 1,000-3,000/day"
	case itinerary.BudgetHigh:
		return "INR 7,000+/day"
	default:
		return "INR 3,000-7,000/day"
	}
}
