// README: Generation endpoint handler.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/http/middleware"
	"yatra/internal/itinerary"
	"yatra/internal/planner"
)

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

// Generate handles POST /api/itineraries/generate.
//
// Clients have shipped both `{"preferences": {...}}` and the bare
// preferences object as the body; both are accepted.
func (h *PlannerHandler) Generate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable body")
		return
	}

	prefs, ok := decodePreferences(body)
	if !ok {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := h.planner.Generate(c.Request.Context(), middleware.CallerUID(c), prefs)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, result)
}

func decodePreferences(body []byte) (itinerary.Preferences, bool) {
	var envelope struct {
		Preferences *itinerary.Preferences `json:"preferences"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Preferences != nil {
		return *envelope.Preferences, true
	}

	var bare itinerary.Preferences
	if err := json.Unmarshal(body, &bare); err != nil {
		return itinerary.Preferences{}, false
	}
	return bare, true
}
