// README: Shared handler utilities (JSON helpers, error-to-status mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/ai"
	"yatra/internal/itinerary"
	"yatra/internal/planner"
	"yatra/internal/trip"
	"yatra/internal/usage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError maps pipeline errors onto user-facing responses. The
// three messages users must be able to tell apart: retry shortly (rate
// limit), service unavailable (quota) and generic generation failure.
func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrInvalidPreferences):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usage.ErrAllowanceExhausted):
		writeError(c, http.StatusTooManyRequests, "Monthly generation limit reached. Please try again next month.")
	case errors.Is(err, planner.ErrRunInFlight):
		writeError(c, http.StatusConflict, "An itinerary is already being generated. Please wait for it to finish.")
	case errors.Is(err, ai.ErrRateLimited):
		writeError(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
	case errors.Is(err, ai.ErrQuotaExhausted):
		writeError(c, http.StatusServiceUnavailable, "The itinerary service is temporarily unavailable. Please try again later.")
	case errors.Is(err, ai.ErrTransport),
		errors.Is(err, ai.ErrMalformedEnvelope),
		errors.Is(err, ai.ErrNoPayload),
		errors.Is(err, itinerary.ErrNotJSON),
		errors.Is(err, itinerary.ErrMissingField):
		writeError(c, http.StatusBadGateway, "Failed to generate itinerary. Please try again.")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, trip.ErrForbidden):
		writeError(c, http.StatusForbidden, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
