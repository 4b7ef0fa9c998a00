// README: Saved-trip CRUD handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatra/internal/http/middleware"
	"yatra/internal/itinerary"
	"yatra/internal/trip"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type saveTripReq struct {
	Preferences itinerary.Preferences `json:"preferences"`
	Itinerary   *itinerary.Itinerary  `json:"itinerary"`
}

// Save handles POST /api/trips.
func (h *TripHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	id, err := h.trips.Save(c.Request.Context(), middleware.CallerUID(c), req.Preferences, req.Itinerary)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	summaries, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": summaries})
}

// Get handles GET /api/trips/:id.
func (h *TripHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}

	record, err := h.trips.Load(c.Request.Context(), middleware.CallerUID(c), id)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, record)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}

	if err := h.trips.Delete(c.Request.Context(), middleware.CallerUID(c), id); err != nil {
		writeTripError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
