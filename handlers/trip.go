package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"playday/models"
	"playday/services/trip"
	"playday/utils"
)

// TripHandler exposes the planning session over HTTP.
type TripHandler struct {
	Service trip.SessionService
	Logger  *zap.Logger
}

func NewTripHandler(service trip.SessionService, logger *zap.Logger) *TripHandler {
	return &TripHandler{Service: service, Logger: logger}
}

// PlanTripHandler accepts the planning form and returns the produced session.
// Generation failures never surface here; only a validation failure on the
// submission payload itself is an error response.
func (h *TripHandler) PlanTripHandler(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid plan-trip request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.PlanTrip(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.ID,
		"itinerary": session.Itinerary,
	})
}

// GetTripHandler returns the stored session, including side tables.
func (h *TripHandler) GetTripHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ReorderHandler applies a drag-and-drop activity order and returns the
// itinerary with every start time recomputed.
func (h *TripHandler) ReorderHandler(c *gin.Context) {
	var input struct {
		Order []string `json:"order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.ReorderActivities(c.Request.Context(), c.Param("sessionID"), input.Order)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itinerary": session.Itinerary})
}

// CompleteHandler toggles the completion flag on one activity.
func (h *TripHandler) CompleteHandler(c *gin.Context) {
	var input struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SetCompletion(c.Request.Context(), c.Param("sessionID"), c.Param("activityID"), input.Completed)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": session.Completed})
}

// NoteHandler sets (or clears) the free-text note on one activity.
func (h *TripHandler) NoteHandler(c *gin.Context) {
	var input struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.SetNote(c.Request.Context(), c.Param("sessionID"), c.Param("activityID"), input.Note)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": session.Notes})
}

// DiscardHandler drops the session ("plan another trip").
func (h *TripHandler) DiscardHandler(c *gin.Context) {
	if err := h.Service.DiscardSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip session discarded"})
}

func (h *TripHandler) respondError(c *gin.Context, err error) {
	var validationErr *trip.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validationErr.Error())
	case errors.Is(err, trip.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "trip session not found", "")
	case errors.Is(err, trip.ErrActivityNotFound):
		utils.JSONError(c, http.StatusNotFound, "activity not found", "")
	case errors.Is(err, trip.ErrSessionBusy):
		utils.JSONError(c, http.StatusConflict, "trip is still being planned", "try again shortly")
	default:
		h.Logger.Error("trip request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
