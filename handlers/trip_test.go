package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"playday/models"
	"playday/services/trip"
)

type stubSessionService struct {
	session *models.TripSession
	err     error
}

func (s *stubSessionService) PlanTrip(ctx context.Context, req models.PlanRequest) (*models.TripSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) GetSession(ctx context.Context, sessionID string) (*models.TripSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) ReorderActivities(ctx context.Context, sessionID string, order []string) (*models.TripSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) SetCompletion(ctx context.Context, sessionID, activityID string, done bool) (*models.TripSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) SetNote(ctx context.Context, sessionID, activityID, note string) (*models.TripSession, error) {
	return s.session, s.err
}

func (s *stubSessionService) DiscardSession(ctx context.Context, sessionID string) error {
	return s.err
}

func newRouter(svc trip.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTripHandler(svc, zap.NewNop())
	r.POST("/api/plan-trip", h.PlanTripHandler)
	r.GET("/api/trip/:sessionID", h.GetTripHandler)
	r.PUT("/api/trip/:sessionID/reorder", h.ReorderHandler)
	r.PUT("/api/trip/:sessionID/activities/:activityID/note", h.NoteHandler)
	return r
}

func readySession() *models.TripSession {
	return &models.TripSession{
		ID:     "sess-1",
		Status: models.SessionStatusReady,
		Itinerary: models.Itinerary{
			Date:       "2026-09-05",
			Window:     models.Window{Start: 18, End: 36},
			Activities: []models.Activity{{ID: "act-1", Title: "Natural History Museum"}},
		},
	}
}

func TestPlanTripHandlerReturnsSession(t *testing.T) {
	router := newRouter(&stubSessionService{session: readySession()})

	body := `{"date":"2026-09-05","timeRange":[18,36],"children":[{"age":4}],"interests":["Museums"],"budget":"££"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan-trip", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		SessionID string           `json:"sessionID"`
		Itinerary models.Itinerary `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Len(t, resp.Itinerary.Activities, 1)
}

func TestPlanTripHandlerRejectsInvalidPayload(t *testing.T) {
	svc := &stubSessionService{err: &trip.ValidationError{Field: "budget", Message: "budget is required"}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan-trip", strings.NewReader(`{"date":"2026-09-05"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTripHandlerNotFound(t *testing.T) {
	router := newRouter(&stubSessionService{err: trip.ErrSessionNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trip/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReorderHandlerBusySession(t *testing.T) {
	router := newRouter(&stubSessionService{err: trip.ErrSessionBusy})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trip/sess-1/reorder", strings.NewReader(`{"order":["act-1"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestNoteHandlerUnknownActivity(t *testing.T) {
	router := newRouter(&stubSessionService{err: trip.ErrActivityNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trip/sess-1/activities/nope/note", strings.NewReader(`{"note":"bring snacks"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
