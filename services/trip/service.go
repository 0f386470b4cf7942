// File: services/trip/service.go
package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"playday/models"
	"playday/services/images"
	ai "playday/services/intelligence"
	"playday/services/planner"
)

var validBudgets = map[string]bool{"£": true, "££": true, "£££": true, "££££": true}

// SessionService owns the lifecycle of one planning session: itinerary
// creation, reorder, completion flags, notes and discard.
type SessionService interface {
	PlanTrip(ctx context.Context, req models.PlanRequest) (*models.TripSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.TripSession, error)
	ReorderActivities(ctx context.Context, sessionID string, order []string) (*models.TripSession, error)
	SetCompletion(ctx context.Context, sessionID, activityID string, done bool) (*models.TripSession, error)
	SetNote(ctx context.Context, sessionID, activityID, note string) (*models.TripSession, error)
	DiscardSession(ctx context.Context, sessionID string) error
}

// SessionStore persists trip sessions for their lifetime.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.TripSession, error)
	Set(ctx context.Context, session *models.TripSession) error
	Delete(ctx context.Context, sessionID string) error
}

type DefaultSessionService struct {
	Store   SessionStore
	Planner ai.PlannerService
	Images  images.LookupService
}

// PlanTrip validates the form payload, produces the itinerary (generation
// service with deterministic fallback), resolves activity images and stores
// the session. The stored session carries an explicit "generating" state while
// the request is in flight so a duplicate submission for it can be rejected.
func (s *DefaultSessionService) PlanTrip(ctx context.Context, req models.PlanRequest) (*models.TripSession, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	session := &models.TripSession{
		ID:        uuid.New().String(),
		Status:    models.SessionStatusGenerating,
		Request:   req,
		Completed: make(map[string]bool),
		Notes:     make(map[string]string),
		CreatedAt: time.Now(),
	}
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}

	// PlanTrip never fails: on any generation or ingestion problem it returns
	// the allocator's degraded itinerary.
	itinerary := s.Planner.PlanTrip(ctx, req)
	itinerary.Activities = s.Images.AttachImages(ctx, itinerary.Activities)

	session.Itinerary = itinerary
	session.Status = models.SessionStatusReady
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.TripSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// ReorderActivities applies a user-chosen activity order and recomputes every
// start time from the window start. The order must be a permutation of the
// itinerary's activity IDs. A reordered day may run past the window end; it is
// stored and returned as-is.
func (s *DefaultSessionService) ReorderActivities(ctx context.Context, sessionID string, order []string) (*models.TripSession, error) {
	session, err := s.loadReady(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	current := session.Itinerary.Activities
	byID := make(map[string]models.Activity, len(current))
	for _, a := range current {
		byID[a.ID] = a
	}
	if len(order) != len(current) {
		return nil, &ValidationError{Field: "order", Message: "must list every activity exactly once"}
	}
	reordered := make([]models.Activity, 0, len(order))
	for _, id := range order {
		a, ok := byID[id]
		if !ok {
			return nil, ErrActivityNotFound
		}
		reordered = append(reordered, a)
		delete(byID, id)
	}

	session.Itinerary.Activities = planner.Reorder(reordered, session.Itinerary.Window.Start)
	session.Itinerary.TotalDuration = planner.TotalDuration(session.Itinerary.Activities)
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetCompletion toggles the completion flag for one activity. The side table
// is keyed by the activity's stable ID, so the flag follows the activity
// through reorders rather than sticking to a list position.
func (s *DefaultSessionService) SetCompletion(ctx context.Context, sessionID, activityID string, done bool) (*models.TripSession, error) {
	session, err := s.loadReady(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.hasActivity(session, activityID) {
		return nil, ErrActivityNotFound
	}
	if done {
		session.Completed[activityID] = true
	} else {
		delete(session.Completed, activityID)
	}
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetNote attaches a free-text note to one activity, keyed by activity ID.
func (s *DefaultSessionService) SetNote(ctx context.Context, sessionID, activityID, note string) (*models.TripSession, error) {
	session, err := s.loadReady(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.hasActivity(session, activityID) {
		return nil, ErrActivityNotFound
	}
	if note == "" {
		delete(session.Notes, activityID)
	} else {
		session.Notes[activityID] = note
	}
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// DiscardSession drops the session and its side tables ("plan another trip").
func (s *DefaultSessionService) DiscardSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultSessionService) loadReady(ctx context.Context, sessionID string) (*models.TripSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionStatusReady {
		return nil, ErrSessionBusy
	}
	if session.Completed == nil {
		session.Completed = make(map[string]bool)
	}
	if session.Notes == nil {
		session.Notes = make(map[string]string)
	}
	return session, nil
}

func (s *DefaultSessionService) hasActivity(session *models.TripSession, activityID string) bool {
	for _, a := range session.Itinerary.Activities {
		if a.ID == activityID {
			return true
		}
	}
	return false
}

func validatePlanRequest(req models.PlanRequest) error {
	if req.Date == "" {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return &ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"}
	}
	if req.Window().Slots() <= 0 {
		return &ValidationError{Field: "timeRange", Message: "start slot must be before end slot"}
	}
	if !validBudgets[req.Budget] {
		return &ValidationError{Field: "budget", Message: "budget must be one of £, ££, £££, ££££"}
	}
	for i, child := range req.Children {
		if child.Age < 0 || child.Age > 18 {
			return &ValidationError{
				Field:   "children",
				Message: fmt.Sprintf("child %d age must be between 0 and 18", i+1),
			}
		}
	}
	return nil
}
