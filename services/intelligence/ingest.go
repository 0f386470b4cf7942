// File: services/intelligence/ingest.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"playday/models"
	"playday/services/planner"
)

// DegradedTitlePrefix marks fallback activities so a degraded itinerary is
// visually distinguishable from a generated one.
const DegradedTitlePrefix = "Classic Pick: "

// PlannerService produces an itinerary for a planning request. It never
// surfaces a raw failure: when the generation path is unusable the caller
// still receives a deterministic, well-formed itinerary.
type PlannerService interface {
	PlanTrip(ctx context.Context, req models.PlanRequest) models.Itinerary
}

// DefaultPlannerService delegates generation to a Generator and falls back to
// the interval allocator on any unrecoverable failure.
type DefaultPlannerService struct {
	Generator      Generator
	MaxAttempts    int
	RetryDelay     time.Duration
	RequestTimeout time.Duration // per-attempt deadline; 0 means none
	Logger         *zap.Logger
}

func NewDefaultPlannerService(gen Generator, maxAttempts int, retryDelay, requestTimeout time.Duration, logger *zap.Logger) *DefaultPlannerService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &DefaultPlannerService{
		Generator:      gen,
		MaxAttempts:    maxAttempts,
		RetryDelay:     retryDelay,
		RequestTimeout: requestTimeout,
		Logger:         logger,
	}
}

// PlanTrip requests an itinerary from the generation service, ingests the
// response and falls back to the deterministic allocator on any failure.
func (s *DefaultPlannerService) PlanTrip(ctx context.Context, req models.PlanRequest) models.Itinerary {
	raw, err := s.generateWithRetry(ctx, BuildPrompt(req))
	if err != nil {
		return s.fallback(req, err)
	}

	itinerary, err := s.ingest(raw, req)
	if err != nil {
		s.Logger.Warn("generation payload rejected", zap.Error(err))
		return s.fallback(req, err)
	}
	return itinerary
}

// generateWithRetry runs a bounded iterative retry loop: transient failures
// wait a fixed delay and try again up to MaxAttempts; fatal failures and
// transport errors return immediately.
func (s *DefaultPlannerService) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.MaxAttempts; attempt++ {
		raw, err := s.generate(ctx, prompt)
		if err == nil {
			return raw, nil
		}

		classified := classifyServiceError(err)
		if !isTransient(classified) {
			s.Logger.Warn("generation request failed", zap.Error(classified))
			return "", classified
		}

		lastErr = classified
		s.Logger.Info("generation service busy, retrying",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", s.MaxAttempts),
			zap.Duration("delay", s.RetryDelay),
		)
		if attempt < s.MaxAttempts {
			// Retries are sequential and run to completion even if the user
			// has navigated away; no cancellation is threaded through here.
			time.Sleep(s.RetryDelay)
		}
	}
	return "", fmt.Errorf("generation service unavailable after %d attempts: %w", s.MaxAttempts, lastErr)
}

// generate runs one attempt under the configured per-attempt deadline, so a
// hung generation call cannot hold the request open indefinitely.
func (s *DefaultPlannerService) generate(ctx context.Context, prompt string) (string, error) {
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}
	return s.Generator.GenerateContent(ctx, prompt)
}

// generatedPlan mirrors the JSON contract the prompt asks the model for.
type generatedPlan struct {
	Summary       string                `json:"summary"`
	Logistics     *models.Logistics     `json:"logistics"`
	Activities    []generatedActivity   `json:"activities"`
	MealPlanning  *models.MealPlanning  `json:"mealPlanning"`
	EmergencyInfo *models.EmergencyInfo `json:"emergencyInfo"`
}

type generatedActivity struct {
	Time          string                   `json:"time"`
	Duration      string                   `json:"duration"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	Location      *models.ActivityLocation `json:"location"`
	CrowdLevel    string                   `json:"crowdLevel"`
	CostEstimate  string                   `json:"costEstimate"`
	Engagement    string                   `json:"childEngagement"`
	PracticalTips string                   `json:"practicalTips"`
	TransportNext string                   `json:"transportToNext"`
}

// extractJSON locates the candidate JSON object in free-form response text,
// tolerating surrounding prose and markdown fences.
func extractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", &MalformedPayloadError{Reason: "no JSON object found in response"}
	}
	return raw[start : end+1], nil
}

// ingest parses and validates the raw response text into an itinerary.
func (s *DefaultPlannerService) ingest(raw string, req models.PlanRequest) (models.Itinerary, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return models.Itinerary{}, err
	}

	var plan generatedPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return models.Itinerary{}, &MalformedPayloadError{Reason: "JSON parse failed: " + err.Error()}
	}
	if len(plan.Activities) == 0 {
		return models.Itinerary{}, &MalformedPayloadError{Reason: "activities list missing or empty"}
	}

	activities := make([]models.Activity, 0, len(plan.Activities))
	for i, ga := range plan.Activities {
		if ga.Title == "" || ga.Time == "" || ga.Duration == "" || ga.Description == "" {
			return models.Itinerary{}, &MalformedPayloadError{
				Reason: fmt.Sprintf("activity %d is missing a required field", i),
			}
		}
		activities = append(activities, models.Activity{
			ID:            uuid.New().String(),
			Title:         ga.Title,
			Description:   ga.Description,
			Time:          ga.Time,
			Duration:      planner.NormalizeDuration(ga.Duration),
			BudgetLevel:   req.Budget,
			Location:      ga.Location,
			CrowdLevel:    ga.CrowdLevel,
			CostEstimate:  ga.CostEstimate,
			Engagement:    ga.Engagement,
			PracticalTips: ga.PracticalTips,
			TransportNext: ga.TransportNext,
		})
	}

	// The model's own time stamps are free text; restamping contiguously from
	// the window start keeps the itinerary sorted and overlap-free.
	window := req.Window()
	activities = planner.Reorder(activities, window.Start)

	return models.Itinerary{
		Date:          req.Date,
		Window:        window,
		Activities:    activities,
		TotalDuration: planner.TotalDuration(activities),
		Summary:       plan.Summary,
		Logistics:     plan.Logistics,
		MealPlanning:  plan.MealPlanning,
		EmergencyInfo: plan.EmergencyInfo,
	}, nil
}

// fallback produces the deterministic itinerary and annotates it as degraded.
func (s *DefaultPlannerService) fallback(req models.PlanRequest, cause error) models.Itinerary {
	s.Logger.Info("falling back to deterministic itinerary", zap.Error(cause))

	itinerary := planner.Compose(req)
	for i := range itinerary.Activities {
		itinerary.Activities[i].Title = DegradedTitlePrefix + itinerary.Activities[i].Title
	}
	itinerary.Degraded = true
	itinerary.Diagnostic = fmt.Sprintf(
		"We couldn't reach our planning assistant, so here is a hand-picked day of London favourites instead (%v).", cause)
	return itinerary
}
