package planner

import (
	"github.com/google/uuid"

	"playday/models"
)

// Allocate greedily packs the catalogue's candidate activities into the
// window. Templates are visited in catalogue priority order; a template whose
// interest is selected is placed at the cursor when its duration plus slack
// still fits before window.End, otherwise it is skipped outright (never
// deferred). The result is sorted by start slot, pairwise non-overlapping,
// inside the window and never empty: when nothing was placed the fallback
// activity is placed at window.Start even if it overflows a too-short window.
func Allocate(interests []string, budget string, window models.Window) []models.Activity {
	selected := make(map[string]bool, len(interests))
	for _, tag := range interests {
		selected[tag] = true
	}

	var activities []models.Activity
	cursor := window.Start

	for _, tpl := range Catalogue {
		if !selected[tpl.Interest] {
			continue
		}
		if cursor+tpl.DurationSlots+tpl.Slack > window.End {
			continue
		}
		activities = append(activities, instantiate(tpl, cursor, budget))
		cursor += tpl.DurationSlots
	}

	switch {
	case len(activities) == 0:
		activities = append(activities, instantiate(FallbackTemplate, window.Start, budget))
	case len(activities) < MinActivityCount && window.End-cursor >= FallbackTemplate.DurationSlots:
		activities = append(activities, instantiate(FallbackTemplate, cursor, budget))
	}

	return activities
}

// Compose runs the allocator for a full planning request and assembles the
// resulting itinerary.
func Compose(req models.PlanRequest) models.Itinerary {
	window := req.Window()
	activities := Allocate(req.Interests, req.Budget, window)
	return models.Itinerary{
		Date:          req.Date,
		Window:        window,
		Activities:    activities,
		TotalDuration: TotalDuration(activities),
	}
}

// TotalDuration renders the combined length of all activities.
func TotalDuration(activities []models.Activity) string {
	total := 0
	for _, a := range activities {
		total += a.DurationSlots
	}
	return FormatDuration(total)
}

func instantiate(tpl CandidateTemplate, startSlot int, budget string) models.Activity {
	return models.Activity{
		ID:            uuid.New().String(),
		Title:         tpl.Title,
		Description:   tpl.Description,
		Time:          FormatSlotRange(startSlot, startSlot+tpl.DurationSlots),
		StartSlot:     startSlot,
		Duration:      FormatDuration(tpl.DurationSlots),
		DurationSlots: tpl.DurationSlots,
		BudgetLevel:   budget,
	}
}
