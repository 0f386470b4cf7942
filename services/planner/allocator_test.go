package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playday/models"
)

func allInterests() []string {
	tags := make([]string, 0, len(Catalogue))
	for _, tpl := range Catalogue {
		tags = append(tags, tpl.Interest)
	}
	return tags
}

// assertWellFormed checks the allocator guarantees: non-empty, sorted by start,
// pairwise non-overlapping.
func assertWellFormed(t *testing.T, activities []models.Activity) {
	t.Helper()
	require.NotEmpty(t, activities)
	for i := 1; i < len(activities); i++ {
		assert.GreaterOrEqual(t, activities[i].StartSlot, activities[i-1].EndSlot(),
			"activities %d and %d overlap", i-1, i)
	}
}

func TestAllocateMuseumMorning(t *testing.T) {
	// 9:00 AM - 6:00 PM, Museums only: a 2-hour museum visit at 9:00 AM.
	window := models.Window{Start: 18, End: 36}
	activities := Allocate([]string{"Museums"}, "££", window)

	assertWellFormed(t, activities)
	require.Equal(t, "Natural History Museum", activities[0].Title)
	assert.Equal(t, 18, activities[0].StartSlot)
	assert.Equal(t, 4, activities[0].DurationSlots)
	assert.Equal(t, 22, activities[0].EndSlot())
}

func TestAllocateTightWindow(t *testing.T) {
	// 9:00 - 11:00 AM: only the museum fits; the rest are skipped and the
	// fallback is not added because the list is non-empty and no room remains.
	window := models.Window{Start: 18, End: 22}
	activities := Allocate([]string{"Museums", "Parks", "Markets"}, "£", window)

	require.Len(t, activities, 1)
	assert.Equal(t, "Natural History Museum", activities[0].Title)
	assert.Equal(t, 18, activities[0].StartSlot)
}

func TestAllocateNoInterests(t *testing.T) {
	window := models.Window{Start: 18, End: 36}
	activities := Allocate(nil, "£££", window)

	require.Len(t, activities, 1)
	assert.Equal(t, FallbackTemplate.Title, activities[0].Title)
	assert.Equal(t, window.Start, activities[0].StartSlot)
}

func TestAllocateFallbackTopUp(t *testing.T) {
	// Two short activities leave room and the count is below the minimum, so
	// the fallback tops the day up.
	window := models.Window{Start: 18, End: 36}
	activities := Allocate([]string{"Hidden Gems", "Great Food"}, "££", window)

	require.Len(t, activities, 3)
	assert.Equal(t, FallbackTemplate.Title, activities[2].Title)
	assert.Equal(t, activities[1].EndSlot(), activities[2].StartSlot)
}

func TestAllocateInfeasibleWindow(t *testing.T) {
	// A window too short even for the fallback still yields one activity;
	// overflow past the window end is preferred over an empty itinerary.
	window := models.Window{Start: 18, End: 19}
	activities := Allocate(nil, "£", window)

	require.Len(t, activities, 1)
	assert.Equal(t, FallbackTemplate.Title, activities[0].Title)
	assert.Equal(t, 18, activities[0].StartSlot)
	assert.Greater(t, activities[0].EndSlot(), window.End)
}

func TestAllocateCataloguePriorityOrder(t *testing.T) {
	// Placement follows catalogue priority regardless of the order the user
	// clicked interests in.
	window := models.Window{Start: 12, End: 48}
	clicked := []string{"Theatre & Shows", "Parks", "Museums"}
	reversed := []string{"Museums", "Parks", "Theatre & Shows"}

	first := Allocate(clicked, "££", window)
	second := Allocate(reversed, "££", window)

	require.Len(t, first, 3)
	assert.Equal(t, "Natural History Museum", first[0].Title)
	assert.Equal(t, "Hyde Park Adventure", first[1].Title)
	assert.Equal(t, "West End Family Show", first[2].Title)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].StartSlot, second[i].StartSlot)
	}
}

func TestAllocateWellFormedAcrossWindows(t *testing.T) {
	windows := []models.Window{
		{Start: 12, End: 48},
		{Start: 18, End: 36},
		{Start: 18, End: 22},
		{Start: 20, End: 30},
		{Start: 30, End: 34},
	}
	interestSets := [][]string{
		nil,
		{"Museums"},
		{"Animals & Zoos", "Historical Sites"},
		allInterests(),
	}
	for _, window := range windows {
		for _, interests := range interestSets {
			activities := Allocate(interests, "££", window)
			assertWellFormed(t, activities)
			// Interest-driven placements stay inside the window; only the
			// infeasible-window fallback may overflow.
			if len(activities) > 1 {
				last := activities[len(activities)-1]
				assert.LessOrEqual(t, last.EndSlot(), window.End)
			}
		}
	}
}

func TestAllocateDeterministic(t *testing.T) {
	window := models.Window{Start: 18, End: 36}
	interests := []string{"Museums", "Parks", "Great Food"}

	first := Allocate(interests, "££", window)
	second := Allocate(interests, "££", window)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].StartSlot, second[i].StartSlot)
		assert.Equal(t, first[i].DurationSlots, second[i].DurationSlots)
	}
}

func TestComposeTotalsAndWindow(t *testing.T) {
	req := models.PlanRequest{
		Date:      "2026-09-05",
		TimeRange: [2]int{18, 36},
		Interests: []string{"Museums", "Parks"},
		Budget:    "££",
	}
	itinerary := Compose(req)

	assert.Equal(t, req.Date, itinerary.Date)
	assert.Equal(t, models.Window{Start: 18, End: 36}, itinerary.Window)
	assertWellFormed(t, itinerary.Activities)
	// Museums (2h) + Parks (1.5h) + fallback top-up (1h).
	assert.Equal(t, "4 hours 30 mins", itinerary.TotalDuration)
}
