package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playday/models"
)

func sampleActivities() []models.Activity {
	window := models.Window{Start: 18, End: 36}
	return Allocate([]string{"Museums", "Markets", "Parks"}, "££", window)
}

func TestReorderContiguity(t *testing.T) {
	activities := sampleActivities()
	require.GreaterOrEqual(t, len(activities), 3)

	// Reverse the day and recompute.
	reversed := make([]models.Activity, len(activities))
	for i, a := range activities {
		reversed[len(activities)-1-i] = a
	}
	recomputed := Reorder(reversed, 18)

	assert.Equal(t, 18, recomputed[0].StartSlot)
	for i := 1; i < len(recomputed); i++ {
		assert.Equal(t, recomputed[i-1].EndSlot(), recomputed[i].StartSlot,
			"schedule must stay contiguous at position %d", i)
	}
}

func TestReorderAllPermutations(t *testing.T) {
	activities := sampleActivities()[:3]

	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, perm := range permutations {
		ordered := make([]models.Activity, len(perm))
		for i, idx := range perm {
			ordered[i] = activities[idx]
		}
		recomputed := Reorder(ordered, 18)
		cursor := 18
		for i, a := range recomputed {
			assert.Equal(t, cursor, a.StartSlot, "perm %v position %d", perm, i)
			cursor += a.DurationSlots
		}
	}
}

func TestReorderIdentityIsStable(t *testing.T) {
	activities := sampleActivities()

	recomputed := Reorder(activities, 18)
	for i := range activities {
		assert.Equal(t, activities[i].ID, recomputed[i].ID)
		assert.Equal(t, activities[i].StartSlot, recomputed[i].StartSlot)
		assert.Equal(t, activities[i].Time, recomputed[i].Time)
	}
}

func TestReorderUpdatesDisplayTime(t *testing.T) {
	activities := sampleActivities()[:2]
	// Swap and recompute: the second activity now starts the day.
	swapped := []models.Activity{activities[1], activities[0]}
	recomputed := Reorder(swapped, 18)

	assert.Equal(t, FormatSlotRange(18, 18+recomputed[0].DurationSlots), recomputed[0].Time)
	assert.Equal(t, recomputed[0].EndSlot(), recomputed[1].StartSlot)
}

func TestReorderMayRunPastWindowEnd(t *testing.T) {
	// A reorder is never truncated to the original window.
	activities := []models.Activity{
		{ID: "a", Duration: "3 hours"},
		{ID: "b", Duration: "2 hours"},
	}
	recomputed := Reorder(activities, 30) // 3:00 PM start
	assert.Equal(t, 36, recomputed[1].StartSlot)
	assert.Equal(t, 40, recomputed[1].EndSlot()) // 8:00 PM, beyond a 6:00 PM window
	assert.Equal(t, "6:00 PM - 8:00 PM", recomputed[1].Time)
}

func TestReorderReparsesDurationText(t *testing.T) {
	// Duration text is authoritative; stale slot counts are recomputed.
	activities := []models.Activity{{ID: "a", Duration: "1.5 hours", DurationSlots: 99}}
	recomputed := Reorder(activities, 18)
	assert.Equal(t, 3, recomputed[0].DurationSlots)
	assert.Equal(t, 21, recomputed[0].EndSlot())
}
