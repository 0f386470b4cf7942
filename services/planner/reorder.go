package planner

import "playday/models"

// Reorder recomputes every start time from the window start for the given
// activity order. Each activity's duration text is re-parsed, its start slot
// set to the running cursor and its display time restamped, so any permutation
// yields a contiguous, overlap-free schedule. The result is deliberately not
// truncated or validated against the original window end: a reordered day that
// runs past the window is surfaced to the caller unmodified.
func Reorder(activities []models.Activity, windowStart int) []models.Activity {
	out := make([]models.Activity, len(activities))
	cursor := windowStart
	for i, a := range activities {
		slots := ParseDuration(a.Duration)
		a.StartSlot = cursor
		a.DurationSlots = slots
		a.Time = FormatSlotRange(cursor, cursor+slots)
		out[i] = a
		cursor += slots
	}
	return out
}
