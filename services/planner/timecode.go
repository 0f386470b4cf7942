package planner

import "fmt"

// The engine measures clock time in half-hour slots from midnight: slot 18 is
// 9:00 AM, slot 48 wraps back to midnight. Windows are caller-validated, so
// out-of-range slots still decode by the same arithmetic rather than failing.

// DecodeSlot renders a slot index as a 12-hour display string, e.g. "9:00 AM".
func DecodeSlot(slot int) string {
	hour := slot / 2
	minute := (slot % 2) * 30

	meridiem := "AM"
	if hour%24 >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

// EncodeSlot is the inverse mapping from a 24-hour clock reading to a slot.
func EncodeSlot(hour, minute int) int {
	return hour*2 + minute/30
}

// FormatSlotRange renders the display string for an activity's time interval,
// e.g. "9:00 AM - 11:00 AM".
func FormatSlotRange(start, end int) string {
	return DecodeSlot(start) + " - " + DecodeSlot(end)
}
