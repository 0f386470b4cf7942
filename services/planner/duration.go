package planner

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Free-form duration text arrives both from the catalogue and from the
// generation service, so parsing is deliberately forgiving: "2 hours",
// "1.5 hrs", "45 mins", "1 hour 30 minutes" are all accepted.
var (
	hoursPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*h(?:ou)?rs?`)
	minsPattern  = regexp.MustCompile(`(?i)(\d+)\s*m(?:in(?:ute)?s?)?`)
)

// DefaultDurationSlots is used when duration text is unparseable or zero.
const DefaultDurationSlots = 2 // 1 hour

// ParseDuration converts duration text into a whole number of half-hour
// slots, rounding partial slots up. Unparseable or zero input defaults to
// DefaultDurationSlots.
func ParseDuration(text string) int {
	totalMinutes := 0
	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			totalMinutes += int(math.Round(hours * 60))
		}
	}
	if m := minsPattern.FindStringSubmatch(text); m != nil {
		mins, err := strconv.Atoi(m[1])
		if err == nil {
			totalMinutes += mins
		}
	}
	if totalMinutes <= 0 {
		return DefaultDurationSlots
	}
	return (totalMinutes + 29) / 30
}

// FormatDuration renders a slot count canonically: "2 hours", "1 hour",
// "30 mins" or "1 hour 30 mins". ParseDuration(FormatDuration(n)) == n for
// any n >= 1, which makes normalization idempotent.
func FormatDuration(slots int) string {
	if slots < 1 {
		slots = 1
	}
	hours := slots / 2
	mins := (slots % 2) * 30

	hourText := fmt.Sprintf("%d hours", hours)
	if hours == 1 {
		hourText = "1 hour"
	}

	switch {
	case hours == 0:
		return fmt.Sprintf("%d mins", mins)
	case mins == 0:
		return hourText
	default:
		return fmt.Sprintf("%s %d mins", hourText, mins)
	}
}

// NormalizeDuration reformats arbitrary duration text into canonical form.
func NormalizeDuration(text string) string {
	return FormatDuration(ParseDuration(text))
}
