package ai

import (
	"fmt"
	"strings"
	"time"

	"playday/models"
	"playday/services/planner"
)

// ageGroup buckets a child's age the way the tour-guide prompt expects.
func ageGroup(age int) string {
	switch {
	case age <= 3:
		return "Toddler"
	case age <= 6:
		return "Preschooler"
	case age <= 10:
		return "Primary School"
	case age <= 14:
		return "Tween"
	default:
		return "Teenager"
	}
}

func describeChildren(children []models.Child) string {
	parts := make([]string, 0, len(children))
	for i, child := range children {
		desc := fmt.Sprintf("Child %d: %d years old (%s)", i+1, child.Age, ageGroup(child.Age))
		if child.Preferences != "" {
			desc += ", Special notes: " + child.Preferences
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, "; ")
}

func describeDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, 2 January 2006")
}

// BuildPrompt renders the natural-language planning request sent to the
// generation service. The JSON contract at the end is load-bearing: ingestion
// validates against exactly these field names.
func BuildPrompt(req models.PlanRequest) string {
	var b strings.Builder

	b.WriteString("You are London's most experienced family tour guide with 20+ years of expertise. ")
	b.WriteString("Create a meticulously planned, timed itinerary for a family day out in London. ")
	b.WriteString("Consider EVERY detail to ensure a smooth, enjoyable experience.\n\n")
	b.WriteString("IMPORTANT: Write in British English throughout. Use clear, accessible language ")
	b.WriteString("and avoid em dashes in favour of simple punctuation. Remember that you are ")
	b.WriteString("outputting text designed for a parent of young children to read.\n\n")

	fmt.Fprintf(&b, "=== FAMILY DETAILS ===\n")
	fmt.Fprintf(&b, "- Date & Weather: %s (consider typical London weather for this date and season)\n", describeDate(req.Date))
	fmt.Fprintf(&b, "- Time Frame: From %s to %s\n", planner.DecodeSlot(req.TimeRange[0]), planner.DecodeSlot(req.TimeRange[1]))
	fmt.Fprintf(&b, "- Children: %s\n", describeChildren(req.Children))
	fmt.Fprintf(&b, "- Primary Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&b, "- Budget Level: %s (£ = budget-conscious, ££ = moderate, £££ = comfortable, ££££ = luxury)\n\n", req.Budget)

	b.WriteString(`=== CRITICAL CONSIDERATIONS ===
TRANSPORT & LOGISTICS:
- Calculate realistic travel times between locations using London public transport
- Consider rush hour periods (8-9:30am, 5-7pm) and plan accordingly
- Factor in walking distances from stations to venues
- Recommend contactless payment for all London transport
- Suggest the most family-friendly routes (lifts vs stairs, step-free access)
- Account for tube delays and suggest buffer time between activities

CROWD MANAGEMENT:
- Identify peak times for each venue and suggest optimal visiting windows
- Recommend advance bookings where necessary and provide specific booking advice
- Consider school holiday periods and weekend crowds
- Provide crowd-level expectations for each time slot

DIETARY & HEALTH REQUIREMENTS:
- For each recommended restaurant or cafe, verify they can accommodate common dietary requirements
- Identify venues with high-chairs, baby changing facilities, and child-friendly atmospheres
- Plan strategic snack breaks with healthy options available

WEATHER CONTINGENCIES:
- Include specific indoor backup options for each outdoor activity
- Consider seasonal factors (daylight hours, temperature, typical weather for the date)

AGE-APPROPRIATE LOGISTICS:
- Consider nap times for younger children and plan quieter activities accordingly
- Factor in realistic attention spans (toddlers: 15-30min, preschool: 30-45min, school age: 1-2hrs)
- Suggest stroller-friendly routes and venues with stroller parking

BUDGET OPTIMIZATION:
- Look for family discounts, free activities, and combo tickets
- Include realistic cost estimates based on current London prices
- Factor transport costs into total budget planning

ENGAGEMENT STRATEGIES:
- Tailor each activity explanation to the specific children's ages and stated interests
- Plan variety in activity types (active, educational, creative, relaxing) throughout the day

=== OUTPUT REQUIREMENTS ===
Provide a structured JSON response with this exact format:
{
  "summary": "A brief overview of the day and why these choices work perfectly for this family",
  "logistics": {
    "totalWalkingTime": "Estimated total walking time",
    "transportMethod": "Recommended transport method",
    "weatherBackup": "Quick weather contingency summary"
  },
  "activities": [
    {
      "time": "9:00 AM",
      "duration": "2 hours",
      "title": "Activity Name",
      "description": "Detailed, child-friendly explanation of the activity",
      "location": {
        "address": "Full address with postcode",
        "nearestTube": "Nearest tube station with walking distance and step-free access info",
        "accessibility": "Detailed accessibility notes"
      },
      "crowdLevel": "Low/Medium/High with time-specific notes",
      "costEstimate": "Specific current prices (£X-Y per person or family rate)",
      "childEngagement": "Specific tips for keeping these particular children engaged",
      "practicalTips": "Booking requirements, what to bring, insider tips",
      "transportToNext": "Detailed transport instructions to the next activity"
    }
  ],
  "mealPlanning": {
    "breakfast": "Specific venue recommendation if early start",
    "lunch": "Specific restaurant with confirmed child-friendly options",
    "snacks": "Strategic snack planning with specific shop recommendations",
    "dietary": "Detailed dietary accommodation notes"
  },
  "emergencyInfo": {
    "nearestHospital": "Specific hospital name and address closest to the main activity area",
    "pharmacies": "Named pharmacy locations with opening hours",
    "toilets": "Specific public toilet locations along the route"
  }
}

Make this THE definitive family day out plan that anticipates every possible need and challenge. Be specific, practical, and thoroughly researched based on current London information.
`)

	return b.String()
}
