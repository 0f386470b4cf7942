package planner

// CandidateTemplate maps one interest tag to a fixed activity definition. Slack
// is the minimum window room required beyond the activity's own duration before
// the template is considered placeable; longer outings reserve a slot of
// transfer room.
type CandidateTemplate struct {
	Interest      string
	Title         string
	Description   string
	DurationSlots int
	Slack         int
}

// Catalogue is the fixed, priority-ordered set of candidate activities.
// Placement order is strictly this declaration order, independent of the order
// the user clicked interests in.
var Catalogue = []CandidateTemplate{
	{
		Interest:      "Museums",
		Title:         "Natural History Museum",
		Description:   "Explore dinosaurs and interactive exhibits",
		DurationSlots: 4,
	},
	{
		Interest:      "Markets",
		Title:         "Borough Market Food Adventure",
		Description:   "Sample delicious treats and explore the historic food market",
		DurationSlots: 3,
	},
	{
		Interest:      "Hidden Gems",
		Title:         "Neal's Yard Secret Garden",
		Description:   "Discover this colourful hidden courtyard in Covent Garden",
		DurationSlots: 2,
	},
	{
		Interest:      "Animals & Zoos",
		Title:         "London Zoo Experience",
		Description:   "Meet amazing animals and enjoy interactive exhibits",
		DurationSlots: 6,
		Slack:         1,
	},
	{
		Interest:      "Historical Sites",
		Title:         "Tower of London Family Tour",
		Description:   "Explore the historic fortress and see the Crown Jewels",
		DurationSlots: 5,
		Slack:         1,
	},
	{
		Interest:      "Parks",
		Title:         "Hyde Park Adventure",
		Description:   "Playground time and picnic lunch",
		DurationSlots: 3,
	},
	{
		Interest:      "Art Galleries",
		Title:         "Tate Modern Family Workshop",
		Description:   "Interactive art activities and child-friendly exhibitions",
		DurationSlots: 3,
	},
	{
		Interest:      "Adventure Activities",
		Title:         "Thames Clipper Boat Adventure",
		Description:   "Exciting boat ride along the Thames with stunning city views",
		DurationSlots: 2,
	},
	{
		Interest:      "Great Food",
		Title:         "Family-Friendly Café",
		Description:   "Delicious treats and child-friendly menu",
		DurationSlots: 2,
	},
	{
		Interest:      "Theatre & Shows",
		Title:         "West End Family Show",
		Description:   "Age-appropriate musical or puppet show in the theatre district",
		DurationSlots: 4,
		Slack:         1,
	},
}

// FallbackTemplate is the always-available default activity, appended when no
// interest-specific template fits or too few did.
var FallbackTemplate = CandidateTemplate{
	Interest:      "",
	Title:         "London Eye",
	Description:   "Family fun with amazing city views",
	DurationSlots: 2,
}

// MinActivityCount is the itinerary size below which the fallback activity is
// appended when room remains.
const MinActivityCount = 3
