package models

import "time"

// Trip session lifecycle states. A session stays "generating" while the
// itinerary request is in flight so duplicate submissions can be rejected.
const (
	SessionStatusGenerating = "generating"
	SessionStatusReady      = "ready"
)

// Child captures one child's details from the planning form.
type Child struct {
	Age         int    `json:"age"`
	Preferences string `json:"preferences,omitempty"`
}

// Window is the half-open [Start, End) range of half-hour slots the family
// wants activities scheduled within. Slot 0 is midnight; slot 18 is 9:00 AM.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Slots returns the window length in half-hour slots.
func (w Window) Slots() int {
	return w.End - w.Start
}

// PlanRequest is the form payload submitted from the planner front-end.
type PlanRequest struct {
	Date      string   `json:"date"`      // "YYYY-MM-DD"
	TimeRange [2]int   `json:"timeRange"` // [startSlot, endSlot], half-hour indices
	Children  []Child  `json:"children"`
	Interests []string `json:"interests"`
	Budget    string   `json:"budget"` // "£", "££", "£££" or "££££"
}

// Window returns the requested scheduling window.
func (r PlanRequest) Window() Window {
	return Window{Start: r.TimeRange[0], End: r.TimeRange[1]}
}

// ActivityLocation holds venue details returned by the generation service.
type ActivityLocation struct {
	Address       string `json:"address,omitempty"`
	NearestTube   string `json:"nearestTube,omitempty"`
	Accessibility string `json:"accessibility,omitempty"`
}

// Activity is one scheduled stop on the itinerary. ID is a stable identity
// independent of the activity's position; completion flags and notes are keyed
// by it so they follow the activity through reorders.
type Activity struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Time          string            `json:"time"` // display range, e.g. "9:00 AM - 11:00 AM"
	StartSlot     int               `json:"startSlot"`
	Duration      string            `json:"duration"` // canonical text, e.g. "1 hour 30 mins"
	DurationSlots int               `json:"durationSlots"`
	BudgetLevel   string            `json:"budgetLevel,omitempty"`
	ImageURL      string            `json:"imageUrl,omitempty"`
	Location      *ActivityLocation `json:"location,omitempty"`
	CrowdLevel    string            `json:"crowdLevel,omitempty"`
	CostEstimate  string            `json:"costEstimate,omitempty"`
	Engagement    string            `json:"childEngagement,omitempty"`
	PracticalTips string            `json:"practicalTips,omitempty"`
	TransportNext string            `json:"transportToNext,omitempty"`
}

// EndSlot returns the slot just past the activity's interval.
func (a Activity) EndSlot() int {
	return a.StartSlot + a.DurationSlots
}

// Logistics is the day-level transport summary from the generation service.
type Logistics struct {
	TotalWalkingTime string `json:"totalWalkingTime,omitempty"`
	TransportMethod  string `json:"transportMethod,omitempty"`
	WeatherBackup    string `json:"weatherBackup,omitempty"`
}

// MealPlanning holds the generation service's meal recommendations.
type MealPlanning struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Snacks    string `json:"snacks,omitempty"`
	Dietary   string `json:"dietary,omitempty"`
}

// EmergencyInfo holds the generation service's emergency pointers.
type EmergencyInfo struct {
	NearestHospital string `json:"nearestHospital,omitempty"`
	Pharmacies      string `json:"pharmacies,omitempty"`
	Toilets         string `json:"toilets,omitempty"`
}

// Itinerary is the planned day. Activities are ordered by ascending start slot
// and pairwise non-overlapping. Degraded marks itineraries produced by the
// deterministic allocator after the generation path failed.
type Itinerary struct {
	Date          string         `json:"date"`
	Window        Window         `json:"window"`
	Activities    []Activity     `json:"activities"`
	TotalDuration string         `json:"totalDuration"`
	Summary       string         `json:"summary,omitempty"`
	Logistics     *Logistics     `json:"logistics,omitempty"`
	MealPlanning  *MealPlanning  `json:"mealPlanning,omitempty"`
	EmergencyInfo *EmergencyInfo `json:"emergencyInfo,omitempty"`
	Degraded      bool           `json:"degraded,omitempty"`
	Diagnostic    string         `json:"diagnostic,omitempty"`
}

// TripSession is one planning session: the submitted request, the produced
// itinerary and the per-activity side tables. All state is scoped to the
// session and discarded with it.
type TripSession struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Request   PlanRequest       `json:"request"`
	Itinerary Itinerary         `json:"itinerary"`
	Completed map[string]bool   `json:"completed"` // keyed by activity ID
	Notes     map[string]string `json:"notes"`     // keyed by activity ID
	CreatedAt time.Time         `json:"createdAt"`
}
