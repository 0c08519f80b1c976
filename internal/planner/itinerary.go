package planner

import "sort"

// SlotKind says what an itinerary entry is, independent of its display text.
type SlotKind string

const (
	SlotBreakfast SlotKind = "breakfast"
	SlotLunch     SlotKind = "lunch"
	SlotDinner    SlotKind = "dinner"
	SlotSnack     SlotKind = "snack"
	SlotActivity  SlotKind = "activity"
	SlotFreeTime  SlotKind = "free-time"
)

// Phase is the part of the day a slot was scheduled in; it drives the notes.
type Phase string

const (
	PhaseBreakfast      Phase = "breakfast"
	PhaseMorning        Phase = "morning"
	PhaseMorningSnack   Phase = "morning-snack"
	PhaseLunch          Phase = "lunch"
	PhaseAfternoon      Phase = "afternoon"
	PhaseAfternoonSnack Phase = "afternoon-snack"
	PhaseEvening        Phase = "evening"
	PhaseDinner         Phase = "dinner"
	PhaseNight          Phase = "night"
	PhaseDefault        Phase = "default"
)

// ItineraryItem is one scheduled entry. The display fields (Time, Activity,
// Duration, Notes) are rendered from the structured ones after scheduling.
type ItineraryItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration string `json:"duration"`
	Notes    string `json:"notes"`
	Price    string `json:"price"`
	Location string `json:"location"`
	Area     Area   `json:"area"`

	Kind            SlotKind `json:"kind"`
	Phase           Phase    `json:"phase"`
	DestinationID   string   `json:"destinationId,omitempty"`
	Label           string   `json:"label,omitempty"`
	Category        Category `json:"category,omitempty"`
	CategoryName    string   `json:"categoryName,omitempty"`
	StartMinute     int      `json:"startMinute"`
	DurationMinutes int      `json:"durationMinutes"`
	TransitMinutes  int      `json:"transitMinutes,omitempty"`
	MoveTo          Area     `json:"moveTo,omitempty"`
	Continued       bool     `json:"-"`
}

// IsMeal reports whether the slot is a meal or snack.
func (i ItineraryItem) IsMeal() bool {
	switch i.Kind {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// IsPlaceholder reports whether the slot has no concrete destination behind it.
func (i ItineraryItem) IsPlaceholder() bool {
	return i.DestinationID == ""
}

// annotateMoves marks every item whose successor sits in a different area.
func annotateMoves(items []ItineraryItem) {
	for i := 0; i+1 < len(items); i++ {
		if items[i].Area != items[i+1].Area {
			items[i].MoveTo = items[i+1].Area
		}
	}
}

func sortByStart(items []ItineraryItem) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].StartMinute < items[b].StartMinute
	})
}
