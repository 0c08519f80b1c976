package planner

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	Environment     string
	Duration        string
	TravelStyle     string
	TransportMethod string
	MealPreference  string
	Priority        string
	BudgetTier      string
)

const (
	EnvironmentIndoor  Environment = "indoor"
	EnvironmentOutdoor Environment = "outdoor"
	EnvironmentBoth    Environment = "both"

	DurationHalfDay Duration = "half-day"
	DurationFullDay Duration = "full-day"
	DurationWeekend Duration = "weekend"

	StyleRelaxed   TravelStyle = "relaxed"
	StyleBalanced  TravelStyle = "balanced"
	StyleIntensive TravelStyle = "intensive"

	TransportPrivate     TransportMethod = "private"
	TransportPublic      TransportMethod = "public"
	TransportRideSharing TransportMethod = "ride-sharing"

	MealLocal         MealPreference = "local"
	MealInternational MealPreference = "international"
	MealBoth          MealPreference = "both"

	PriorityExperience Priority = "experience"
	PriorityPhoto      Priority = "photo"
	PriorityCulinary   Priority = "culinary"
	PriorityRelax      Priority = "relax"
	PriorityActivities Priority = "activities"

	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

const DefaultStartTime = "09:00"

// Preferences are the user's answers for one generation request.
// Every field has a default; see WithDefaults.
type Preferences struct {
	Environment     Environment     `json:"environment"`
	Duration        Duration        `json:"duration"`
	Category        []string        `json:"category"`
	MealPreference  MealPreference  `json:"mealPreference"`
	TransportMethod TransportMethod `json:"transportMethod"`
	StartTime       string          `json:"startTime"`
	TravelStyle     TravelStyle     `json:"travelStyle"`
	Priority        Priority        `json:"priority"`
	Budget          BudgetTier      `json:"budget,omitempty"`
}

// WithDefaults returns a copy with every empty field filled in.
func (p Preferences) WithDefaults() Preferences {
	if p.Environment == "" {
		p.Environment = EnvironmentBoth
	}
	if p.Duration == "" {
		p.Duration = DurationFullDay
	}
	if p.Category == nil {
		p.Category = []string{}
	}
	if p.MealPreference == "" {
		p.MealPreference = MealBoth
	}
	if p.TransportMethod == "" {
		p.TransportMethod = TransportPrivate
	}
	if strings.TrimSpace(p.StartTime) == "" {
		p.StartTime = DefaultStartTime
	}
	if p.TravelStyle == "" {
		p.TravelStyle = StyleBalanced
	}
	if p.Priority == "" {
		p.Priority = PriorityExperience
	}
	return p
}

// Validate checks enum membership and the start time format.
// It expects defaults to have been applied.
func (p Preferences) Validate() error {
	switch p.Environment {
	case EnvironmentIndoor, EnvironmentOutdoor, EnvironmentBoth:
	default:
		return fmt.Errorf("unknown environment %q", p.Environment)
	}
	switch p.Duration {
	case DurationHalfDay, DurationFullDay, DurationWeekend:
	default:
		return fmt.Errorf("unknown duration %q", p.Duration)
	}
	switch p.MealPreference {
	case MealLocal, MealInternational, MealBoth:
	default:
		return fmt.Errorf("unknown meal preference %q", p.MealPreference)
	}
	switch p.TransportMethod {
	case TransportPrivate, TransportPublic, TransportRideSharing:
	default:
		return fmt.Errorf("unknown transport method %q", p.TransportMethod)
	}
	switch p.TravelStyle {
	case StyleRelaxed, StyleBalanced, StyleIntensive:
	default:
		return fmt.Errorf("unknown travel style %q", p.TravelStyle)
	}
	switch p.Priority {
	case PriorityExperience, PriorityPhoto, PriorityCulinary, PriorityRelax, PriorityActivities:
	default:
		return fmt.Errorf("unknown priority %q", p.Priority)
	}
	switch p.Budget {
	case "", BudgetLow, BudgetMedium, BudgetHigh:
	default:
		return fmt.Errorf("unknown budget tier %q", p.Budget)
	}
	if _, err := ParseClock(p.StartTime); err != nil {
		return err
	}
	return nil
}

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

func parseEnvironment(raw string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(raw))) {
	case EnvironmentIndoor:
		return EnvironmentIndoor
	case EnvironmentOutdoor:
		return EnvironmentOutdoor
	default:
		return EnvironmentBoth
	}
}
