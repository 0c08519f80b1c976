package request_models

import "jaktrip/internal/planner"

type PreferencesRequest struct {
	Environment     string   `json:"environment" validate:"omitempty,oneof=indoor outdoor both"`
	Duration        string   `json:"duration" validate:"omitempty,oneof=half-day full-day weekend"`
	Category        []string `json:"category"`
	MealPreference  string   `json:"mealPreference" validate:"omitempty,oneof=local international both"`
	TransportMethod string   `json:"transportMethod" validate:"omitempty,oneof=private public ride-sharing"`
	StartTime       string   `json:"startTime" validate:"omitempty,clock"`
	TravelStyle     string   `json:"travelStyle" validate:"omitempty,oneof=relaxed balanced intensive"`
	Priority        string   `json:"priority" validate:"omitempty,oneof=experience photo culinary relax activities"`
	Budget          string   `json:"budget" validate:"omitempty,oneof=low medium high"`
}

func (p PreferencesRequest) ToPlanner() planner.Preferences {
	return planner.Preferences{
		Environment:     planner.Environment(p.Environment),
		Duration:        planner.Duration(p.Duration),
		Category:        p.Category,
		MealPreference:  planner.MealPreference(p.MealPreference),
		TransportMethod: planner.TransportMethod(p.TransportMethod),
		StartTime:       p.StartTime,
		TravelStyle:     planner.TravelStyle(p.TravelStyle),
		Priority:        planner.Priority(p.Priority),
		Budget:          planner.BudgetTier(p.Budget),
	}
}

// GenerateRundownRequest carries the questionnaire answers and the user's
// trip list. Preselected items may be partial; missing fields are filled
// from the catalog by id.
type GenerateRundownRequest struct {
	Preferences PreferencesRequest       `json:"preferences"`
	Preselected []planner.RawDestination `json:"preselected"`
}

type SaveRundownRequest struct {
	UserID  string          `json:"user_id" validate:"required"`
	Title   string          `json:"title" validate:"max=200"`
	Rundown planner.Rundown `json:"rundown"`
}

// UpdateRundownRequest patches metadata only; nil fields stay untouched.
type UpdateRundownRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

func (u UpdateRundownRequest) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Tags == nil
}
