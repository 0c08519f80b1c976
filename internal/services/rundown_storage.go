package services

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"jaktrip/internal/models/db_models"
	"jaktrip/internal/models/response_models"
	"jaktrip/internal/planner"
	"jaktrip/pkg/utils"
)

const (
	defaultRundownTitle       = "My Jakarta Trip"
	defaultRundownDescription = "Generated rundown for Jakarta trip"
	defaultBudgetEstimation   = "Not calculated yet"
	defaultTripType           = "general"
	defaultEstimatedDuration  = "1 day"
	generatedFromAuto         = "auto-generator"
)

var defaultRundownTags = []string{"jakarta", "tour"}

// ValidateRundown rejects rundowns that cannot be stored: nil, an empty
// itinerary, or an item without an activity.
func ValidateRundown(r *planner.Rundown) error {
	if r == nil {
		return fmt.Errorf("%w: rundown data is required", utils.ErrInvalidRundown)
	}
	if len(r.Itinerary) == 0 {
		return fmt.Errorf("%w: itinerary cannot be empty", utils.ErrInvalidRundown)
	}
	var problems []string
	for i, item := range r.Itinerary {
		if strings.TrimSpace(item.Activity) == "" {
			problems = append(problems, fmt.Sprintf("activity is required for item %d", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", utils.ErrInvalidRundown, strings.Join(problems, "; "))
	}
	return nil
}

// FormatForStorage maps a generated rundown to its stored shape. A
// non-empty title overrides the generated one.
func FormatForStorage(userID string, r planner.Rundown, title string) db_models.SavedRundown {
	duration := string(r.TripDetails.Preferences.Duration)
	if duration == "" {
		duration = defaultEstimatedDuration
	}

	items := make([]db_models.SavedRundownItem, 0, len(r.Itinerary))
	for i, it := range r.Itinerary {
		items = append(items, db_models.SavedRundownItem{
			Order:         i + 1,
			Time:          it.Time,
			Activity:      it.Activity,
			Duration:      it.Duration,
			Notes:         it.Notes,
			Price:         it.Price,
			Location:      it.Location,
			Area:          string(it.Area),
			Kind:          string(it.Kind),
			Category:      it.CategoryName,
			DestinationID: it.DestinationID,
		})
	}

	return db_models.SavedRundown{
		UserID:            userID,
		Title:             firstNonBlank(title, r.Title, defaultRundownTitle),
		Description:       defaultRundownDescription,
		BudgetEstimation:  firstNonBlank(r.BudgetEstimation, defaultBudgetEstimation),
		TotalDestinations: len(r.Itinerary),
		Tags:              pq.StringArray(append([]string(nil), defaultRundownTags...)),
		TripType:          defaultTripType,
		EstimatedDuration: duration,
		GeneratedFrom:     generatedFromAuto,
		Items:             items,
	}
}

func toSavedRundownResponse(r db_models.SavedRundown) response_models.SavedRundownResponse {
	resp := response_models.SavedRundownResponse{
		ID:                r.ID.String(),
		UserID:            r.UserID,
		Title:             r.Title,
		Description:       r.Description,
		BudgetEstimation:  r.BudgetEstimation,
		TotalDestinations: r.TotalDestinations,
		Tags:              []string(r.Tags),
		TripType:          r.TripType,
		EstimatedDuration: r.EstimatedDuration,
		GeneratedFrom:     r.GeneratedFrom,
		CreatedAt:         utils.FormatRFC3339WIB(utils.FromUnixSecondsWIB(r.CreatedAt)),
		UpdatedAt:         utils.FormatRFC3339WIB(utils.FromUnixSecondsWIB(r.UpdatedAt)),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, response_models.SavedRundownItemResponse{
			Order:         it.Order,
			Time:          it.Time,
			Activity:      it.Activity,
			Duration:      it.Duration,
			Notes:         it.Notes,
			Price:         it.Price,
			Location:      it.Location,
			Area:          it.Area,
			Kind:          it.Kind,
			Category:      it.Category,
			DestinationID: it.DestinationID,
		})
	}
	return resp
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
