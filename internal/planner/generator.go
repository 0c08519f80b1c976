package planner

import "fmt"

const (
	errorTitle  = "Error generating rundown"
	budgetNotAv = "N/A"
)

// GenerateRequest is the full input of one generation run.
type GenerateRequest struct {
	Preferences Preferences
	Preselected []RawDestination
	Catalog     []RawDestination
	Tuning      *Tuning
}

// TripDetails summarises what the itinerary covers.
type TripDetails struct {
	DestinationCount int         `json:"destinationCount"`
	Categories       []string    `json:"categories"`
	AreasVisited     []Area      `json:"areasVisited"`
	AreaChanges      int         `json:"areaChanges"`
	Preferences      Preferences `json:"preferences"`
}

// Rundown is the generated plan. A non-empty Error marks a soft failure:
// the itinerary is then empty and the budget is "N/A".
type Rundown struct {
	Title            string          `json:"title"`
	Itinerary        []ItineraryItem `json:"itinerary"`
	BudgetEstimation string          `json:"budgetEstimation"`
	TripDetails      TripDetails     `json:"tripDetails"`
	Error            string          `json:"error,omitempty"`
}

// Failed reports whether generation fell back to the error rundown.
func (r Rundown) Failed() bool {
	return r.Error != ""
}

// Generate runs the whole pipeline: normalisation, candidate selection,
// routing, scheduling, budgeting and rendering. It never panics and never
// returns an error; failures come back in Rundown.Error.
func Generate(req GenerateRequest) (rundown Rundown) {
	prefs := req.Preferences.WithDefaults()
	defer func() {
		if r := recover(); r != nil {
			rundown = errorRundown(prefs, fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	tuning := DefaultTuning()
	if req.Tuning != nil {
		tuning = *req.Tuning
	}
	if err := tuning.Validate(); err != nil {
		return errorRundown(prefs, fmt.Errorf("invalid tuning: %w", err))
	}
	if err := prefs.Validate(); err != nil {
		return errorRundown(prefs, err)
	}

	preselected := NormalizePreselected(req.Preselected)
	catalog := NormalizeCatalog(req.Catalog)
	pool := SelectCandidates(preselected, catalog, prefs, tuning)

	startHint := AreaCentral
	if len(preselected) > 0 && preselected[0].Area.Known() {
		startHint = preselected[0].Area
	}

	items, err := Schedule(pool, prefs, startHint, tuning)
	if err != nil {
		return errorRundown(prefs, err)
	}

	used := usedDestinations(pool, items)
	areaChanges := CountAreaChanges(items)
	budget := EstimateBudget(BudgetInput{
		Used:           used,
		Transport:      prefs.TransportMethod,
		AreaChanges:    areaChanges,
		Trips:          TripCount(items, areaChanges),
		Meals:          CountMeals(items),
		MealPreference: prefs.MealPreference,
	}, tuning)

	Render(items, prefs.TransportMethod)

	start, _ := ParseClock(prefs.StartTime)
	return Rundown{
		Title:            TripTitle(prefs.Duration, start, EndMinute(start, prefs.Duration, tuning)),
		Itinerary:        items,
		BudgetEstimation: budget.String(),
		TripDetails: TripDetails{
			DestinationCount: max(len(used), 1),
			Categories:       usedCategories(used),
			AreasVisited:     areasVisited(items),
			AreaChanges:      areaChanges,
			Preferences:      prefs,
		},
	}
}

func errorRundown(prefs Preferences, err error) Rundown {
	return Rundown{
		Title:            errorTitle,
		Itinerary:        []ItineraryItem{},
		BudgetEstimation: budgetNotAv,
		TripDetails: TripDetails{
			Categories:   []string{},
			AreasVisited: []Area{},
			Preferences:  prefs,
		},
		Error: err.Error(),
	}
}

// usedDestinations returns pool members that made it into the itinerary,
// in pool order.
func usedDestinations(pool []Destination, items []ItineraryItem) []Destination {
	scheduled := make(map[string]bool, len(items))
	for _, item := range items {
		if item.DestinationID != "" {
			scheduled[item.DestinationID] = true
		}
	}
	var used []Destination
	for _, d := range pool {
		if scheduled[d.ID] {
			used = append(used, d)
		}
	}
	return used
}

func usedCategories(used []Destination) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, d := range used {
		if !seen[d.CategoryName] {
			seen[d.CategoryName] = true
			out = append(out, d.CategoryName)
		}
	}
	return out
}

func areasVisited(items []ItineraryItem) []Area {
	seen := make(map[Area]bool)
	out := []Area{}
	for _, item := range items {
		if item.Area.Known() && !seen[item.Area] {
			seen[item.Area] = true
			out = append(out, item.Area)
		}
	}
	return out
}
