package response_models

type SavedRundownItemResponse struct {
	Order         int    `json:"order"`
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Duration      string `json:"duration"`
	Notes         string `json:"notes"`
	Price         string `json:"price"`
	Location      string `json:"location"`
	Area          string `json:"area,omitempty"`
	Kind          string `json:"kind,omitempty"`
	Category      string `json:"category,omitempty"`
	DestinationID string `json:"destinationId,omitempty"`
}

type SavedRundownResponse struct {
	ID                string                     `json:"id"`
	UserID            string                     `json:"userId"`
	Title             string                     `json:"title"`
	Description       string                     `json:"description"`
	BudgetEstimation  string                     `json:"budgetEstimation"`
	TotalDestinations int                        `json:"totalDestinations"`
	Tags              []string                   `json:"tags"`
	TripType          string                     `json:"tripType"`
	EstimatedDuration string                     `json:"estimatedDuration"`
	GeneratedFrom     string                     `json:"generatedFrom"`
	CreatedAt         string                     `json:"createdAt"`
	UpdatedAt         string                     `json:"updatedAt"`
	Items             []SavedRundownItemResponse `json:"itinerary,omitempty"`
}

type SavedRundownPage struct {
	Items    []SavedRundownResponse `json:"items"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
	Total    int64                  `json:"total"`
}

type SaveRundownResponse struct {
	ID string `json:"id"`
}
