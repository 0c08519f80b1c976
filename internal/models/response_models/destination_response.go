package response_models

type DestinationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Price         string `json:"price"`
	Location      string `json:"location"`
	IndoorOutdoor string `json:"indoorOutdoor,omitempty"`
	Description   string `json:"description,omitempty"`
}
