package db_models

import "jaktrip/internal/planner"

// Destination is one row of the tourist catalog.
type Destination struct {
	BaseModel
	Name          string `gorm:"not null"`
	Category      string `gorm:"index"`
	Price         string
	Location      string
	IndoorOutdoor string
	Description   string
}

func (d Destination) ToRaw() planner.RawDestination {
	return planner.RawDestination{
		ID:            d.ID.String(),
		Name:          d.Name,
		Category:      d.Category,
		Price:         planner.FlexString(d.Price),
		Location:      d.Location,
		IndoorOutdoor: d.IndoorOutdoor,
		Description:   d.Description,
	}
}
