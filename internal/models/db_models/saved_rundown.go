package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SavedRundown struct {
	BaseModel
	UserID            string `gorm:"index;not null"`
	Title             string `gorm:"not null"`
	Description       string
	BudgetEstimation  string
	TotalDestinations int
	Tags              pq.StringArray `gorm:"type:text[]"`
	TripType          string
	EstimatedDuration string
	GeneratedFrom     string
	Items             []SavedRundownItem `gorm:"foreignKey:RundownID;constraint:OnDelete:CASCADE"`
}

type SavedRundownItem struct {
	BaseModel
	RundownID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Order         int       `gorm:"column:item_order"`
	Time          string
	Activity      string
	Duration      string
	Notes         string
	Price         string
	Location      string
	Area          string
	Kind          string
	Category      string
	DestinationID string
}
