package model

import "time"

// EventModel mirrors the 'plant_events' table. Every event kind shares
// this one table; EventType discriminates, and each kind uses its own
// subset of the nullable columns.
type EventModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EventType string    `gorm:"type:varchar(32);not null;index"`
	Date      time.Time `gorm:"not null;index"`

	// Watering
	PH        *float64
	EC        *float64
	WaterTemp *float64

	// Pruning
	PruningType *string `gorm:"type:varchar(32)"`

	// Defoliation
	DefoliationDegree *string `gorm:"type:varchar(32)"`

	// Nutrient application
	NutrientID *int64 `gorm:"index"`

	// Stage change
	NewStage *string `gorm:"type:varchar(32)"`

	// Environment measurement
	LightHours    *string `gorm:"type:varchar(32)"`
	Humidity      *float64
	AmbientTemp   *float64
	PlantHeight   *int
	LightDistance *int

	// Note
	NoteText  *string  `gorm:"type:text"`
	MediaURLs []string `gorm:"serializer:json;type:jsonb"`

	Plants []PlantModel `gorm:"many2many:plants_has_events;joinForeignKey:EventID;joinReferences:PlantID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "plant_events"
}
