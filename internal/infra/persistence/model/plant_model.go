package model

import "time"

// PlantModel mirrors the 'plants' table.
type PlantModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(100);not null"`
	Stage      string `gorm:"type:varchar(32);not null"`
	RoomID     int64  `gorm:"index"`
	StrainID   int64  `gorm:"index"`
	OwnerID    int64  `gorm:"not null;index"`
	CreatedAt  time.Time
	Production int
	FinishedAt *time.Time
	Location   string `gorm:"type:varchar(255)"`
	Public     bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
