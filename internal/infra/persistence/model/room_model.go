package model

// RoomModel mirrors the 'rooms' table.
type RoomModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	LightHours  string `gorm:"type:varchar(32)"`
	Humidity    float64
	AmbientTemp float64
	OwnerID     int64 `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}
