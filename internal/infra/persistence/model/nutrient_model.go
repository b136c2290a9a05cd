package model

// NutrientModel mirrors the 'nutrients' table.
type NutrientModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	OwnerID     int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (NutrientModel) TableName() string {
	return "nutrients"
}
