package model

// StrainModel mirrors the 'strains' table.
type StrainModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);not null"`
	ParentGenetics string `gorm:"type:varchar(255)"`
	Dominance      string `gorm:"type:varchar(100)"`
	AromaFlavor    string `gorm:"type:varchar(255)"`
	THC            string
	CBD            string
	Detail         string `gorm:"type:text"`
	OwnerID        int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (StrainModel) TableName() string {
	return "strains"
}
