package model

// FavoriteModel mirrors the 'favorites' table. One row per (user,
// target) pair; the composite unique index makes double-favoriting a
// constraint violation instead of a read-then-write race.
type FavoriteModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"not null;uniqueIndex:idx_favorites_user_target"`
	TargetID   int64  `gorm:"not null;uniqueIndex:idx_favorites_user_target"`
	TargetKind string `gorm:"type:varchar(16);not null;uniqueIndex:idx_favorites_user_target"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
