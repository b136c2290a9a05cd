package entity

// FavoriteKind represents the type of entity a favorite points at.
type FavoriteKind string

const (
	// FavoritePlant marks a favorite pointing at a Plant.
	FavoritePlant FavoriteKind = "PLANT"
	// FavoriteRoom marks a favorite pointing at a Room.
	FavoriteRoom FavoriteKind = "ROOM"
	// FavoriteUser marks a favorite pointing at a User.
	FavoriteUser FavoriteKind = "USER"
)

// String returns the string representation of the FavoriteKind.
func (k FavoriteKind) String() string {
	return string(k)
}

// IsValid checks if the FavoriteKind is a valid value.
func (k FavoriteKind) IsValid() bool {
	switch k {
	case FavoritePlant, FavoriteRoom, FavoriteUser:
		return true
	default:
		return false
	}
}

// Favorite is a user's bookmark of a plant, room or user. The
// (UserID, TargetID, TargetKind) tuple is unique; rows are created and
// deleted by the favoriting user only, never mutated.
type Favorite struct {
	ID         int64        // Identity column.
	UserID     int64        // The user that owns the bookmark.
	TargetID   int64        // The id of the bookmarked entity.
	TargetKind FavoriteKind // Which entity store TargetID refers to.
}
