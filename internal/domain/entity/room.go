package entity

// Room is a growing space owned by a single user. Plants reference
// exactly one room.
type Room struct {
	ID          int64   // Identity column.
	Name        string  // Display name of the room.
	Description string  // Free-text description.
	LightHours  string  // Configured light schedule, e.g. "18/6".
	Humidity    float64 // Ambient relative humidity in percent.
	AmbientTemp float64 // Ambient temperature in degrees Celsius.
	OwnerID     int64   // The user that created the room; never reassigned.
}

// Strain describes the genetics a plant was grown from. Owned by a
// single user like every other cultivation resource.
type Strain struct {
	ID             int64  // Identity column.
	Name           string // Display name of the strain.
	ParentGenetics string // Lineage description.
	Dominance      string // Indica/sativa dominance.
	AromaFlavor    string // Aroma and flavor notes.
	THC            string // Reported THC content.
	CBD            string // Reported CBD content.
	Detail         string // Free-text detail.
	OwnerID        int64  // The user that created the strain; never reassigned.
}

// Nutrient is a fertilizer or additive product a user keeps on record.
// NUTRIENT events reference exactly one of these.
type Nutrient struct {
	ID          int64  // Identity column.
	Title       string // Product title.
	Description string // Free-text description.
	OwnerID     int64  // The user that created the record; never reassigned.
}
