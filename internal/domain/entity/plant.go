package entity

import "time"

// Stage represents the growth stage a plant is currently in. A
// STAGE_CHANGE event overwrites this value on every associated plant.
type Stage string

const (
	StageGermination Stage = "GERMINATION"
	StageSeedling    Stage = "SEEDLING"
	StageVegetation  Stage = "VEGETATION"
	StageFlowering   Stage = "FLOWERING"
	StageHarvested   Stage = "HARVESTED"
)

// String returns the string representation of the Stage.
func (s Stage) String() string {
	return string(s)
}

// IsValid checks if the Stage is a valid value.
func (s Stage) IsValid() bool {
	switch s {
	case StageGermination, StageSeedling, StageVegetation, StageFlowering, StageHarvested:
		return true
	default:
		return false
	}
}

// Plant is an individual plant under cultivation. It always references
// one room and one strain, and carries the owner id its access checks
// are evaluated against.
type Plant struct {
	ID         int64      // Identity column.
	Name       string     // Display name of the plant.
	Stage      Stage      // Current growth stage.
	RoomID     int64      // The room the plant lives in; required.
	StrainID   int64      // The strain the plant was grown from; required.
	OwnerID    int64      // The user that created the plant; never reassigned.
	CreatedAt  time.Time  // Date the plant record was created.
	Production int        // Harvest yield in grams, zero until harvested.
	FinishedAt *time.Time // Date the grow ended, nil while active.
	Location   string     // Free-text position inside the room.
	Public     bool       // Whether the plant is visible to other users.
}
