package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"flora/internal/errors"
)

// EventKind is the discriminator tag selecting which of the seven
// mutually exclusive event shapes a record holds. The tag is fixed at
// creation time.
type EventKind string

const (
	EventWatering    EventKind = "WATERING"
	EventPruning     EventKind = "PRUNING"
	EventDefoliation EventKind = "DEFOLIATION"
	EventNutrient    EventKind = "NUTRIENT"
	EventStageChange EventKind = "STAGE_CHANGE"
	EventMeasurement EventKind = "MEASUREMENT"
	EventNote        EventKind = "NOTE"
)

// ErrUnknownEventKind is returned when a discriminator tag does not
// match any registered variant. There is no fallback variant.
var ErrUnknownEventKind = errors.New("unknown event kind")

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// IsValid checks if the EventKind is a registered variant tag.
func (k EventKind) IsValid() bool {
	_, ok := detailsRegistry[k]
	return ok
}

// PruningType enumerates the supported pruning techniques.
type PruningType string

const (
	PruningTopping  PruningType = "TOPPING"
	PruningFIM      PruningType = "FIM"
	PruningLollipop PruningType = "LOLLIPOP"
	PruningCleanup  PruningType = "CLEANUP"
)

// IsValid checks if the PruningType is a valid value.
func (p PruningType) IsValid() bool {
	switch p {
	case PruningTopping, PruningFIM, PruningLollipop, PruningCleanup:
		return true
	default:
		return false
	}
}

// DefoliationDegree enumerates how aggressively leaves were removed.
type DefoliationDegree string

const (
	DefoliationLight    DefoliationDegree = "LIGHT"
	DefoliationModerate DefoliationDegree = "MODERATE"
	DefoliationHeavy    DefoliationDegree = "HEAVY"
)

// IsValid checks if the DefoliationDegree is a valid value.
func (d DefoliationDegree) IsValid() bool {
	switch d {
	case DefoliationLight, DefoliationModerate, DefoliationHeavy:
		return true
	default:
		return false
	}
}

// EventDetails is the sealed set of variant payloads. Exactly one
// implementation is populated per event, and its Kind always agrees
// with the event's discriminator tag.
type EventDetails interface {
	Kind() EventKind
}

// WateringDetails records the water parameters of a watering session.
type WateringDetails struct {
	PH        float64 `json:"ph"`
	EC        float64 `json:"ec"`
	WaterTemp float64 `json:"waterTemp"`
}

// Kind returns the variant tag for watering events.
func (WateringDetails) Kind() EventKind { return EventWatering }

// PruningDetails records the technique used in a pruning session.
type PruningDetails struct {
	PruningType PruningType `json:"pruningType"`
}

// Kind returns the variant tag for pruning events.
func (PruningDetails) Kind() EventKind { return EventPruning }

// DefoliationDetails records how heavily the plants were defoliated.
type DefoliationDetails struct {
	Degree DefoliationDegree `json:"degree"`
}

// Kind returns the variant tag for defoliation events.
func (DefoliationDetails) Kind() EventKind { return EventDefoliation }

// NutrientDetails references the nutrient product that was applied.
type NutrientDetails struct {
	NutrientID int64 `json:"nutrientId"`
}

// Kind returns the variant tag for nutrient events.
func (NutrientDetails) Kind() EventKind { return EventNutrient }

// StageChangeDetails records the stage every associated plant moved
// to. Applying this event also overwrites each plant's current stage,
// atomically with the event row.
type StageChangeDetails struct {
	NewStage Stage `json:"newStage"`
}

// Kind returns the variant tag for stage-change events.
func (StageChangeDetails) Kind() EventKind { return EventStageChange }

// MeasurementDetails records an environment and growth snapshot.
type MeasurementDetails struct {
	LightHours    string  `json:"lightHours"`
	Humidity      float64 `json:"humidity"`
	AmbientTemp   float64 `json:"ambientTemp"`
	PlantHeight   int     `json:"plantHeight"`
	LightDistance int     `json:"lightDistance"`
}

// Kind returns the variant tag for measurement events.
func (MeasurementDetails) Kind() EventKind { return EventMeasurement }

// NoteDetails is a free-text note with optional media attachments.
// Media URLs come from the file storage collaborator at creation time.
type NoteDetails struct {
	Text      string   `json:"text"`
	MediaURLs []string `json:"mediaUrls"`
}

// Kind returns the variant tag for note events.
func (NoteDetails) Kind() EventKind { return EventNote }

// detailsRegistry is the fixed dispatch table mapping each variant tag
// to a constructor for its payload type. Decoding and persistence both
// go through this single table; there are no subclass checks anywhere
// else.
var detailsRegistry = map[EventKind]func() EventDetails{
	EventWatering:    func() EventDetails { return &WateringDetails{} },
	EventPruning:     func() EventDetails { return &PruningDetails{} },
	EventDefoliation: func() EventDetails { return &DefoliationDetails{} },
	EventNutrient:    func() EventDetails { return &NutrientDetails{} },
	EventStageChange: func() EventDetails { return &StageChangeDetails{} },
	EventMeasurement: func() EventDetails { return &MeasurementDetails{} },
	EventNote:        func() EventDetails { return &NoteDetails{} },
}

// DecodeEventDetails materializes the typed payload for a variant tag
// from its generic JSON form. Unknown tags fail with
// ErrUnknownEventKind; a payload whose fields do not match the tag's
// shape fails rather than silently dropping fields.
func DecodeEventDetails(kind EventKind, raw []byte) (EventDetails, error) {
	newDetails, ok := detailsRegistry[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEventKind, "kind %q", kind)
	}

	details := newDetails()
	if len(raw) > 0 {
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(details); err != nil {
			return nil, errors.Wrapf(err, "decode %s details", kind)
		}
	}

	return details, nil
}

// EncodeEventDetails serializes a typed payload back to its tag and
// generic JSON form.
func EncodeEventDetails(details EventDetails) (EventKind, json.RawMessage, error) {
	if details == nil {
		return "", nil, errors.WithStack(ErrUnknownEventKind)
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return "", nil, errors.Wrapf(err, "encode %s details", details.Kind())
	}

	return details.Kind(), raw, nil
}

// Event is a cultivation event associated with one or more plants.
// Exactly one Details variant is populated, selected by its Kind.
type Event struct {
	ID       int64        // Identity column.
	Date     time.Time    // The day the event happened.
	PlantIDs []int64      // Associated plants, order-irrelevant.
	Details  EventDetails // The single populated variant payload.
}

// Kind returns the discriminator tag of the populated variant.
func (e *Event) Kind() EventKind {
	if e.Details == nil {
		return ""
	}

	return e.Details.Kind()
}
