package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventDetails_AllKinds(t *testing.T) {
	tests := []struct {
		kind EventKind
		raw  string
		want EventDetails
	}{
		{
			kind: EventWatering,
			raw:  `{"ph":6.2,"ec":1.4,"waterTemp":21.5}`,
			want: &WateringDetails{PH: 6.2, EC: 1.4, WaterTemp: 21.5},
		},
		{
			kind: EventPruning,
			raw:  `{"pruningType":"TOPPING"}`,
			want: &PruningDetails{PruningType: PruningTopping},
		},
		{
			kind: EventDefoliation,
			raw:  `{"degree":"MODERATE"}`,
			want: &DefoliationDetails{Degree: DefoliationModerate},
		},
		{
			kind: EventNutrient,
			raw:  `{"nutrientId":12}`,
			want: &NutrientDetails{NutrientID: 12},
		},
		{
			kind: EventStageChange,
			raw:  `{"newStage":"FLOWERING"}`,
			want: &StageChangeDetails{NewStage: StageFlowering},
		},
		{
			kind: EventMeasurement,
			raw:  `{"lightHours":"18/6","humidity":55,"ambientTemp":24.5,"plantHeight":80,"lightDistance":40}`,
			want: &MeasurementDetails{LightHours: "18/6", Humidity: 55, AmbientTemp: 24.5, PlantHeight: 80, LightDistance: 40},
		},
		{
			kind: EventNote,
			raw:  `{"text":"first pistils","mediaUrls":["file:///media/a.jpg"]}`,
			want: &NoteDetails{Text: "first pistils", MediaURLs: []string{"file:///media/a.jpg"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			details, err := DecodeEventDetails(tt.kind, []byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, details)
			assert.Equal(t, tt.kind, details.Kind())
		})
	}
}

func TestDecodeEventDetails_UnknownKind(t *testing.T) {
	_, err := DecodeEventDetails(EventKind("REPOTTING"), []byte(`{}`))
	require.ErrorIs(t, err, ErrUnknownEventKind)
}

func TestDecodeEventDetails_MismatchedPayload(t *testing.T) {
	// A defoliation payload carries no "ph" field; the decoder must
	// reject it instead of dropping the field.
	_, err := DecodeEventDetails(EventDefoliation, []byte(`{"ph":6.2}`))
	require.Error(t, err)
}

func TestDecodeEventDetails_EmptyPayload(t *testing.T) {
	details, err := DecodeEventDetails(EventWatering, nil)
	require.NoError(t, err)
	assert.Equal(t, &WateringDetails{}, details)
}

func TestEncodeEventDetails_RoundTrip(t *testing.T) {
	kind, raw, err := EncodeEventDetails(&StageChangeDetails{NewStage: StageHarvested})
	require.NoError(t, err)
	assert.Equal(t, EventStageChange, kind)
	assert.JSONEq(t, `{"newStage":"HARVESTED"}`, string(raw))

	decoded, err := DecodeEventDetails(kind, raw)
	require.NoError(t, err)
	assert.Equal(t, &StageChangeDetails{NewStage: StageHarvested}, decoded)
}

func TestEncodeEventDetails_NilDetails(t *testing.T) {
	_, _, err := EncodeEventDetails(nil)
	require.ErrorIs(t, err, ErrUnknownEventKind)
}

func TestEventKind_IsValid(t *testing.T) {
	assert.True(t, EventWatering.IsValid())
	assert.True(t, EventNote.IsValid())
	assert.False(t, EventKind("REPOTTING").IsValid())
	assert.False(t, EventKind("").IsValid())
}

func TestEvent_Kind(t *testing.T) {
	e := &Event{Details: &NoteDetails{Text: "topped today"}}
	assert.Equal(t, EventNote, e.Kind())

	var empty Event
	assert.Equal(t, EventKind(""), empty.Kind())
}
