package postgres

import (
	"context"
	"time"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements the domain.EventRepository interface using GORM.
// All seven event kinds live in the single 'plant_events' table; the
// mappers below translate between the sparse column set and the typed
// details payload.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindByID retrieves a single event by its unique ID, including its plant IDs.
func (repo *eventRepository) FindByID(ctx context.Context, id int64) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Preload("Plants").First(&eventM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(&eventM)
}

// FindAll retrieves every event ordered by date descending.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	var models []model.EventModel
	if err := repo.db.WithContext(ctx).
		Preload("Plants").
		Order("date DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return toEventDomainSlice(models)
}

// FindByKind retrieves the events of one kind ordered by date descending.
func (repo *eventRepository) FindByKind(ctx context.Context, kind entity.EventKind) ([]*entity.Event, error) {
	var models []model.EventModel
	if err := repo.db.WithContext(ctx).
		Preload("Plants").
		Where("event_type = ?", kind.String()).
		Order("date DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events by kind")
	}

	return toEventDomainSlice(models)
}

// FindByPlantID retrieves the events attached to the given plant.
func (repo *eventRepository) FindByPlantID(ctx context.Context, plantID int64) ([]*entity.Event, error) {
	var models []model.EventModel
	if err := repo.db.WithContext(ctx).
		Preload("Plants").
		Joins("JOIN plants_has_events ON plants_has_events.event_id = plant_events.id").
		Where("plants_has_events.plant_id = ?", plantID).
		Order("date DESC, plant_events.id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events by plant")
	}

	return toEventDomainSlice(models)
}

// FindByDate retrieves the events whose date falls on the given calendar day.
func (repo *eventRepository) FindByDate(ctx context.Context, day time.Time) ([]*entity.Event, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var models []model.EventModel
	if err := repo.db.WithContext(ctx).
		Preload("Plants").
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events by date")
	}

	return toEventDomainSlice(models)
}

// FindByDateAfter retrieves the events dated strictly after the given instant.
func (repo *eventRepository) FindByDateAfter(ctx context.Context, after time.Time) ([]*entity.Event, error) {
	var models []model.EventModel
	if err := repo.db.WithContext(ctx).
		Preload("Plants").
		Where("date > ?", after).
		Order("date ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events after date")
	}

	return toEventDomainSlice(models)
}

// Create persists a new event and its plant associations.
// Omit("Plants.*") writes the join rows without touching the plant rows
// themselves.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Plants.*").Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID

	return nil
}

// Update modifies an existing event and replaces its plant associations.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", eventM.ID).
		Updates(map[string]any{
			"date":               eventM.Date,
			"ph":                 eventM.PH,
			"ec":                 eventM.EC,
			"water_temp":         eventM.WaterTemp,
			"pruning_type":       eventM.PruningType,
			"defoliation_degree": eventM.DefoliationDegree,
			"nutrient_id":        eventM.NutrientID,
			"new_stage":          eventM.NewStage,
			"light_hours":        eventM.LightHours,
			"humidity":           eventM.Humidity,
			"ambient_temp":       eventM.AmbientTemp,
			"plant_height":       eventM.PlantHeight,
			"light_distance":     eventM.LightDistance,
			"note_text":          eventM.NoteText,
			"media_urls":         eventM.MediaURLs,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{ID: eventM.ID}).
		Association("Plants").
		Replace(eventM.Plants); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace event plants")
	}

	return nil
}

// Delete removes the event with the given ID along with its join rows.
func (repo *eventRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.EventModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// toEventDomain maps the sparse persistence row to a typed event.
// Rows whose discriminator is unknown fail loudly rather than coming
// back as a half-empty event.
func toEventDomain(data *model.EventModel) (*entity.Event, error) {
	var details entity.EventDetails

	switch entity.EventKind(data.EventType) {
	case entity.EventWatering:
		details = &entity.WateringDetails{
			PH:        derefFloat(data.PH),
			EC:        derefFloat(data.EC),
			WaterTemp: derefFloat(data.WaterTemp),
		}
	case entity.EventPruning:
		details = &entity.PruningDetails{
			PruningType: entity.PruningType(derefString(data.PruningType)),
		}
	case entity.EventDefoliation:
		details = &entity.DefoliationDetails{
			Degree: entity.DefoliationDegree(derefString(data.DefoliationDegree)),
		}
	case entity.EventNutrient:
		details = &entity.NutrientDetails{
			NutrientID: derefInt64(data.NutrientID),
		}
	case entity.EventStageChange:
		details = &entity.StageChangeDetails{
			NewStage: entity.Stage(derefString(data.NewStage)),
		}
	case entity.EventMeasurement:
		details = &entity.MeasurementDetails{
			LightHours:    derefString(data.LightHours),
			Humidity:      derefFloat(data.Humidity),
			AmbientTemp:   derefFloat(data.AmbientTemp),
			PlantHeight:   derefInt(data.PlantHeight),
			LightDistance: derefInt(data.LightDistance),
		}
	case entity.EventNote:
		details = &entity.NoteDetails{
			Text:      derefString(data.NoteText),
			MediaURLs: data.MediaURLs,
		}
	default:
		return nil, errors.Wrapf(entity.ErrUnknownEventKind, "stored kind %q", data.EventType)
	}

	plantIDs := make([]int64, 0, len(data.Plants))
	for i := range data.Plants {
		plantIDs = append(plantIDs, data.Plants[i].ID)
	}

	return &entity.Event{
		ID:       data.ID,
		Date:     data.Date,
		PlantIDs: plantIDs,
		Details:  details,
	}, nil
}

func toEventDomainSlice(models []model.EventModel) ([]*entity.Event, error) {
	events := make([]*entity.Event, 0, len(models))
	for i := range models {
		event, err := toEventDomain(&models[i])
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// fromEventDomain maps a typed event onto the sparse persistence row,
// populating only the columns its kind uses.
func fromEventDomain(data *entity.Event) (*model.EventModel, error) {
	eventM := &model.EventModel{
		ID:   data.ID,
		Date: data.Date,
	}

	switch details := data.Details.(type) {
	case *entity.WateringDetails:
		eventM.PH = &details.PH
		eventM.EC = &details.EC
		eventM.WaterTemp = &details.WaterTemp
	case *entity.PruningDetails:
		eventM.PruningType = stringPtr(string(details.PruningType))
	case *entity.DefoliationDetails:
		eventM.DefoliationDegree = stringPtr(string(details.Degree))
	case *entity.NutrientDetails:
		eventM.NutrientID = &details.NutrientID
	case *entity.StageChangeDetails:
		eventM.NewStage = stringPtr(details.NewStage.String())
	case *entity.MeasurementDetails:
		eventM.LightHours = &details.LightHours
		eventM.Humidity = &details.Humidity
		eventM.AmbientTemp = &details.AmbientTemp
		eventM.PlantHeight = &details.PlantHeight
		eventM.LightDistance = &details.LightDistance
	case *entity.NoteDetails:
		eventM.NoteText = &details.Text
		eventM.MediaURLs = details.MediaURLs
	default:
		return nil, errors.WithStack(entity.ErrUnknownEventKind)
	}

	eventM.EventType = data.Kind().String()

	eventM.Plants = make([]model.PlantModel, 0, len(data.PlantIDs))
	for _, plantID := range data.PlantIDs {
		eventM.Plants = append(eventM.Plants, model.PlantModel{ID: plantID})
	}

	return eventM, nil
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}

	return *v
}

func stringPtr(v string) *string {
	return &v
}
