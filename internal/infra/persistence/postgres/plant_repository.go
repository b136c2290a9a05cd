package postgres

import (
	"context"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/repository"
	"flora/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantRepository implements the domain.PlantRepository interface using GORM.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

// FindByID retrieves a single plant by its unique ID.
func (repo *plantRepository) FindByID(ctx context.Context, id int64) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).First(&plantM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by id")
	}

	return toPlantDomain(&plantM), nil
}

// FindAllByIDs retrieves the plants with the given IDs.
func (repo *plantRepository) FindAllByIDs(ctx context.Context, ids []int64) ([]*entity.Plant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.PlantModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find plants by ids")
	}

	return toPlantDomainSlice(models), nil
}

// FindAll retrieves every plant ordered by ID.
func (repo *plantRepository) FindAll(ctx context.Context) ([]*entity.Plant, error) {
	var models []model.PlantModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	return toPlantDomainSlice(models), nil
}

// FindByOwnerID retrieves the plants owned by the given user.
func (repo *plantRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Plant, error) {
	var models []model.PlantModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plants by owner")
	}

	return toPlantDomainSlice(models), nil
}

// FindByRoomID retrieves the plants growing in the given room.
func (repo *plantRepository) FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Plant, error) {
	var models []model.PlantModel
	if err := repo.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plants by room")
	}

	return toPlantDomainSlice(models), nil
}

// SearchByName retrieves plants whose name contains the fragment.
func (repo *plantRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Plant, error) {
	var models []model.PlantModel
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+fragment+"%").
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search plants by name")
	}

	return toPlantDomainSlice(models), nil
}

// ExistsByID reports whether a plant with the given ID exists.
func (repo *plantRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check plant existence")
	}

	return count > 0, nil
}

// Create persists a new plant to the database.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "plant references a missing room or strain")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt

	return nil
}

// Update modifies an existing plant in the database.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plantM.ID).
		Updates(map[string]any{
			"name":        plantM.Name,
			"stage":       plantM.Stage,
			"room_id":     plantM.RoomID,
			"strain_id":   plantM.StrainID,
			"production":  plantM.Production,
			"finished_at": plantM.FinishedAt,
			"location":    plantM.Location,
			"public":      plantM.Public,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// UpdateStage moves every plant in ids to the given stage in one statement.
func (repo *plantRepository) UpdateStage(ctx context.Context, ids []int64, stage entity.Stage) error {
	if len(ids) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id IN ?", ids).
		Update("stage", stage.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plant stages")
	}
	if result.RowsAffected != int64(len(ids)) {
		return repository.ErrPlantNotFound
	}

	return nil
}

// Delete removes the plant with the given ID.
func (repo *plantRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PlantModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete plant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

func toPlantDomain(data *model.PlantModel) *entity.Plant {
	return &entity.Plant{
		ID:         data.ID,
		Name:       data.Name,
		Stage:      entity.Stage(data.Stage),
		RoomID:     data.RoomID,
		StrainID:   data.StrainID,
		OwnerID:    data.OwnerID,
		CreatedAt:  data.CreatedAt,
		Production: data.Production,
		FinishedAt: data.FinishedAt,
		Location:   data.Location,
		Public:     data.Public,
	}
}

func toPlantDomainSlice(models []model.PlantModel) []*entity.Plant {
	plants := make([]*entity.Plant, 0, len(models))
	for i := range models {
		plants = append(plants, toPlantDomain(&models[i]))
	}

	return plants
}

func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	return &model.PlantModel{
		ID:         data.ID,
		Name:       data.Name,
		Stage:      data.Stage.String(),
		RoomID:     data.RoomID,
		StrainID:   data.StrainID,
		OwnerID:    data.OwnerID,
		CreatedAt:  data.CreatedAt,
		Production: data.Production,
		FinishedAt: data.FinishedAt,
		Location:   data.Location,
		Public:     data.Public,
	}
}
