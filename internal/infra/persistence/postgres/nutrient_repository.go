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

// nutrientRepository implements the domain.NutrientRepository interface using GORM.
type nutrientRepository struct {
	db *gorm.DB
}

// NewNutrientRepository is the constructor for nutrientRepository.
func NewNutrientRepository(db *gorm.DB) repository.NutrientRepository {
	return &nutrientRepository{db: db}
}

// FindByID retrieves a single nutrient by its unique ID.
func (repo *nutrientRepository) FindByID(ctx context.Context, id int64) (*entity.Nutrient, error) {
	var nutrientM model.NutrientModel
	if err := repo.db.WithContext(ctx).First(&nutrientM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNutrientNotFound
		}

		return nil, errors.Wrap(err, "failed to find nutrient by id")
	}

	return toNutrientDomain(&nutrientM), nil
}

// FindAll retrieves every nutrient ordered by ID.
func (repo *nutrientRepository) FindAll(ctx context.Context) ([]*entity.Nutrient, error) {
	var models []model.NutrientModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nutrients")
	}

	return toNutrientDomainSlice(models), nil
}

// FindByOwnerID retrieves the nutrients owned by the given user.
func (repo *nutrientRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Nutrient, error) {
	var models []model.NutrientModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nutrients by owner")
	}

	return toNutrientDomainSlice(models), nil
}

// ExistsByID reports whether a nutrient with the given ID exists.
func (repo *nutrientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NutrientModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check nutrient existence")
	}

	return count > 0, nil
}

// Create persists a new nutrient to the database.
func (repo *nutrientRepository) Create(ctx context.Context, nutrient *entity.Nutrient) error {
	nutrientM := fromNutrientDomain(nutrient)

	if err := repo.db.WithContext(ctx).Create(nutrientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create nutrient")
	}

	nutrient.ID = nutrientM.ID

	return nil
}

// Update modifies an existing nutrient in the database.
func (repo *nutrientRepository) Update(ctx context.Context, nutrient *entity.Nutrient) error {
	nutrientM := fromNutrientDomain(nutrient)

	result := repo.db.WithContext(ctx).
		Model(&model.NutrientModel{}).
		Where("id = ?", nutrientM.ID).
		Updates(map[string]any{
			"title":       nutrientM.Title,
			"description": nutrientM.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update nutrient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNutrientNotFound
	}

	return nil
}

// Delete removes the nutrient with the given ID.
func (repo *nutrientRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.NutrientModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete nutrient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNutrientNotFound
	}

	return nil
}

func toNutrientDomain(data *model.NutrientModel) *entity.Nutrient {
	return &entity.Nutrient{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		OwnerID:     data.OwnerID,
	}
}

func toNutrientDomainSlice(models []model.NutrientModel) []*entity.Nutrient {
	nutrients := make([]*entity.Nutrient, 0, len(models))
	for i := range models {
		nutrients = append(nutrients, toNutrientDomain(&models[i]))
	}

	return nutrients
}

func fromNutrientDomain(data *entity.Nutrient) *model.NutrientModel {
	return &model.NutrientModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		OwnerID:     data.OwnerID,
	}
}
