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

// strainRepository implements the domain.StrainRepository interface using GORM.
type strainRepository struct {
	db *gorm.DB
}

// NewStrainRepository is the constructor for strainRepository.
func NewStrainRepository(db *gorm.DB) repository.StrainRepository {
	return &strainRepository{db: db}
}

// FindByID retrieves a single strain by its unique ID.
func (repo *strainRepository) FindByID(ctx context.Context, id int64) (*entity.Strain, error) {
	var strainM model.StrainModel
	if err := repo.db.WithContext(ctx).First(&strainM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStrainNotFound
		}

		return nil, errors.Wrap(err, "failed to find strain by id")
	}

	return toStrainDomain(&strainM), nil
}

// FindAll retrieves every strain ordered by ID.
func (repo *strainRepository) FindAll(ctx context.Context) ([]*entity.Strain, error) {
	var models []model.StrainModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list strains")
	}

	return toStrainDomainSlice(models), nil
}

// FindByOwnerID retrieves the strains owned by the given user.
func (repo *strainRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Strain, error) {
	var models []model.StrainModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list strains by owner")
	}

	return toStrainDomainSlice(models), nil
}

// SearchByName retrieves strains whose name contains the fragment.
func (repo *strainRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Strain, error) {
	var models []model.StrainModel
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+fragment+"%").
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search strains by name")
	}

	return toStrainDomainSlice(models), nil
}

// ExistsByID reports whether a strain with the given ID exists.
func (repo *strainRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StrainModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check strain existence")
	}

	return count > 0, nil
}

// Create persists a new strain to the database.
func (repo *strainRepository) Create(ctx context.Context, strain *entity.Strain) error {
	strainM := fromStrainDomain(strain)

	if err := repo.db.WithContext(ctx).Create(strainM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create strain")
	}

	strain.ID = strainM.ID

	return nil
}

// Update modifies an existing strain in the database.
func (repo *strainRepository) Update(ctx context.Context, strain *entity.Strain) error {
	strainM := fromStrainDomain(strain)

	result := repo.db.WithContext(ctx).
		Model(&model.StrainModel{}).
		Where("id = ?", strainM.ID).
		Updates(map[string]any{
			"name":            strainM.Name,
			"parent_genetics": strainM.ParentGenetics,
			"dominance":       strainM.Dominance,
			"aroma_flavor":    strainM.AromaFlavor,
			"thc":             strainM.THC,
			"cbd":             strainM.CBD,
			"detail":          strainM.Detail,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update strain")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStrainNotFound
	}

	return nil
}

// Delete removes the strain with the given ID.
func (repo *strainRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.StrainModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete strain")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStrainNotFound
	}

	return nil
}

func toStrainDomain(data *model.StrainModel) *entity.Strain {
	return &entity.Strain{
		ID:             data.ID,
		Name:           data.Name,
		ParentGenetics: data.ParentGenetics,
		Dominance:      data.Dominance,
		AromaFlavor:    data.AromaFlavor,
		THC:            data.THC,
		CBD:            data.CBD,
		Detail:         data.Detail,
		OwnerID:        data.OwnerID,
	}
}

func toStrainDomainSlice(models []model.StrainModel) []*entity.Strain {
	strains := make([]*entity.Strain, 0, len(models))
	for i := range models {
		strains = append(strains, toStrainDomain(&models[i]))
	}

	return strains
}

func fromStrainDomain(data *entity.Strain) *model.StrainModel {
	return &model.StrainModel{
		ID:             data.ID,
		Name:           data.Name,
		ParentGenetics: data.ParentGenetics,
		Dominance:      data.Dominance,
		AromaFlavor:    data.AromaFlavor,
		THC:            data.THC,
		CBD:            data.CBD,
		Detail:         data.Detail,
		OwnerID:        data.OwnerID,
	}
}
