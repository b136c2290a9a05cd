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

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Find retrieves the favorite mark a user placed on one target, if any.
func (repo *favoriteRepository) Find(ctx context.Context, userID, targetID int64, kind entity.FavoriteKind) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, kind.String()).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindTargetIDs retrieves the target IDs of one kind the user favorited.
func (repo *favoriteRepository) FindTargetIDs(ctx context.Context, userID int64, kind entity.FavoriteKind) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND target_kind = ?", userID, kind.String()).
		Order("target_id").
		Pluck("target_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorite targets")
	}

	return ids, nil
}

// Create persists a new favorite mark. The composite unique index turns
// a concurrent double-favorite into ErrFavoriteExists.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID

	return nil
}

// Delete removes the favorite mark a user placed on one target.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, targetID int64, kind entity.FavoriteKind) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, kind.String()).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		TargetID:   data.TargetID,
		TargetKind: entity.FavoriteKind(data.TargetKind),
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:         data.ID,
		UserID:     data.UserID,
		TargetID:   data.TargetID,
		TargetKind: data.TargetKind.String(),
	}
}
