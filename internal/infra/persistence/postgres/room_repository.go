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

// roomRepository implements the domain.RoomRepository interface using GORM.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

// FindByID retrieves a single room by its unique ID.
func (repo *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	var roomM model.RoomModel
	if err := repo.db.WithContext(ctx).First(&roomM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by id")
	}

	return toRoomDomain(&roomM), nil
}

// FindAll retrieves every room ordered by ID.
func (repo *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	var models []model.RoomModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return toRoomDomainSlice(models), nil
}

// FindByOwnerID retrieves the rooms owned by the given user.
func (repo *roomRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Room, error) {
	var models []model.RoomModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms by owner")
	}

	return toRoomDomainSlice(models), nil
}

// ExistsByID reports whether a room with the given ID exists.
func (repo *roomRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check room existence")
	}

	return count > 0, nil
}

// Create persists a new room to the database.
func (repo *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create room")
	}

	room.ID = roomM.ID

	return nil
}

// Update modifies an existing room in the database.
func (repo *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	result := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", roomM.ID).
		Updates(map[string]any{
			"name":         roomM.Name,
			"description":  roomM.Description,
			"light_hours":  roomM.LightHours,
			"humidity":     roomM.Humidity,
			"ambient_temp": roomM.AmbientTemp,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update room")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

// Delete removes the room with the given ID.
func (repo *roomRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RoomModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete room")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

func toRoomDomain(data *model.RoomModel) *entity.Room {
	return &entity.Room{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LightHours:  data.LightHours,
		Humidity:    data.Humidity,
		AmbientTemp: data.AmbientTemp,
		OwnerID:     data.OwnerID,
	}
}

func toRoomDomainSlice(models []model.RoomModel) []*entity.Room {
	rooms := make([]*entity.Room, 0, len(models))
	for i := range models {
		rooms = append(rooms, toRoomDomain(&models[i]))
	}

	return rooms
}

func fromRoomDomain(data *entity.Room) *model.RoomModel {
	return &model.RoomModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LightHours:  data.LightHours,
		Humidity:    data.Humidity,
		AmbientTemp: data.AmbientTemp,
		OwnerID:     data.OwnerID,
	}
}
