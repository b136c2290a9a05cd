// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserResponse is the client-facing shape of an account. The password
// hash never leaves the domain.
type UserResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role.String(),
		RegisteredAt: user.RegisteredAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// RoomResponse is the client-facing shape of a grow room.
type RoomResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	LightHours  string  `json:"lightHours"`
	Humidity    float64 `json:"humidity"`
	AmbientTemp float64 `json:"ambientTemp"`
	OwnerID     int64   `json:"ownerId"`
}

func toRoomResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		LightHours:  room.LightHours,
		Humidity:    room.Humidity,
		AmbientTemp: room.AmbientTemp,
		OwnerID:     room.OwnerID,
	}
}

func toRoomResponses(rooms []*entity.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomResponse(room))
	}

	return out
}

// StrainResponse is the client-facing shape of a strain.
type StrainResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ParentGenetics string `json:"parentGenetics"`
	Dominance      string `json:"dominance"`
	AromaFlavor    string `json:"aromaFlavor"`
	THC            string `json:"thc"`
	CBD            string `json:"cbd"`
	Detail         string `json:"detail"`
	OwnerID        int64  `json:"ownerId"`
}

func toStrainResponse(strain *entity.Strain) StrainResponse {
	return StrainResponse{
		ID:             strain.ID,
		Name:           strain.Name,
		ParentGenetics: strain.ParentGenetics,
		Dominance:      strain.Dominance,
		AromaFlavor:    strain.AromaFlavor,
		THC:            strain.THC,
		CBD:            strain.CBD,
		Detail:         strain.Detail,
		OwnerID:        strain.OwnerID,
	}
}

func toStrainResponses(strains []*entity.Strain) []StrainResponse {
	out := make([]StrainResponse, 0, len(strains))
	for _, strain := range strains {
		out = append(out, toStrainResponse(strain))
	}

	return out
}

// NutrientResponse is the client-facing shape of a nutrient product.
type NutrientResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     int64  `json:"ownerId"`
}

func toNutrientResponse(nutrient *entity.Nutrient) NutrientResponse {
	return NutrientResponse{
		ID:          nutrient.ID,
		Title:       nutrient.Title,
		Description: nutrient.Description,
		OwnerID:     nutrient.OwnerID,
	}
}

func toNutrientResponses(nutrients []*entity.Nutrient) []NutrientResponse {
	out := make([]NutrientResponse, 0, len(nutrients))
	for _, nutrient := range nutrients {
		out = append(out, toNutrientResponse(nutrient))
	}

	return out
}

// PlantResponse is the client-facing shape of a plant.
type PlantResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Stage      string     `json:"stage"`
	RoomID     int64      `json:"roomId"`
	StrainID   int64      `json:"strainId"`
	OwnerID    int64      `json:"ownerId"`
	CreatedAt  time.Time  `json:"createdAt"`
	Production int        `json:"production"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Location   string     `json:"location"`
	Public     bool       `json:"public"`
}

func toPlantResponse(plant *entity.Plant) PlantResponse {
	return PlantResponse{
		ID:         plant.ID,
		Name:       plant.Name,
		Stage:      plant.Stage.String(),
		RoomID:     plant.RoomID,
		StrainID:   plant.StrainID,
		OwnerID:    plant.OwnerID,
		CreatedAt:  plant.CreatedAt,
		Production: plant.Production,
		FinishedAt: plant.FinishedAt,
		Location:   plant.Location,
		Public:     plant.Public,
	}
}

func toPlantResponses(plants []*entity.Plant) []PlantResponse {
	out := make([]PlantResponse, 0, len(plants))
	for _, plant := range plants {
		out = append(out, toPlantResponse(plant))
	}

	return out
}

// EventResponse is the client-facing shape of a cultivation event. The
// variant payload is serialized back through the registry, so its
// fields always match the kind.
type EventResponse struct {
	ID       int64           `json:"id"`
	Kind     string          `json:"kind"`
	Date     time.Time       `json:"date"`
	PlantIDs []int64         `json:"plantIds"`
	Details  json.RawMessage `json:"details"`
}

func toEventResponse(event *entity.Event) (EventResponse, error) {
	kind, raw, err := entity.EncodeEventDetails(event.Details)
	if err != nil {
		return EventResponse{}, errors.WithStack(err)
	}

	return EventResponse{
		ID:       event.ID,
		Kind:     kind.String(),
		Date:     event.Date,
		PlantIDs: event.PlantIDs,
		Details:  raw,
	}, nil
}

func toEventResponses(events []*entity.Event) ([]EventResponse, error) {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		resp, err := toEventResponse(event)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}

	return out, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}
