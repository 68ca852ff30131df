package dto

import (
	"mime/multipart"

	"riviera/internal/domains/room/model"
	"riviera/shared"
	gDto "riviera/shared/dto"
	gModel "riviera/shared/model"
	"riviera/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name           string                `json:"name"            validate:"required,max=100"`
	Type           string                `json:"type"            validate:"required,oneof=standard deluxe suite"`
	Description    string                `json:"description"     validate:"required"`
	Price          float64               `json:"price"           validate:"required,min=0"`
	Capacity       int                   `json:"capacity"        validate:"required,min=1"`
	Size           string                `json:"size"            validate:"omitempty,max=50"`
	Available      *bool                 `json:"available"       validate:"omitempty"`
	Features       []string              `json:"features"        validate:"omitempty,dive,max=100"`
	Amenities      []string              `json:"amenities"       validate:"omitempty,dive,max=100"`
	InventoryCount int                   `json:"inventory_count" validate:"omitempty,min=0"`
	Image          *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile      multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Room{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Type:           c.Type,
		Description:    c.Description,
		Price:          c.Price,
		Capacity:       c.Capacity,
		Size:           c.Size,
		Available:      available,
		Features:       c.Features,
		Amenities:      c.Amenities,
		InventoryCount: c.InventoryCount,
		ImageURL:       imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name           string                `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Type           string                `db:"type"            json:"type"            validate:"omitempty,oneof=standard deluxe suite"`
	Description    string                `db:"description"     json:"description"     validate:"omitempty"`
	Price          *float64              `db:"price"           json:"price"           validate:"omitempty,min=0"`
	Capacity       *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	Size           string                `db:"size"            json:"size"            validate:"omitempty,max=50"`
	Available      *bool                 `db:"available"       json:"available"       validate:"omitempty"`
	Features       []string              `json:"features"      validate:"omitempty,dive,max=100"`
	Amenities      []string              `json:"amenities"     validate:"omitempty,dive,max=100"`
	InventoryCount *int                  `db:"inventory_count" json:"inventory_count" validate:"omitempty,min=0"`
	Image          *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile      multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Capacity       int      `json:"capacity"`
	Size           string   `json:"size"`
	Available      bool     `json:"available"`
	Features       []string `json:"features"`
	Amenities      []string `json:"amenities"`
	InventoryCount int      `json:"inventory_count"`
	ImageURL       string   `json:"image_url"`
	// AvailableUnits is filled from the availability reader, not the rooms table.
	AvailableUnits int `json:"available_units"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Description = model.Description
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Size = model.Size
	r.Available = model.Available
	r.Features = model.Features
	r.Amenities = model.Amenities
	r.InventoryCount = model.InventoryCount
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
