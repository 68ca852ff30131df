package dto

import (
	"riviera/internal/domains/unit/model"
	"riviera/shared"
	gDto "riviera/shared/dto"
	gModel "riviera/shared/model"
	"riviera/shared/timezone"

	"github.com/google/uuid"
)

type CreateUnitRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
	Code   string `json:"code"    validate:"required,max=20"`
	Status string `json:"status"  validate:"omitempty,oneof=available booked occupied"`
}

func (c *CreateUnitRequest) ToModel(user string) model.RoomUnit {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.RoomUnit{
		ID:     uuid.NewString(),
		RoomID: c.RoomID,
		Code:   c.Code,
		Status: status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUnitRequest struct {
	Code   string `db:"code"   json:"code"   validate:"omitempty,max=20"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=available booked occupied"`
}

type UnitResponse struct {
	ID     string `json:"id"`
	RoomID string `json:"room_id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	gDto.Metadata
}

func (u *UnitResponse) FromModel(model model.RoomUnit) {
	u.ID = model.ID
	u.RoomID = model.RoomID
	u.Code = model.Code
	u.Status = model.Status
	u.Metadata.FromModel(model.Metadata)
}

type GetUnitsResponse struct {
	Units     []UnitResponse `json:"units"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetUnitsResponse) FromModels(models []model.RoomUnit, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Units = make([]UnitResponse, len(models))
	for i, mod := range models {
		g.Units[i].FromModel(mod)
	}
}

type RoomAvailability struct {
	RoomID         string `db:"room_id" json:"room_id"`
	AvailableUnits int    `db:"available_units" json:"available_units"`
}

type AvailabilityResponse struct {
	Rooms []RoomAvailability `json:"rooms"`
}
