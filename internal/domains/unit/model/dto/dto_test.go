package dto_test

import (
	"testing"

	"riviera/internal/domains/unit/model"
	"riviera/internal/domains/unit/model/dto"
	"riviera/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateUnitRequest_StatusValues(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "available", status: model.StatusAvailable, wantErr: false},
		{name: "booked", status: model.StatusBooked, wantErr: false},
		{name: "occupied", status: model.StatusOccupied, wantErr: false},
		{name: "empty defaults later", status: "", wantErr: false},
		{name: "unknown value rejected", status: "maintenance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateUnitRequest{
				RoomID: "22222222-2222-2222-2222-222222222222",
				Code:   "A-101",
				Status: tt.status,
			}

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUnitRequest_StatusValues(t *testing.T) {
	req := dto.UpdateUnitRequest{Status: model.StatusOccupied}
	assert.NoError(t, validator.ValidateStruct(&req))

	req = dto.UpdateUnitRequest{Status: "maintenance"}
	assert.Error(t, validator.ValidateStruct(&req))
}

func TestCreateUnitRequest_ToModel(t *testing.T) {
	req := dto.CreateUnitRequest{
		RoomID: "22222222-2222-2222-2222-222222222222",
		Code:   "A-101",
	}

	unit := req.ToModel("admin-id")

	assert.NotEmpty(t, unit.ID)
	assert.Equal(t, req.RoomID, unit.RoomID)
	assert.Equal(t, model.StatusAvailable, unit.Status)
	assert.Equal(t, "admin-id", unit.CreatedBy)
}
