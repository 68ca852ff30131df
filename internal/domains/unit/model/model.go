package model

import (
	"riviera/shared/model"
)

const (
	TableName  = "room_units"
	EntityName = "unit"

	FieldID     = "id"
	FieldRoomID = "room_id"
	FieldCode   = "code"
	FieldStatus = "status"
)

const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
	StatusOccupied  = "occupied"
)

type RoomUnit struct {
	ID     string `db:"id"`
	RoomID string `db:"room_id"`
	Code   string `db:"code"`
	Status string `db:"status"`
	model.Metadata
}
