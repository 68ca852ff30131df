package model

import "riviera/shared/model"

const (
	TableName  = "room_images"
	EntityName = "room image"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldImageURL  = "image_url"
	FieldAlt       = "alt"
	FieldSortOrder = "sort_order"
)

type RoomImage struct {
	ID        string `db:"id"`
	RoomID    string `db:"room_id"`
	ImageURL  string `db:"image_url"`
	Alt       string `db:"alt"`
	SortOrder int    `db:"sort_order"`
	model.Metadata
}
