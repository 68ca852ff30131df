package model

import (
	"riviera/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID             = "id"
	FieldName           = "name"
	FieldType           = "type"
	FieldDescription    = "description"
	FieldPrice          = "price"
	FieldCapacity       = "capacity"
	FieldSize           = "size"
	FieldAvailable      = "available"
	FieldFeatures       = "features"
	FieldAmenities      = "amenities"
	FieldInventoryCount = "inventory_count"
	FieldImageURL       = "image_url"
)

const (
	TypeStandard = "standard"
	TypeDeluxe   = "deluxe"
	TypeSuite    = "suite"
)

type Room struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Type           string         `db:"type"`
	Description    string         `db:"description"`
	Price          float64        `db:"price"`
	Capacity       int            `db:"capacity"`
	Size           string         `db:"size"`
	Available      bool           `db:"available"`
	Features       pq.StringArray `db:"features"`
	Amenities      pq.StringArray `db:"amenities"`
	InventoryCount int            `db:"inventory_count"`
	ImageURL       string         `db:"image_url"`
	model.Metadata
}
