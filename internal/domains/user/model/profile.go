package model

import (
	"time"

	"riviera/shared/model"
)

const (
	ProfileTableName  = "profiles"
	ProfileEntityName = "profile"

	FieldProfileUserID      = "user_id"
	FieldProfileFirstName   = "first_name"
	FieldProfileLastName    = "last_name"
	FieldProfilePhone       = "phone"
	FieldProfileDateOfBirth = "date_of_birth"
)

type Profile struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Phone       string     `db:"phone"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	model.Metadata
}
