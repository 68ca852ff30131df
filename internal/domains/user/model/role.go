package model

import (
	"riviera/shared/model"
)

const (
	RoleTableName  = "user_roles"
	RoleEntityName = "user_role"

	FieldRoleUserID = "user_id"
	FieldRoleRole   = "role"
)

type UserRole struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Role   string `db:"role"`
	model.Metadata
}
