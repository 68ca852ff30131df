package model

import "riviera/shared/model"

const (
	TableName  = "contact_messages"
	EntityName = "contact message"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldSubject  = "subject"
	FieldMessage  = "message"
	FieldResolved = "resolved"
)

type ContactMessage struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Subject  string `db:"subject"`
	Message  string `db:"message"`
	Resolved bool   `db:"resolved"`
	model.Metadata
}
