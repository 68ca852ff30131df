package dto

import (
	"github.com/google/uuid"
	"riviera/internal/domains/contact/model"
	"riviera/shared"
	gDto "riviera/shared/dto"
	gModel "riviera/shared/model"
	"riviera/shared/timezone"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (c *CreateContactMessageRequest) ToModel(user string) model.ContactMessage {
	return model.ContactMessage{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Subject:  c.Subject,
		Message:  c.Message,
		Resolved: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateContactMessageRequest struct {
	Resolved *bool `db:"resolved" json:"resolved" validate:"omitempty"`
}

type ContactMessageResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved"`
	gDto.Metadata
}

func (r *ContactMessageResponse) FromModel(model model.ContactMessage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Resolved = model.Resolved
	r.Metadata.FromModel(model.Metadata)
}

type GetContactMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetContactMessagesResponse) FromModels(models []model.ContactMessage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Messages = make([]ContactMessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
