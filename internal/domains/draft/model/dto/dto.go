package dto

import (
	"time"

	"riviera/internal/domains/booking/pricing"
	"riviera/internal/domains/draft/model"
)

type CreateDraftRequest struct {
	RoomID          string `json:"room_id"          validate:"required,uuid"`
	CheckInDate     string `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	Adults          int    `json:"adults"           validate:"required,min=1,max=10"`
	Children        int    `json:"children"         validate:"omitempty,min=0,max=10"`
	GuestFirstName  string `json:"guest_first_name" validate:"required,max=100"`
	GuestLastName   string `json:"guest_last_name"  validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"required,max=20"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

type DraftResponse struct {
	ID              string        `json:"id"`
	Token           string        `json:"token"`
	RoomID          string        `json:"room_id"`
	RoomName        string        `json:"room_name"`
	GuestFirstName  string        `json:"guest_first_name"`
	GuestLastName   string        `json:"guest_last_name"`
	GuestEmail      string        `json:"guest_email"`
	GuestPhone      string        `json:"guest_phone"`
	CheckInDate     time.Time     `json:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date"`
	Adults          int           `json:"adults"`
	Children        int           `json:"children"`
	SpecialRequests string        `json:"special_requests"`
	Quote           pricing.Quote `json:"quote"`
	Currency        string        `json:"currency"`
	ExpiresAt       time.Time     `json:"expires_at"`
}

func (d *DraftResponse) FromModel(draft model.Draft, token string) {
	d.ID = draft.ID
	d.Token = token
	d.RoomID = draft.RoomID
	d.RoomName = draft.RoomName
	d.GuestFirstName = draft.GuestFirstName
	d.GuestLastName = draft.GuestLastName
	d.GuestEmail = draft.GuestEmail
	d.GuestPhone = draft.GuestPhone
	d.CheckInDate = draft.CheckInDate
	d.CheckOutDate = draft.CheckOutDate
	d.Adults = draft.Adults
	d.Children = draft.Children
	d.SpecialRequests = draft.SpecialRequests
	d.Quote = draft.Quote
	d.Currency = draft.Currency
	d.ExpiresAt = draft.ExpiresAt
}
