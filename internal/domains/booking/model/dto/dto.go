package dto

import (
	"time"

	"riviera/internal/domains/booking/model"
	"riviera/shared"
	gDto "riviera/shared/dto"
)

type UpdateBookingRequest struct {
	Status          string `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
	AdminNotes      string `db:"admin_notes"      json:"admin_notes"      validate:"omitempty,max=1000"`
	SpecialRequests string `db:"special_requests" json:"special_requests" validate:"omitempty,max=1000"`
	GuestPhone      string `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
}

type BookingResponse struct {
	ID              string    `json:"id"`
	DraftID         string    `json:"draft_id"`
	RoomID          string    `json:"room_id"`
	UnitID          string    `json:"unit_id,omitempty"`
	UserID          string    `json:"user_id"`
	GuestFirstName  string    `json:"guest_first_name"`
	GuestLastName   string    `json:"guest_last_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	SpecialRequests string    `json:"special_requests"`
	AdminNotes      string    `json:"admin_notes"`
	Status          string    `json:"status"`
	Nights          int       `json:"nights"`
	Subtotal        float64   `json:"subtotal"`
	Tax             float64   `json:"tax"`
	TotalPrice      float64   `json:"total_price"`
	Currency        string    `json:"currency"`
	PaymentMethod   string    `json:"payment_method"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.DraftID = model.DraftID
	b.RoomID = model.RoomID
	b.UnitID = model.UnitID.String
	b.UserID = model.UserID
	b.GuestFirstName = model.GuestFirstName
	b.GuestLastName = model.GuestLastName
	b.GuestEmail = model.GuestEmail
	b.GuestPhone = model.GuestPhone
	b.CheckInDate = model.CheckInDate
	b.CheckOutDate = model.CheckOutDate
	b.Adults = model.Adults
	b.Children = model.Children
	b.SpecialRequests = model.SpecialRequests
	b.AdminNotes = model.AdminNotes
	b.Status = model.Status
	b.Nights = model.Nights
	b.Subtotal = model.Subtotal
	b.Tax = model.Tax
	b.TotalPrice = model.TotalPrice
	b.Currency = model.Currency
	b.PaymentMethod = model.PaymentMethod
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

type GuestResponse struct {
	GuestEmail     string    `json:"guest_email"`
	GuestFirstName string    `json:"guest_first_name"`
	GuestLastName  string    `json:"guest_last_name"`
	GuestPhone     string    `json:"guest_phone"`
	TotalBookings  int       `json:"total_bookings"`
	TotalSpent     float64   `json:"total_spent"`
	LastBookingAt  time.Time `json:"last_booking_at"`
}

func (g *GuestResponse) FromModel(model model.GuestSummary) {
	g.GuestEmail = model.GuestEmail
	g.GuestFirstName = model.GuestFirstName
	g.GuestLastName = model.GuestLastName
	g.GuestPhone = model.GuestPhone
	g.TotalBookings = model.TotalBookings
	g.TotalSpent = model.TotalSpent
	g.LastBookingAt = model.LastBookingAt
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.GuestSummary) {
	g.TotalData = len(models)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}
