package model

import (
	"database/sql"
	"time"

	"riviera/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldDraftID         = "draft_id"
	FieldRoomID          = "room_id"
	FieldUnitID          = "unit_id"
	FieldUserID          = "user_id"
	FieldGuestFirstName  = "guest_first_name"
	FieldGuestLastName   = "guest_last_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldAdults          = "adults"
	FieldChildren        = "children"
	FieldSpecialRequests = "special_requests"
	FieldAdminNotes      = "admin_notes"
	FieldStatus          = "status"
	FieldNights          = "nights"
	FieldSubtotal        = "subtotal"
	FieldTax             = "tax"
	FieldTotalPrice      = "total_price"
	FieldCurrency        = "currency"
	FieldPaymentMethod   = "payment_method"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID              string         `db:"id"`
	DraftID         string         `db:"draft_id"`
	RoomID          string         `db:"room_id"`
	UnitID          sql.NullString `db:"unit_id"`
	UserID          string         `db:"user_id"`
	GuestFirstName  string         `db:"guest_first_name"`
	GuestLastName   string         `db:"guest_last_name"`
	GuestEmail      string         `db:"guest_email"`
	GuestPhone      string         `db:"guest_phone"`
	CheckInDate     time.Time      `db:"check_in_date"`
	CheckOutDate    time.Time      `db:"check_out_date"`
	Adults          int            `db:"adults"`
	Children        int            `db:"children"`
	SpecialRequests string         `db:"special_requests"`
	AdminNotes      string         `db:"admin_notes"`
	Status          string         `db:"status"`
	Nights          int            `db:"nights"`
	Subtotal        float64        `db:"subtotal"`
	Tax             float64        `db:"tax"`
	TotalPrice      float64        `db:"total_price"`
	Currency        string         `db:"currency"`
	PaymentMethod   string         `db:"payment_method"`
	model.Metadata
}

// GuestSummary is a read-only roll-up of bookings grouped by guest email.
type GuestSummary struct {
	GuestEmail     string    `db:"guest_email"`
	GuestFirstName string    `db:"guest_first_name"`
	GuestLastName  string    `db:"guest_last_name"`
	GuestPhone     string    `db:"guest_phone"`
	TotalBookings  int       `db:"total_bookings"`
	TotalSpent     float64   `db:"total_spent"`
	LastBookingAt  time.Time `db:"last_booking_at"`
}
