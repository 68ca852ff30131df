package model

import (
	"time"

	"riviera/internal/domains/booking/pricing"
)

const (
	EntityName = "draft"

	CachePrefix = "draft"
)

// Draft is a priced booking proposal held in Redis until the guest pays or
// the TTL runs out. Its ID doubles as the idempotency key for payment
// initiation.
type Draft struct {
	ID              string        `json:"id"`
	RoomID          string        `json:"room_id"`
	RoomName        string        `json:"room_name"`
	UserID          string        `json:"user_id"`
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
	CreatedAt       time.Time     `json:"created_at"`
	ExpiresAt       time.Time     `json:"expires_at"`
}
