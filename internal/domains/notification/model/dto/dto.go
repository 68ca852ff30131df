package dto

const (
	TypeConfirmation = "confirmation"
	TypeReminder     = "reminder"
	TypeCancellation = "cancellation"

	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelBoth  = "both"
)

type SendNotificationRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Type      string `json:"type"       validate:"required,oneof=confirmation reminder cancellation"`
	Channel   string `json:"channel"    validate:"required,oneof=email sms both"`
}

type SendNotificationResponse struct {
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
	Channel   string `json:"channel"`
	EmailSent bool   `json:"email_sent"`
}
