package model

import (
	"riviera/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldUserID        = "user_id"
	FieldAmount        = "amount"
	FieldCurrency      = "currency"
	FieldPaymentMethod = "payment_method"
	FieldPaymentStatus = "payment_status"
	FieldTransactionID = "transaction_id"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Payment struct {
	ID            string  `db:"id"`
	BookingID     string  `db:"booking_id"`
	UserID        string  `db:"user_id"`
	Amount        float64 `db:"amount"`
	Currency      string  `db:"currency"`
	PaymentMethod string  `db:"payment_method"`
	PaymentStatus string  `db:"payment_status"`
	TransactionID string  `db:"transaction_id"`
	model.Metadata
}
