package dto

import (
	"riviera/internal/domains/payment/model"
	"riviera/shared"
	gDto "riviera/shared/dto"
)

type InitiatePaymentRequest struct {
	DraftID string `json:"draft_id" validate:"required,uuid"`
	Token   string `json:"token"    validate:"required"`
	Method  string `json:"method"   validate:"required,oneof=card paypal monetbil cinetpay"`
	// PhoneNumber overrides the draft phone for mobile money charges.
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	// Channel picks the carrier on CinetPay charges.
	Channel string `json:"channel" validate:"omitempty,oneof=ORANGE_MONEY_CI MTN_MONEY_CI"`
}

type InitiatePaymentResponse struct {
	BookingID   string `json:"booking_id"`
	PaymentID   string `json:"payment_id"`
	Method      string `json:"method"`
	RedirectURL string `json:"redirect_url"`
}

type FinalizePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type FinalizePaymentResponse struct {
	BookingID string `json:"booking_id"`
	UnitID    string `json:"unit_id,omitempty"`
	Status    string `json:"status"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	TransactionID string  `json:"transaction_id"`
	gDto.Metadata
}

func (p *PaymentResponse) FromModel(model model.Payment) {
	p.ID = model.ID
	p.BookingID = model.BookingID
	p.UserID = model.UserID
	p.Amount = model.Amount
	p.Currency = model.Currency
	p.PaymentMethod = model.PaymentMethod
	p.PaymentStatus = model.PaymentStatus
	p.TransactionID = model.TransactionID
	p.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		g.Payments[i].FromModel(mod)
	}
}
