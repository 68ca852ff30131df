package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"riviera/infras/mail"
	"riviera/infras/otel"
	bookingModel "riviera/internal/domains/booking/model"
	bookingRepo "riviera/internal/domains/booking/repository"
	"riviera/internal/domains/notification/model/dto"
	roomModel "riviera/internal/domains/room/model"
	roomRepo "riviera/internal/domains/room/repository"
	"riviera/shared"
	"riviera/shared/constant"
	"riviera/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Send(ctx context.Context, req dto.SendNotificationRequest) (dto.SendNotificationResponse, error)
	SendConfirmationEmail(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	mailer      mail.Mailer
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, mailer mail.Mailer, otel otel.Otel) Notification {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		mailer:      mailer,
		otel:        otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, req dto.SendNotificationRequest) (res dto.SendNotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if req.Channel == dto.ChannelSMS {
		return res, failure.Unimplemented("sms notification") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	subject, body := renderEmail(req.Type, booking, room.Name)

	if err = s.mailer.Send(ctx, booking.GuestEmail, subject, body); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to send notification email")

		return res, fmt.Errorf("failed to send notification email: %w", err)
	}

	if req.Channel == dto.ChannelBoth {
		// TODO: wire an SMS provider for the mobile money markets.
		log.Warn().Str("phone", booking.GuestPhone).Msg("sms delivery not configured, sent email only")
	}

	return dto.SendNotificationResponse{
		BookingID: booking.ID,
		Type:      req.Type,
		Channel:   req.Channel,
		EmailSent: true,
	}, nil
}

func (s *serviceImpl) SendConfirmationEmail(ctx context.Context, bookingID string) error {
	_, err := s.Send(ctx, dto.SendNotificationRequest{
		BookingID: bookingID,
		Type:      dto.TypeConfirmation,
		Channel:   dto.ChannelEmail,
	})

	return err
}

func renderEmail(notificationType string, booking bookingModel.Booking, roomName string) (string, string) {
	var subject, intro string

	switch notificationType {
	case dto.TypeConfirmation:
		subject = "Your booking is confirmed"
		intro = "Your reservation has been confirmed."
	case dto.TypeReminder:
		subject = "Your upcoming stay"
		intro = "This is a reminder of your upcoming reservation."
	case dto.TypeCancellation:
		subject = "Your booking was cancelled"
		intro = "Your reservation has been cancelled."
	}

	guestName := booking.GuestFirstName + " " + booking.GuestLastName

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #d4af37;">%s</h1>
  <p>Dear %s,</p>
  <p>%s</p>
  <div style="background-color: #f5f5f5; padding: 20px; margin: 20px 0; border-radius: 8px;">
    <h2 style="color: #333; margin-top: 0;">Booking details</h2>
    <p><strong>Room:</strong> %s</p>
    <p><strong>Check-in:</strong> %s</p>
    <p><strong>Check-out:</strong> %s</p>
    <p><strong>Guests:</strong> %d adults, %d children</p>
    <p><strong>Total:</strong> %.2f %s</p>
  </div>
  <p>Kind regards,<br>The hotel team</p>
</div>`,
		subject,
		guestName,
		intro,
		roomName,
		booking.CheckInDate.Format(time.DateOnly),
		booking.CheckOutDate.Format(time.DateOnly),
		booking.Adults,
		booking.Children,
		booking.TotalPrice,
		booking.Currency,
	)

	return subject, body
}
