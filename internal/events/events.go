// Package events publishes domain events to Kafka and runs the consumers
// that react to them.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"riviera/infras/kafka"
	"riviera/infras/otel"
	"riviera/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
)

type BookingConfirmed struct {
	BookingID      string    `json:"booking_id"`
	RoomID         string    `json:"room_id"`
	RoomName       string    `json:"room_name"`
	UnitID         string    `json:"unit_id"`
	GuestFirstName string    `json:"guest_first_name"`
	GuestLastName  string    `json:"guest_last_name"`
	GuestEmail     string    `json:"guest_email"`
	CheckInDate    time.Time `json:"check_in_date"`
	CheckOutDate   time.Time `json:"check_out_date"`
	TotalPrice     float64   `json:"total_price"`
	Currency       string    `json:"currency"`
}

type BookingCancelled struct {
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	GuestEmail string `json:"guest_email"`
	Reason     string `json:"reason"`
}

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	PublishBookingCancelled(ctx context.Context, event BookingCancelled) error
}

type publisherImpl struct {
	kafka kafka.Client
	otel  otel.Otel
}

func NewPublisher(kafka kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		kafka: kafka,
		otel:  otel,
	}
}

func (p *publisherImpl) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = p.kafka.SendMessages(ctx, TopicBookingConfirmed, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish booking confirmed event")

		return fmt.Errorf("failed to publish booking confirmed event: %w", err)
	}

	return nil
}

func (p *publisherImpl) PublishBookingCancelled(ctx context.Context, event BookingCancelled) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishBookingCancelled")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = p.kafka.SendMessages(ctx, TopicBookingCancelled, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to publish booking cancelled event")

		return fmt.Errorf("failed to publish booking cancelled event: %w", err)
	}

	return nil
}
