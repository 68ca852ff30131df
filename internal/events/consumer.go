package events

import (
	"context"

	"riviera/infras/kafka"
	notificationService "riviera/internal/domains/notification/service"
	"riviera/shared"
	"riviera/shared/cache"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer reacts to booking events: it sends the guest emails and drops the
// availability caches that the event invalidated.
type Consumer struct {
	kafka        kafka.Client
	notification notificationService.Notification
	cache        cache.RedisCache
}

func NewConsumer(kafka kafka.Client, notification notificationService.Notification, cache cache.RedisCache) *Consumer {
	return &Consumer{
		kafka:        kafka,
		notification: notification,
		cache:        cache,
	}
}

// Start runs the consumers until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	go c.kafka.Consume(ctx, "", TopicBookingConfirmed, c.handleBookingConfirmed(ctx))
	go c.kafka.Consume(ctx, "", TopicBookingCancelled, c.handleBookingCancelled(ctx))
}

func (c *Consumer) handleBookingConfirmed(ctx context.Context) func(kafkaGo.Message) {
	return func(msg kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[BookingConfirmed](msg)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode booking confirmed event")

			return
		}

		event, ok := decoded.Value.(BookingConfirmed)
		if !ok {
			log.Error().Msg("unexpected booking confirmed payload")

			return
		}

		shared.InvalidateCaches(ctx, c.cache, "unit:")
		shared.InvalidateCaches(ctx, c.cache, "room:")

		if err := c.notification.SendConfirmationEmail(ctx, event.BookingID); err != nil {
			log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to send confirmation email")
		}
	}
}

func (c *Consumer) handleBookingCancelled(ctx context.Context) func(kafkaGo.Message) {
	return func(msg kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[BookingCancelled](msg)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode booking cancelled event")

			return
		}

		event, ok := decoded.Value.(BookingCancelled)
		if !ok {
			log.Error().Msg("unexpected booking cancelled payload")

			return
		}

		shared.InvalidateCaches(ctx, c.cache, "booking:")

		log.Info().Str("bookingID", event.BookingID).Str("reason", event.Reason).Msg("booking cancelled")
	}
}
