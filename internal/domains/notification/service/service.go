// Package service turns booking events into notices for the provider's admin.
package service

import (
	"context"
	"fmt"
	"slotbook/config"
	"slotbook/infras/kafka"
	"slotbook/infras/otel"
	bookingModel "slotbook/internal/domains/booking/model"
	"slotbook/internal/domains/notification/model"
	"slotbook/shared/constant"
	"slotbook/shared/timezone"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Notification interface {
	// Run consumes booking events until ctx is cancelled.
	Run(ctx context.Context)
	// NotifyBookingConfirmed renders the admin notice for event. It reports false when no admin
	// is configured.
	NotifyBookingConfirmed(ctx context.Context, event bookingModel.BookingConfirmed) (model.Notice, bool)
}

type serviceImpl struct {
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, otel otel.Otel) Notification {
	return &serviceImpl{
		cfg:   cfg,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Run(ctx context.Context) {
	topic := s.cfg.Kafka.Topic.BookingConfirmed

	log.Info().Str("topic", topic).Int64("admin_id", s.cfg.Booking.AdminID).Msg("Notifier started")

	s.kafka.Consume(ctx, s.cfg.Kafka.ConsumerGroup, topic, s.handle)
}

func (s *serviceImpl) handle(ctx context.Context, message kafkaGo.Message) {
	_, event, err := kafka.DecodeKafkaMessage[bookingModel.BookingConfirmed](message)
	if err != nil {
		log.Error().Err(err).Str("key", string(message.Key)).Msg("skipping undecodable booking event")

		return
	}

	if event.Event != bookingModel.EventBookingConfirmed {
		log.Warn().Str("event", event.Event).Msg("skipping unknown event")

		return
	}

	s.NotifyBookingConfirmed(ctx, event)
}

func (s *serviceImpl) NotifyBookingConfirmed(ctx context.Context, event bookingModel.BookingConfirmed) (model.Notice, bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".NotifyBookingConfirmed")
	defer scope.End()

	adminID := s.cfg.Booking.AdminID
	if adminID == 0 {
		return model.Notice{}, false
	}

	notice := model.Notice{
		RecipientID: adminID,
		Text: fmt.Sprintf("New booking from user %d on %s-%s.",
			event.UserID,
			timezone.Format(event.Start, constant.DisplayDateTime),
			timezone.Format(event.End, constant.ClockFormat),
		),
	}

	log.Info().
		Int64("recipient_id", notice.RecipientID).
		Str("booking_id", event.BookingID).
		Str("text", notice.Text).
		Msg("admin notice")

	return notice, true
}
