package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slotbook/config"
	"slotbook/infras/kafka"
	"slotbook/infras/otel"
	"slotbook/internal/domains/booking/model"
	"slotbook/internal/domains/booking/policy"
	"slotbook/internal/domains/booking/repository"
	"slotbook/shared/cache"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"slotbook/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheBookingsByDate = "booking:date"
	cacheGeneration     = "gen"
	secondsPerDay       = 24 * 60 * 60
)

var errInvalidUser = failure.BadRequestFromString("user_id must be positive")

type Booking interface {
	AvailableDates(ctx context.Context) []time.Time
	Durations(ctx context.Context) []time.Duration
	AvailableSlots(ctx context.Context, date time.Time, duration time.Duration) ([]model.Slot, error)
	CreateBooking(ctx context.Context, userID int64, start, end time.Time) (model.Booking, error)
	BookingsForUser(ctx context.Context, userID int64) ([]model.Booking, error)
	ExecuteCommand(ctx context.Context, userID int64, command model.Command) (CommandResult, error)
}

type serviceImpl struct {
	repo   repository.Booking
	policy policy.Policy
	clock  timezone.Clock
	cfg    *config.Config
	cache  cache.RedisCache
	kafka  kafka.Client
	otel   otel.Otel
}

func New(repo repository.Booking, clock timezone.Clock, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		policy: policy.New(cfg),
		clock:  clock,
		cfg:    cfg,
		cache:  cache,
		kafka:  kafka,
		otel:   otel,
	}
}

func (s *serviceImpl) AvailableDates(ctx context.Context) []time.Time {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableDates")
	defer scope.End()

	return s.policy.AvailableDates(s.clock.Now())
}

func (s *serviceImpl) Durations(ctx context.Context) []time.Duration {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Durations")
	defer scope.End()

	return s.policy.Durations()
}

// AvailableSlots returns the grid slots on date that overlap no booking and start after the lead
// time, ascending. Dates outside the booking window yield no slots; an unsupported duration is
// an invalid slot.
func (s *serviceImpl) AvailableSlots(ctx context.Context, date time.Time, duration time.Duration) (slots []model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(s.policy.StartGrid(duration)) == 0 {
		return nil, fmt.Errorf("%w: duration %s is not offered", model.ErrInvalidSlot, duration)
	}

	now := s.clock.Now()
	slots = []model.Slot{}

	if !s.policy.InWindow(date, now) {
		return slots, nil
	}

	booked, err := s.bookedIntervals(ctx, timezone.Format(date, constant.CalendarDate))
	if err != nil {
		return nil, err
	}

	for _, candidate := range s.policy.Candidates(date, duration) {
		if !s.policy.BeyondLeadTime(candidate.Start, now) || overlapsAny(candidate, booked) {
			continue
		}

		slots = append(slots, candidate)
	}

	return slots, nil
}

// CreateBooking validates the slot against the calendar policy and commits it. A slot that became
// taken since it was offered fails with model.ErrSlotTaken.
func (s *serviceImpl) CreateBooking(ctx context.Context, userID int64, start, end time.Time) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID <= 0 {
		return model.Booking{}, errInvalidUser
	}

	now := s.clock.Now()

	if err = s.policy.Validate(start, end, now); err != nil {
		return model.Booking{}, err
	}

	booking = model.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		BookingDate: timezone.StartOfDay(start),
		StartTime:   timezone.ToAppTime(start),
		EndTime:     timezone.ToAppTime(end),
		CreatedAt:   now,
	}

	booking, err = s.repo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, model.ErrSlotTaken) {
			log.Info().Int64("user_id", userID).Time("start", start).Msg("slot taken at commit")
		} else {
			log.Error().Err(err).Int64("user_id", userID).Msg("failed to commit booking")
		}

		return model.Booking{}, err
	}

	s.bumpGeneration(ctx, booking.Date())
	cache.InvalidateCaches(ctx, s.cache, dateCacheKey(booking.Date()))
	s.publishConfirmed(ctx, booking)

	log.Info().Str("id", booking.ID).Int64("user_id", userID).Str("date", booking.Date()).
		Str("start", timezone.Format(booking.StartTime, constant.ClockFormat)).
		Str("end", timezone.Format(booking.EndTime, constant.ClockFormat)).
		Msg("booking confirmed")

	return booking, nil
}

// BookingsForUser returns the user's bookings that have not ended yet, in stored order.
func (s *serviceImpl) BookingsForUser(ctx context.Context, userID int64) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingsForUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	now := s.clock.Now()
	bookings = []model.Booking{}

	for _, booking := range all {
		if booking.EndTime.After(now) {
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

// bookedIntervals reads the booked intervals of date through the cache. Cache failures fall back
// to the store.
//
// Snapshots are tagged with the date's generation read before the store, and CreateBooking bumps
// the generation after every commit. A reader that loaded its intervals before a commit therefore
// saves a snapshot that is already outdated and is never served.
func (s *serviceImpl) bookedIntervals(ctx context.Context, date string) ([]model.Interval, error) {
	key := dateCacheKey(date)

	generation, cacheable := s.generation(ctx, date)
	if cacheable {
		var snapshot model.DateSnapshot

		err := s.cache.Get(ctx, key, &snapshot)

		switch {
		case err == nil && snapshot.Generation == generation:
			return snapshot.Intervals, nil
		case err != nil && !errors.Is(err, cache.Nil):
			log.Warn().Err(err).Str("key", key).Msg("failed to read booked intervals from cache")
		}
	}

	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	intervals := model.IntervalsOf(bookings)

	if !cacheable {
		return intervals, nil
	}

	snapshot := model.DateSnapshot{Generation: generation, Intervals: intervals}
	if err = s.cache.Save(ctx, key, snapshot, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache booked intervals")
	}

	return intervals, nil
}

// generation returns the write counter of date. A missing counter is generation zero. When the
// counter cannot be read the cache is bypassed.
func (s *serviceImpl) generation(ctx context.Context, date string) (int64, bool) {
	key := generationCacheKey(date)

	var generation int64

	err := s.cache.Get(ctx, key, &generation)

	switch {
	case err == nil:
		return generation, true
	case errors.Is(err, cache.Nil):
		return 0, true
	default:
		log.Warn().Err(err).Str("key", key).Msg("failed to read cache generation, bypassing cache")

		return 0, false
	}
}

// bumpGeneration outdates every snapshot of date. The counter outlives the booking window so it
// never resets while the date can still be booked.
func (s *serviceImpl) bumpGeneration(ctx context.Context, date string) {
	key := generationCacheKey(date)
	ttl := (s.cfg.Booking.LookaheadDays + 1) * secondsPerDay

	if _, err := s.cache.Increment(ctx, key, ttl); err != nil && !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to bump cache generation")
	}
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	message := kafka.Message{Key: booking.ID, Value: model.NewBookingConfirmed(booking)}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.BookingConfirmed, message); err != nil {
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to publish booking confirmed event")
	}
}

func overlapsAny(slot model.Slot, intervals []model.Interval) bool {
	for _, interval := range intervals {
		if model.Overlaps(slot.Start, slot.End, interval.Start, interval.End) {
			return true
		}
	}

	return false
}

func dateCacheKey(date string) string {
	return cache.BuildCacheKey(cacheBookingsByDate, date)
}

func generationCacheKey(date string) string {
	return cache.BuildCacheKey(cacheBookingsByDate, date, cacheGeneration)
}
