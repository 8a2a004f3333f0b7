package repository

import (
	"context"
	"errors"
	"fmt"
	"slotbook/infras/otel"
	"slotbook/infras/s3"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"

	"github.com/rs/zerolog/log"
)

const defaultMaxRetry = 5

// s3Store keeps the ledger as a single object. Commits are compare-and-swap on the object's
// ETag; when another writer got there first the ledger is re-read and the overlap check runs
// again against the fresh state.
type s3Store struct {
	client   s3.S3
	key      string
	maxRetry int
	otel     otel.Otel
}

func NewS3(client s3.S3, key string, maxRetry int, otl otel.Otel) Booking {
	if maxRetry <= 0 {
		maxRetry = defaultMaxRetry
	}

	return &s3Store{client: client, key: key, maxRetry: maxRetry, otel: otl}
}

func (s *s3Store) List(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".s3.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, _, err = s.load(ctx)

	return bookings, err
}

func (s *s3Store) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return filterByDate(bookings, date), nil
}

func (s *s3Store) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return filterByUser(bookings, userID), nil
}

func (s *s3Store) Create(ctx context.Context, booking model.Booking) (created model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".s3.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for attempt := range s.maxRetry {
		bookings, etag, err := s.load(ctx)
		if err != nil {
			return model.Booking{}, err
		}

		next, err := appendIfFree(bookings, booking)
		if err != nil {
			return model.Booking{}, err
		}

		body, err := encodeLedger(next)
		if err != nil {
			return model.Booking{}, err
		}

		_, err = s.client.PutObject(ctx, s.key, etag, constant.ContentTypeJSON, body)
		if errors.Is(err, s3.ErrPreconditionFailed) {
			log.Debug().Int("attempt", attempt+1).Str("key", s.key).Msg("booking ledger changed concurrently, retrying")

			continue
		}

		if err != nil {
			return model.Booking{}, fmt.Errorf("failed to commit booking ledger: %w", err)
		}

		return booking, nil
	}

	return model.Booking{}, errLedgerContention
}

func (s *s3Store) load(ctx context.Context) ([]model.Booking, string, error) {
	object, err := s.client.GetObject(ctx, s.key)
	if errors.Is(err, s3.ErrNotFound) {
		return []model.Booking{}, constant.Empty, nil
	}

	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to load booking ledger: %w", err)
	}

	bookings, err := decodeLedger(object.Body)
	if err != nil {
		return nil, constant.Empty, err
	}

	return bookings, object.ETag, nil
}
