package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slotbook/config"
	"slotbook/infras/otel"
	"slotbook/infras/postgres"
	"slotbook/infras/s3"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
)

// Booking is the durable, append-only collection of confirmed bookings.
//
// Create is the only mutation. It re-checks overlap against the committed state and persists
// atomically, so of two concurrent Creates for overlapping intervals exactly one succeeds and
// the other returns model.ErrSlotTaken.
type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Booking, error)
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
}

// New builds the store selected by BOOKING_STORE_DRIVER.
func New(cfg *config.Config, otl otel.Otel) (Booking, error) {
	store := cfg.Booking.Store

	switch store.Driver {
	case config.StoreDriverFile, constant.Empty:
		return NewFile(store.FilePath, otl), nil
	case config.StoreDriverPostgres:
		db, err := postgres.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("booking store: %w", err)
		}

		return NewPostgres(db, otl), nil
	case config.StoreDriverS3:
		return NewS3(s3.New(cfg, otl), store.ObjectKey, store.MaxRetry, otl), nil
	default:
		return nil, fmt.Errorf("booking store: unknown driver %q", store.Driver)
	}
}
