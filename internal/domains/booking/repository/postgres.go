package repository

import (
	"context"
	"errors"
	"fmt"
	"slotbook/infras/otel"
	"slotbook/infras/postgres"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
	gDto "slotbook/shared/dto"
	"slotbook/shared/logger"
	gRepo "slotbook/shared/repository"

	"github.com/lib/pq"
)

const (
	advisoryLockQuery  = "SELECT pg_advisory_xact_lock(hashtext($1))"
	advisoryLockPrefix = "bookings:"

	argNewStart = "new_start"
	argNewEnd   = "new_end"
)

type postgresStore struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otl otel.Otel) Booking {
	return &postgresStore{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (s *postgresStore) List(ctx context.Context) ([]model.Booking, error) {
	return s.GetAll(ctx, storedOrder(), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (s *postgresStore) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingDate, Value: date, Operator: gDto.FilterOperatorEq},
		},
	}

	return s.GetAll(ctx, storedOrder(), filter) //nolint:wrapcheck
}

func (s *postgresStore) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq},
		},
	}

	return s.GetAll(ctx, storedOrder(), filter) //nolint:wrapcheck
}

// Create serializes commits per date with a transaction scoped advisory lock, then re-checks
// overlap and inserts. The exclusion constraint on the table backs this up for writers that
// bypass the lock.
func (s *postgresStore) Create(ctx context.Context, booking model.Booking) (created model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date := booking.Date()

	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, advisoryLockQuery, advisoryLockPrefix+date); err != nil {
		return model.Booking{}, fmt.Errorf("failed to lock booking date %s: %w", date, err)
	}

	taken, err := s.ExistTx(ctx, tx, overlapFilter(booking))
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	if taken {
		err = fmt.Errorf("%w: %s", model.ErrSlotTaken, booking.StartTime.Format(constant.DateFormat))

		return model.Booking{}, err
	}

	if err = s.InsertTx(ctx, tx, booking); err != nil {
		return model.Booking{}, mapConstraintError(err)
	}

	if err = tx.Commit(); err != nil {
		return model.Booking{}, mapConstraintError(fmt.Errorf("failed to commit booking: %w", err))
	}

	return booking, nil
}

// overlapFilter matches bookings on the same date whose [start,end) intersects the new one.
func overlapFilter(booking model.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingDate, Value: booking.Date(), Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStartTime, ArgName: argNewEnd, Value: booking.EndTime, Operator: gDto.FilterOperatorLess},
			gDto.Filter{Field: model.FieldEndTime, ArgName: argNewStart, Value: booking.StartTime, Operator: gDto.FilterOperatorGreater},
		},
	}
}

func storedOrder() gDto.QueryParams {
	return gDto.OrderedBy(model.FieldCreatedAt, model.FieldID)
}

func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation:
			return fmt.Errorf("%w: %s", model.ErrSlotTaken, pqErr.Constraint)
		}
	}

	return err
}
