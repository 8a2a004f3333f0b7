package service

import (
	"context"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
	"time"
)

// CommandResult is the typed outcome of a front-end command. Options are the commands the
// front-end can offer next; rendering them (labels, buttons) is left to the front-end.
type CommandResult struct {
	Kind      model.CommandKind
	Durations []time.Duration
	Dates     []time.Time
	Slots     []model.Slot
	Bookings  []model.Booking
	Booking   *model.Booking
	Options   []model.Command
}

// ExecuteCommand runs one step of the booking conversation. Every command carries its own
// parameters, so steps can be replayed or executed out of order.
func (s *serviceImpl) ExecuteCommand(ctx context.Context, userID int64, command model.Command) (result CommandResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExecuteCommand")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("command.kind", string(command.Kind))

	result = CommandResult{Kind: command.Kind}

	switch command.Kind {
	case model.CommandStart:
		result.Durations = s.Durations(ctx)

		for _, duration := range result.Durations {
			result.Options = append(result.Options, model.DurationCommand(duration))
		}

		result.Options = append(result.Options, model.MyBookingsCommand())
	case model.CommandMyBookings:
		result.Bookings, err = s.BookingsForUser(ctx, userID)
		if err != nil {
			return CommandResult{}, err
		}
	case model.CommandDuration:
		if len(s.policy.StartGrid(command.Duration)) == 0 {
			return CommandResult{}, model.ErrInvalidSlot
		}

		result.Durations = []time.Duration{command.Duration}
		result.Dates = s.AvailableDates(ctx)

		for _, date := range result.Dates {
			result.Options = append(result.Options, model.DateCommand(date, command.Duration))
		}
	case model.CommandDate:
		result.Dates = []time.Time{command.Date}

		result.Slots, err = s.AvailableSlots(ctx, command.Date, command.Duration)
		if err != nil {
			return CommandResult{}, err
		}

		for _, slot := range result.Slots {
			result.Options = append(result.Options, model.BookCommand(slot.Start, command.Duration))
		}
	case model.CommandBook:
		booking, err := s.CreateBooking(ctx, userID, command.Start, command.Start.Add(command.Duration))
		if err != nil {
			return CommandResult{}, err
		}

		result.Booking = &booking
		result.Options = []model.Command{model.MyBookingsCommand(), model.StartCommand()}
	default:
		return CommandResult{}, model.ErrInvalidSlot
	}

	return result, nil
}
