package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbook/internal/domains/booking/model"
)

func TestExecuteCommand_BookingConversation(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := newService(t, store, monday(8, 30))

	start, err := svc.ExecuteCommand(ctx, 3, model.StartCommand())
	require.NoError(t, err)
	assert.Equal(t, model.CommandStart, start.Kind)
	assert.Equal(t, []model.Command{
		model.DurationCommand(time.Hour),
		model.DurationCommand(2 * time.Hour),
		model.DurationCommand(3 * time.Hour),
		model.DurationCommand(4 * time.Hour),
		model.MyBookingsCommand(),
	}, start.Options)

	// Every option must survive the token round trip the front-end performs.
	for _, option := range start.Options {
		parsed, err := model.ParseCommand(option.Token())
		require.NoError(t, err)
		assert.Equal(t, option, parsed)
	}

	duration, err := svc.ExecuteCommand(ctx, 3, start.Options[1])
	require.NoError(t, err)
	require.Len(t, duration.Dates, 10)
	require.Len(t, duration.Options, 10)
	assert.Equal(t, model.DateCommand(monday(0, 0), 2*time.Hour), duration.Options[0])

	date, err := svc.ExecuteCommand(ctx, 3, duration.Options[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00", "14:00", "15:00"}, starts(date.Slots))
	require.Len(t, date.Options, 4)
	assert.Equal(t, model.BookCommand(monday(14, 0), 2*time.Hour), date.Options[2])

	book, err := svc.ExecuteCommand(ctx, 3, date.Options[2])
	require.NoError(t, err)
	require.NotNil(t, book.Booking)
	assert.Equal(t, int64(3), book.Booking.UserID)
	assert.True(t, book.Booking.StartTime.Equal(monday(14, 0)))
	assert.True(t, book.Booking.EndTime.Equal(monday(16, 0)))

	_, err = svc.ExecuteCommand(ctx, 4, date.Options[2])
	assert.ErrorIs(t, err, model.ErrSlotTaken, "a stale slot list must not allow a double booking")

	my, err := svc.ExecuteCommand(ctx, 3, model.MyBookingsCommand())
	require.NoError(t, err)
	require.Len(t, my.Bookings, 1)
	assert.Equal(t, book.Booking.ID, my.Bookings[0].ID)

	again, err := svc.ExecuteCommand(ctx, 3, duration.Options[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00"}, starts(again.Slots))
}

func TestExecuteCommand_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, newFileStore(t), monday(8, 30))

	tests := []struct {
		name    string
		command model.Command
	}{
		{name: "unknown kind", command: model.Command{Kind: "cancel"}},
		{name: "unsupported duration", command: model.DurationCommand(5 * time.Hour)},
		{name: "date with unsupported duration", command: model.DateCommand(monday(0, 0), 6*time.Hour)},
		{name: "book off grid", command: model.BookCommand(monday(13, 0), time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ExecuteCommand(ctx, 1, tt.command)

			assert.ErrorIs(t, err, model.ErrInvalidSlot)
		})
	}
}
