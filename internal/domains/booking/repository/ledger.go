package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
	"slotbook/shared/timezone"
	"time"
)

var errLedgerContention = errors.New("ledger kept changing while committing, giving up")

// record is the on-disk shape of a booking in the JSON ledger used by the file and s3 drivers.
type record struct {
	ID        string    `json:"id,omitempty"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func decodeLedger(data []byte) ([]model.Booking, error) {
	bookings := []model.Booking{}

	if len(data) == 0 {
		return bookings, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode booking ledger: %w", err)
	}

	for _, rec := range records {
		date, err := timezone.Parse(constant.CalendarDate, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to decode booking ledger: bad date %q: %w", rec.Date, err)
		}

		bookings = append(bookings, model.Booking{
			ID:          rec.ID,
			UserID:      rec.UserID,
			BookingDate: date,
			StartTime:   timezone.ToAppTime(rec.Start),
			EndTime:     timezone.ToAppTime(rec.End),
			CreatedAt:   rec.CreatedAt,
		})
	}

	return bookings, nil
}

func encodeLedger(bookings []model.Booking) ([]byte, error) {
	records := make([]record, 0, len(bookings))

	for _, booking := range bookings {
		records = append(records, record{
			ID:        booking.ID,
			UserID:    booking.UserID,
			Date:      booking.Date(),
			Start:     timezone.ToAppTime(booking.StartTime),
			End:       timezone.ToAppTime(booking.EndTime),
			CreatedAt: booking.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking ledger: %w", err)
	}

	return data, nil
}

// appendIfFree returns bookings with booking appended, or model.ErrSlotTaken if it overlaps an
// existing booking on the same date. The input slice is never modified.
func appendIfFree(bookings []model.Booking, booking model.Booking) ([]model.Booking, error) {
	date := booking.Date()

	for _, existing := range bookings {
		if existing.Date() == date && existing.Overlaps(booking.StartTime, booking.EndTime) {
			return nil, fmt.Errorf("%w: %s overlaps booking %s", model.ErrSlotTaken,
				timezone.Format(booking.StartTime, constant.DisplayDateTime), existing.ID)
		}
	}

	next := make([]model.Booking, 0, len(bookings)+1)
	next = append(next, bookings...)

	return append(next, booking), nil
}

func filterByDate(bookings []model.Booking, date string) []model.Booking {
	filtered := []model.Booking{}

	for _, booking := range bookings {
		if booking.Date() == date {
			filtered = append(filtered, booking)
		}
	}

	return filtered
}

func filterByUser(bookings []model.Booking, userID int64) []model.Booking {
	filtered := []model.Booking{}

	for _, booking := range bookings {
		if booking.UserID == userID {
			filtered = append(filtered, booking)
		}
	}

	return filtered
}
