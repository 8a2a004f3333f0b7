package model

import "time"

const EventBookingConfirmed = "booking.confirmed"

// BookingConfirmed is published after a booking has been durably committed.
type BookingConfirmed struct {
	Event     string    `json:"event"`
	BookingID string    `json:"booking_id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

func NewBookingConfirmed(booking Booking) BookingConfirmed {
	return BookingConfirmed{
		Event:     EventBookingConfirmed,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Date:      booking.Date(),
		Start:     booking.StartTime,
		End:       booking.EndTime,
	}
}
