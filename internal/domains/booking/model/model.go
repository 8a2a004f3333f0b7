package model

import (
	"slotbook/shared/constant"
	"slotbook/shared/timezone"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldBookingDate = "booking_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldCreatedAt   = "created_at"
)

// Booking is a confirmed reservation of a slot. Bookings are immutable once created.
type Booking struct {
	ID          string    `db:"id"`
	UserID      int64     `db:"user_id"`
	BookingDate time.Time `db:"booking_date"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	CreatedAt   time.Time `db:"created_at"`
}

// Date is the calendar date of the booking in the operating timezone, as YYYY-MM-DD.
func (b Booking) Date() string {
	return timezone.Format(b.StartTime, constant.CalendarDate)
}

func (b Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Overlaps reports whether [start,end) intersects the booking's half-open interval.
func (b Booking) Overlaps(start, end time.Time) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}

// Overlaps is the half-open interval test used both when offering slots and when committing.
// Touching intervals (one ends exactly when the other starts) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Slot is a candidate interval eligible for booking.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Interval is the part of a booking the slot generator needs; it is what gets cached per date.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateSnapshot is the cached view of one date's booked intervals. Generation is the value of the
// date's write counter observed before the intervals were read; a snapshot is only served while
// the counter still has that value.
type DateSnapshot struct {
	Generation int64      `json:"generation"`
	Intervals  []Interval `json:"intervals"`
}

func IntervalsOf(bookings []Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, booking := range bookings {
		intervals = append(intervals, Interval{Start: booking.StartTime, End: booking.EndTime})
	}

	return intervals
}
