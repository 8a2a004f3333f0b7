package dto

import (
	"fmt"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"slotbook/shared/timezone"
	"time"
)

type SlotsQuery struct {
	Date     string `json:"date"     validate:"required,calendar_date"`
	Duration int    `json:"duration" validate:"required,gte=1,lte=24"`
}

func (q *SlotsQuery) ToDate() (time.Time, time.Duration, error) {
	date, err := timezone.Parse(constant.CalendarDate, q.Date)
	if err != nil {
		return time.Time{}, 0, failure.BadRequest(err) //nolint:wrapcheck
	}

	return date, time.Duration(q.Duration) * time.Hour, nil
}

type CreateBookingRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Start  string `json:"start"   validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End    string `json:"end"     validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// Interval parses start and end. Both must carry an explicit offset.
func (c *CreateBookingRequest) Interval() (time.Time, time.Time, error) {
	start, err := time.Parse(constant.DateFormat, c.Start)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(fmt.Errorf("start: %w", err)) //nolint:wrapcheck
	}

	end, err := time.Parse(constant.DateFormat, c.End)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequest(fmt.Errorf("end: %w", err)) //nolint:wrapcheck
	}

	return start, end, nil
}

type CommandRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Token  string `json:"token"   validate:"required,max=64"`
}

type DateResponse struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Label   string `json:"label"`
}

func NewDateResponse(date time.Time) DateResponse {
	local := timezone.ToAppTime(date)

	return DateResponse{
		Date:    local.Format(constant.CalendarDate),
		Weekday: local.Weekday().String(),
		Label:   local.Format("02.01 Mon"),
	}
}

func NewDatesResponse(dates []time.Time) []DateResponse {
	res := make([]DateResponse, 0, len(dates))
	for _, date := range dates {
		res = append(res, NewDateResponse(date))
	}

	return res
}

type DurationResponse struct {
	Hours int    `json:"hours"`
	Label string `json:"label"`
}

func NewDurationsResponse(durations []time.Duration) []DurationResponse {
	res := make([]DurationResponse, 0, len(durations))
	for _, duration := range durations {
		hours := int(duration / time.Hour)
		res = append(res, DurationResponse{Hours: hours, Label: fmt.Sprintf("%d h", hours)})
	}

	return res
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

func NewSlotsResponse(slots []model.Slot) []SlotResponse {
	res := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		res = append(res, SlotResponse{
			Start: timezone.ToAppTime(slot.Start),
			End:   timezone.ToAppTime(slot.End),
			Label: intervalLabel(slot.Start, slot.End),
		})
	}

	return res
}

type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func NewBookingResponse(booking model.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID,
		UserID:    booking.UserID,
		Date:      booking.Date(),
		Start:     timezone.ToAppTime(booking.StartTime),
		End:       timezone.ToAppTime(booking.EndTime),
		Label:     timezone.Format(booking.StartTime, "02.01 ") + intervalLabel(booking.StartTime, booking.EndTime),
		CreatedAt: booking.CreatedAt,
	}
}

func NewBookingsResponse(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		res = append(res, NewBookingResponse(booking))
	}

	return res
}

type CommandResponse struct {
	Kind      string             `json:"kind"`
	Durations []DurationResponse `json:"durations,omitempty"`
	Dates     []DateResponse     `json:"dates,omitempty"`
	Slots     []SlotResponse     `json:"slots,omitempty"`
	Bookings  []BookingResponse  `json:"bookings,omitzero"`
	Booking   *BookingResponse   `json:"booking,omitempty"`
	Options   []string           `json:"options"`
}

func intervalLabel(start, end time.Time) string {
	return timezone.Format(start, constant.ClockFormat) + "-" + timezone.Format(end, constant.ClockFormat)
}
