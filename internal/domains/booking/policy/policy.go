// Package policy defines which dates and start times are offerable: the lookahead window, the
// weekday restriction, the minimum lead time and the duration specific start grids.
//
// Everything here is pure. The operating timezone is captured once at construction.
package policy

import (
	"fmt"
	"slices"
	"slotbook/config"
	"slotbook/internal/domains/booking/model"
	"slotbook/shared/constant"
	"slotbook/shared/timezone"
	"time"
)

const (
	defaultLookaheadDays = 14
	defaultLeadTime      = time.Hour
)

type Policy struct {
	location      *time.Location
	lookaheadDays int
	leadTime      time.Duration
	grid          config.Grid
}

func New(cfg *config.Config) Policy {
	lookahead := cfg.Booking.LookaheadDays
	if lookahead <= 0 {
		lookahead = defaultLookaheadDays
	}

	lead := time.Duration(cfg.Booking.LeadTimeMinutes) * time.Minute
	if lead < 0 {
		lead = defaultLeadTime
	}

	return Policy{
		location:      timezone.GetLocation(),
		lookaheadDays: lookahead,
		leadTime:      lead,
		grid:          cfg.Booking.Grid,
	}
}

func (p Policy) Location() *time.Location {
	return p.location
}

func (p Policy) LeadTime() time.Duration {
	return p.leadTime
}

// Durations lists the bookable durations in ascending order.
func (p Policy) Durations() []time.Duration {
	return p.grid.Durations()
}

// AvailableDates returns the weekdays (Monday to Friday) in [now, now+lookahead) as local
// midnights, ascending. Today is included even if all of its slots are already gone.
func (p Policy) AvailableDates(now time.Time) []time.Time {
	today := p.startOfDay(now)
	dates := make([]time.Time, 0, p.lookaheadDays)

	for offset := range p.lookaheadDays {
		day := today.AddDate(0, 0, offset)
		if isWeekday(day) {
			dates = append(dates, day)
		}
	}

	return dates
}

// StartGrid returns the allowed start times for duration, or nil if the duration is not offered.
func (p Policy) StartGrid(duration time.Duration) []config.ClockTime {
	return slices.Clone(p.grid[duration])
}

// Candidates expands the start grid on date into concrete slots in the operating timezone.
func (p Policy) Candidates(date time.Time, duration time.Duration) []model.Slot {
	day := p.startOfDay(date)
	starts := p.grid[duration]
	slots := make([]model.Slot, 0, len(starts))

	for _, clock := range starts {
		start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, p.location)
		slots = append(slots, model.Slot{Start: start, End: start.Add(duration)})
	}

	return slots
}

// BeyondLeadTime reports whether start leaves at least the lead time after now (strictly).
func (p Policy) BeyondLeadTime(start, now time.Time) bool {
	return start.After(now.Add(p.leadTime))
}

// Validate checks that [start,end) is a slot the policy would offer at now. Failures wrap
// model.ErrInvalidSlot.
func (p Policy) Validate(start, end, now time.Time) error {
	duration := end.Sub(start)
	if _, ok := p.grid[duration]; !ok {
		return fmt.Errorf("%w: duration %s is not offered", model.ErrInvalidSlot, duration)
	}

	local := start.In(p.location)
	if !p.onGrid(local, duration) {
		return fmt.Errorf("%w: %s is not a start time for %s bookings", model.ErrInvalidSlot, local.Format(constant.ClockFormat), duration)
	}

	if !p.InWindow(local, now) {
		return fmt.Errorf("%w: %s is outside the booking window", model.ErrInvalidSlot, local.Format(constant.CalendarDate))
	}

	if !p.BeyondLeadTime(start, now) {
		return fmt.Errorf("%w: %s starts too soon", model.ErrInvalidSlot, local.Format(constant.DisplayDateTime))
	}

	return nil
}

// InWindow reports whether date falls on one of AvailableDates(now).
func (p Policy) InWindow(date, now time.Time) bool {
	day := p.startOfDay(date)

	return slices.ContainsFunc(p.AvailableDates(now), day.Equal)
}

func (p Policy) onGrid(local time.Time, duration time.Duration) bool {
	if local.Second() != 0 || local.Nanosecond() != 0 {
		return false
	}

	return slices.Contains(p.grid[duration], config.ClockTime{Hour: local.Hour(), Minute: local.Minute()})
}

func (p Policy) startOfDay(t time.Time) time.Time {
	local := t.In(p.location)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.location)
}

func isWeekday(day time.Time) bool {
	weekday := day.Weekday()

	return weekday != time.Saturday && weekday != time.Sunday
}
