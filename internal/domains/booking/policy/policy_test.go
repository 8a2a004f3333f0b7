package policy_test

import (
	"slotbook/config"
	"slotbook/internal/domains/booking/model"
	"slotbook/internal/domains/booking/policy"
	"slotbook/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultGrid = "1h=10:00,11:00,12:00,14:00,15:00,16:00;2h=10:00,11:00,14:00,15:00;3h=10:00,14:00;4h=10:00,14:00"

func newPolicy(t *testing.T) policy.Policy {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.LookaheadDays = 14
	cfg.Booking.LeadTimeMinutes = 60
	require.NoError(t, cfg.Booking.Grid.Decode(defaultGrid))

	return policy.New(cfg)
}

// monday is 2026-10-19, a Monday, in the operating timezone.
func monday(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, timezone.GetLocation())
}

func TestAvailableDates_WeekdaysInWindow(t *testing.T) {
	p := newPolicy(t)
	loc := timezone.GetLocation()

	// Every hour across two weeks, including weekends and midnight edges.
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, loc)
	for step := range 14 * 24 {
		now := base.Add(time.Duration(step) * time.Hour)
		dates := p.AvailableDates(now)

		today := timezone.StartOfDay(now)
		limit := today.AddDate(0, 0, 14)

		for i, date := range dates {
			assert.NotEqual(t, time.Saturday, date.Weekday())
			assert.NotEqual(t, time.Sunday, date.Weekday())
			assert.False(t, date.Before(today), "date %s before today %s", date, today)
			assert.True(t, date.Before(limit), "date %s outside window", date)

			if i > 0 {
				assert.True(t, dates[i-1].Before(date), "dates not strictly ascending")
			}
		}

		assert.Len(t, dates, 10, "two full weeks always hold ten weekdays (now=%s)", now)
	}
}

func TestAvailableDates_FromMonday(t *testing.T) {
	p := newPolicy(t)

	dates := p.AvailableDates(monday(9, 0))

	require.Len(t, dates, 10)
	assert.Equal(t, monday(0, 0), dates[0])
	assert.Equal(t, time.Date(2026, 10, 23, 0, 0, 0, 0, timezone.GetLocation()), dates[4])
	assert.Equal(t, time.Date(2026, 10, 26, 0, 0, 0, 0, timezone.GetLocation()), dates[5])
	assert.Equal(t, time.Date(2026, 10, 30, 0, 0, 0, 0, timezone.GetLocation()), dates[9])
}

func TestAvailableDates_Restartable(t *testing.T) {
	p := newPolicy(t)
	now := monday(12, 30)

	assert.Equal(t, p.AvailableDates(now), p.AvailableDates(now))
}

func TestStartGrid(t *testing.T) {
	p := newPolicy(t)

	tests := []struct {
		duration time.Duration
		want     []config.ClockTime
	}{
		{duration: time.Hour, want: []config.ClockTime{{Hour: 10}, {Hour: 11}, {Hour: 12}, {Hour: 14}, {Hour: 15}, {Hour: 16}}},
		{duration: 2 * time.Hour, want: []config.ClockTime{{Hour: 10}, {Hour: 11}, {Hour: 14}, {Hour: 15}}},
		{duration: 3 * time.Hour, want: []config.ClockTime{{Hour: 10}, {Hour: 14}}},
		{duration: 4 * time.Hour, want: []config.ClockTime{{Hour: 10}, {Hour: 14}}},
		{duration: 5 * time.Hour, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.duration.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.StartGrid(tt.duration))
		})
	}

	assert.Equal(t, []time.Duration{time.Hour, 2 * time.Hour, 3 * time.Hour, 4 * time.Hour}, p.Durations())
}

func TestCandidates(t *testing.T) {
	p := newPolicy(t)

	slots := p.Candidates(monday(18, 0), 3*time.Hour)

	assert.Equal(t, []model.Slot{
		{Start: monday(10, 0), End: monday(13, 0)},
		{Start: monday(14, 0), End: monday(17, 0)},
	}, slots)
	assert.Empty(t, p.Candidates(monday(0, 0), 90*time.Minute))
}

func TestValidate(t *testing.T) {
	p := newPolicy(t)
	now := monday(9, 0)

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    bool
	}{
		{name: "grid slot", start: monday(11, 0), end: monday(12, 0)},
		{name: "four hour slot", start: monday(14, 0), end: monday(18, 0)},
		{name: "next week friday", start: time.Date(2026, 10, 30, 16, 0, 0, 0, timezone.GetLocation()), end: time.Date(2026, 10, 30, 17, 0, 0, 0, timezone.GetLocation())},
		{name: "same instant in UTC", start: monday(11, 0).UTC(), end: monday(12, 0).UTC()},
		{name: "off grid start", start: monday(13, 0), end: monday(14, 0), wantErr: true},
		{name: "grid start wrong for duration", start: monday(12, 0), end: monday(14, 0), wantErr: true},
		{name: "unsupported duration", start: monday(10, 0), end: monday(15, 0), wantErr: true},
		{name: "reversed interval", start: monday(12, 0), end: monday(11, 0), wantErr: true},
		{name: "seconds off grid", start: monday(11, 0).Add(time.Second), end: monday(12, 0).Add(time.Second), wantErr: true},
		{name: "within lead time", start: monday(10, 0), end: monday(11, 0), wantErr: true},
		{name: "saturday", start: time.Date(2026, 10, 24, 10, 0, 0, 0, timezone.GetLocation()), end: time.Date(2026, 10, 24, 11, 0, 0, 0, timezone.GetLocation()), wantErr: true},
		{name: "beyond lookahead", start: time.Date(2026, 11, 2, 10, 0, 0, 0, timezone.GetLocation()), end: time.Date(2026, 11, 2, 11, 0, 0, 0, timezone.GetLocation()), wantErr: true},
		{name: "in the past", start: time.Date(2026, 10, 16, 10, 0, 0, 0, timezone.GetLocation()), end: time.Date(2026, 10, 16, 11, 0, 0, 0, timezone.GetLocation()), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(tt.start, tt.end, now)

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidSlot)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBeyondLeadTime(t *testing.T) {
	p := newPolicy(t)
	now := monday(9, 0)

	assert.False(t, p.BeyondLeadTime(monday(10, 0), now), "exactly the lead time is not enough")
	assert.True(t, p.BeyondLeadTime(monday(10, 0), now.Add(-time.Nanosecond)))
	assert.Equal(t, time.Hour, p.LeadTime())
}

func TestNew_Defaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Booking.LeadTimeMinutes = -5
	require.NoError(t, cfg.Booking.Grid.Decode("1h=10:00"))

	p := policy.New(cfg)

	assert.Equal(t, time.Hour, p.LeadTime())
	assert.Len(t, p.AvailableDates(monday(9, 0)), 10)
	assert.Equal(t, timezone.GetLocation(), p.Location())
}
