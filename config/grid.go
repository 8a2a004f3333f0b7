package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var errEmptyGrid = errors.New("booking grid must contain at least one duration")

// ClockTime is a wall-clock start time within a day.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Grid maps a booking duration to the start times offered for it.
//
// It is decoded from a string of the form
//
//	1h=10:00,11:00,12:00;2h=10:00,14:00
//
// where every duration is a whole number of hours.
type Grid map[time.Duration][]ClockTime

// Decode implements envconfig.Decoder.
func (g *Grid) Decode(value string) error {
	grid := Grid{}

	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, times, found := strings.Cut(entry, "=")
		if !found {
			return fmt.Errorf("invalid grid entry %q: missing '='", entry)
		}

		duration, err := time.ParseDuration(strings.TrimSpace(key))
		if err != nil {
			return fmt.Errorf("invalid grid duration %q: %w", key, err)
		}

		if duration <= 0 || duration%time.Hour != 0 {
			return fmt.Errorf("invalid grid duration %q: must be a positive number of hours", key)
		}

		starts := []ClockTime{}

		for _, raw := range strings.Split(times, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}

			parsed, err := time.Parse("15:04", raw)
			if err != nil {
				return fmt.Errorf("invalid grid start %q: %w", raw, err)
			}

			starts = append(starts, ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute()})
		}

		if len(starts) == 0 {
			return fmt.Errorf("invalid grid entry %q: no start times", entry)
		}

		slices.SortFunc(starts, func(a, b ClockTime) int {
			return (a.Hour*60 + a.Minute) - (b.Hour*60 + b.Minute)
		})

		grid[duration] = slices.Compact(starts)
	}

	if len(grid) == 0 {
		return errEmptyGrid
	}

	*g = grid

	return nil
}

// Durations returns the configured durations in ascending order.
func (g Grid) Durations() []time.Duration {
	durations := make([]time.Duration, 0, len(g))
	for duration := range g {
		durations = append(durations, duration)
	}

	slices.Sort(durations)

	return durations
}
