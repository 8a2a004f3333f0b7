package model

import (
	"fmt"
	"slotbook/shared/constant"
	"slotbook/shared/timezone"
	"strconv"
	"strings"
	"time"
)

// MaxCommandTokenLength matches the callback payload limit of chat front-ends.
const MaxCommandTokenLength = 64

type CommandKind string

const (
	CommandStart      CommandKind = "start"
	CommandMyBookings CommandKind = "my"
	CommandDuration   CommandKind = "dur"
	CommandDate       CommandKind = "date"
	CommandBook       CommandKind = "book"
)

const commandSeparator = ":"

// Command is a front-end action decoded from an opaque callback token. Each command carries
// everything needed to execute it, so no per-user conversation state is kept server side.
type Command struct {
	Kind     CommandKind
	Duration time.Duration
	Date     time.Time
	Start    time.Time
}

func StartCommand() Command {
	return Command{Kind: CommandStart}
}

func MyBookingsCommand() Command {
	return Command{Kind: CommandMyBookings}
}

func DurationCommand(duration time.Duration) Command {
	return Command{Kind: CommandDuration, Duration: duration}
}

func DateCommand(date time.Time, duration time.Duration) Command {
	return Command{Kind: CommandDate, Date: timezone.StartOfDay(date), Duration: duration}
}

func BookCommand(start time.Time, duration time.Duration) Command {
	return Command{Kind: CommandBook, Start: timezone.ToAppTime(start), Duration: duration}
}

// Token encodes the command, e.g. "dur:2", "date:2026-10-19:2" or "book:1792998000:2".
func (c Command) Token() string {
	hours := strconv.Itoa(int(c.Duration / time.Hour))

	switch c.Kind {
	case CommandDuration:
		return join(CommandDuration, hours)
	case CommandDate:
		return join(CommandDate, timezone.Format(c.Date, constant.CalendarDate), hours)
	case CommandBook:
		return join(CommandBook, strconv.FormatInt(c.Start.Unix(), 10), hours)
	default:
		return string(c.Kind)
	}
}

func join(kind CommandKind, parts ...string) string {
	return string(kind) + commandSeparator + strings.Join(parts, commandSeparator)
}

// ParseCommand decodes a token produced by Token. Malformed tokens wrap ErrInvalidSlot.
func ParseCommand(token string) (Command, error) {
	if token == "" || len(token) > MaxCommandTokenLength {
		return Command{}, fmt.Errorf("%w: malformed command token", ErrInvalidSlot)
	}

	parts := strings.Split(token, commandSeparator)
	kind := CommandKind(parts[0])
	args := parts[1:]

	switch kind {
	case CommandStart, CommandMyBookings:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: unexpected arguments for %q", ErrInvalidSlot, kind)
		}

		return Command{Kind: kind}, nil
	case CommandDuration:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: %q expects 1 argument", ErrInvalidSlot, kind)
		}

		duration, err := parseHours(args[0])
		if err != nil {
			return Command{}, err
		}

		return DurationCommand(duration), nil
	case CommandDate:
		if len(args) != 2 { //nolint:mnd
			return Command{}, fmt.Errorf("%w: %q expects 2 arguments", ErrInvalidSlot, kind)
		}

		date, err := timezone.Parse(constant.CalendarDate, args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: bad date %q", ErrInvalidSlot, args[0])
		}

		duration, err := parseHours(args[1])
		if err != nil {
			return Command{}, err
		}

		return DateCommand(date, duration), nil
	case CommandBook:
		if len(args) != 2 { //nolint:mnd
			return Command{}, fmt.Errorf("%w: %q expects 2 arguments", ErrInvalidSlot, kind)
		}

		unix, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%w: bad start %q", ErrInvalidSlot, args[0])
		}

		duration, err := parseHours(args[1])
		if err != nil {
			return Command{}, err
		}

		return BookCommand(time.Unix(unix, 0), duration), nil
	default:
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrInvalidSlot, kind)
	}
}

func parseHours(raw string) (time.Duration, error) {
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return 0, fmt.Errorf("%w: bad duration %q", ErrInvalidSlot, raw)
	}

	return time.Duration(hours) * time.Hour, nil
}
