package model

import (
	"net/http"
	"slotbook/shared/failure"
)

var (
	// ErrSlotTaken is returned when a booking overlaps one already confirmed on the same date.
	// Callers re-query availability; it is never retried automatically.
	ErrSlotTaken = &failure.Failure{Code: http.StatusConflict, Message: "slot is already booked"}

	// ErrInvalidSlot is returned for a start/duration that is not offerable under the calendar policy.
	ErrInvalidSlot = &failure.Failure{Code: http.StatusBadRequest, Message: "invalid slot"}
)
