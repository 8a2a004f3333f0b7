package booking

import (
	"net/http"
	"slotbook/infras/otel"
	"slotbook/internal/domains/booking/model"
	"slotbook/internal/domains/booking/model/dto"
	"slotbook/internal/domains/booking/service"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"slotbook/shared/validator"
	"slotbook/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dates", handler.GetDates)
	router.Get("/durations", handler.GetDurations)
	router.Get("/slots", handler.GetSlots)
	router.Post("/bookings", handler.CreateBooking)
	router.Get("/users/{user_id}/bookings", handler.GetUserBookings)
	router.Post("/commands", handler.ExecuteCommand)
}

// GetDates lists the dates that can currently be booked.
// @Summary List bookable dates
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.DateResponse]
// @Router /v1/dates [get]
func (handler *Handler) GetDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDates")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.NewDatesResponse(handler.service.AvailableDates(ctx)))
}

// GetDurations lists the offered booking durations.
// @Summary List booking durations
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.DurationResponse]
// @Router /v1/durations [get]
func (handler *Handler) GetDurations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDurations")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.NewDurationsResponse(handler.service.Durations(ctx)))
}

// GetSlots lists the free slots for a date and duration.
// @Summary List free slots
// @Tags Booking
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param duration query int true "Duration in hours"
// @Success 200 {object} response.Data[[]dto.SlotResponse]
// @Failure 400 {object} response.Error
// @Router /v1/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	query := request.URL.Query()
	req := dto.SlotsQuery{Date: query.Get(constant.RequestParamDate)}

	if raw := query.Get(constant.RequestParamDuration); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("duration must be a whole number of hours"))

			return
		}

		req.Duration = duration
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	date, duration, err := req.ToDate()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	slots, err := handler.service.AvailableSlots(ctx, date, duration)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Int("duration", req.Duration).Msg("failed to list slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewSlotsResponse(slots))
}

// CreateBooking books a slot for a user.
// @Summary Book a slot
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Slot already booked"
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	start, end, err := req.Interval()
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.CreateBooking(ctx, req.UserID, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", req.UserID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.ID + " created")

	response.WithJSON(writer, http.StatusCreated, dto.NewBookingResponse(booking))
}

// GetUserBookings lists a user's upcoming bookings.
// @Summary List a user's bookings
// @Tags Booking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} response.Data[[]dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Router /v1/users/{user_id}/bookings [get]
func (handler *Handler) GetUserBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserBookings")
	defer scope.End()

	userID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamUserID), 10, 64)
	if err != nil || userID <= 0 {
		response.WithError(writer, failure.BadRequestFromString("user_id must be a positive number"))

		return
	}

	bookings, err := handler.service.BookingsForUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewBookingsResponse(bookings))
}

// ExecuteCommand runs one step of the chat booking conversation.
// @Summary Execute a conversation command
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CommandRequest true "Command Request"
// @Success 200 {object} response.Data[dto.CommandResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Slot already booked"
// @Router /v1/commands [post]
func (handler *Handler) ExecuteCommand(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExecuteCommand")
	defer scope.End()

	req := dto.CommandRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	command, err := model.ParseCommand(req.Token)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	result, err := handler.service.ExecuteCommand(ctx, req.UserID, command)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", req.UserID).Str("token", req.Token).Msg("failed to execute command")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, newCommandResponse(result))
}

func newCommandResponse(result service.CommandResult) dto.CommandResponse {
	res := dto.CommandResponse{
		Kind:    string(result.Kind),
		Options: make([]string, 0, len(result.Options)),
	}

	if len(result.Durations) > 0 {
		res.Durations = dto.NewDurationsResponse(result.Durations)
	}

	if len(result.Dates) > 0 {
		res.Dates = dto.NewDatesResponse(result.Dates)
	}

	if len(result.Slots) > 0 {
		res.Slots = dto.NewSlotsResponse(result.Slots)
	}

	if result.Kind == model.CommandMyBookings {
		res.Bookings = dto.NewBookingsResponse(result.Bookings)
	}

	if result.Booking != nil {
		booking := dto.NewBookingResponse(*result.Booking)
		res.Booking = &booking
	}

	for _, option := range result.Options {
		res.Options = append(res.Options, option.Token())
	}

	return res
}
