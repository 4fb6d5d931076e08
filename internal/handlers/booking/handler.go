package booking

import (
	"net/http"
	"village/infras/otel"
	"village/internal/domains/booking/model/dto"
	"village/internal/domains/booking/service"
	"village/shared/constant"
	"village/shared/failure"
	"village/shared/validator"
	"village/transport/http/response"

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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/book-now", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{bookingId}", handler.GetBookingByID)
		routerGroup.Patch("/{bookingId}/accept", handler.AcceptBooking)
	})
}

// CreateBooking books a service for the authenticated buyer.
// @Summary Book a service
// @Description Create a pending booking for a service on a future date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} response.Envelope "Booking created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings/book-now [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return
	}

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + user)

	response.WithData(w, http.StatusCreated, "Booking created successfully", booking)
}

// GetBookings lists the authenticated user's bookings for the given role.
// @Summary List bookings
// @Description List bookings where the user is the buyer, or the seller of the booked service.
// @Tags Booking
// @Accept json
// @Produce json
// @Param role query string false "buyer or seller (default buyer)"
// @Success 200 {object} response.Envelope "List of bookings"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return
	}

	role := r.URL.Query().Get(constant.RequestParamRole)
	if role == constant.Empty {
		role = constant.RoleBuyer
	}

	bookings, err := handler.service.ListForUser(ctx, user, role)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithData(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetBookingByID retrieves one booking visible to the authenticated user.
// @Summary Get a booking by ID
// @Description Retrieve a booking; only the buyer or the seller of the booked service may view it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Envelope "Booking details"
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings/{bookingId} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamBookingID)

	booking, err := handler.service.Get(ctx, user, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithData(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// AcceptBooking moves a pending booking to accepted.
// @Summary Accept a booking
// @Description Accept a pending booking; only the seller of the booked service may accept it.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Envelope "Booking accepted successfully"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings/{bookingId}/accept [patch]
// @Security BearerAuth
func (handler *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptBooking")
	defer scope.End()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamBookingID)

	booking, err := handler.service.Accept(ctx, user, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking accepted successfully by user " + user)

	response.WithData(w, http.StatusOK, "Booking accepted successfully", booking)
}
