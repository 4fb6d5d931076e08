package request

import (
	"net/http"
	"village/infras/otel"
	"village/internal/domains/request/model/dto"
	"village/internal/domains/request/service"
	"village/shared/constant"
	"village/shared/failure"
	"village/shared/validator"
	"village/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/create-request", handler.CreateRequest)
		routerGroup.Get("/", handler.GetMyRequests)
	})
}

// CreateRequest posts a new hustle request for the authenticated user.
// @Summary Create a request
// @Description Post a request for a hustle nobody has listed yet. New requests open as active.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Request details"
// @Success 201 {object} response.Envelope "Request created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/requests/create-request [post]
// @Security BearerAuth
func (handler *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return
	}

	var req dto.CreateRequestRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	created, err := handler.service.Create(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Request created successfully by user " + user)

	response.WithData(w, http.StatusCreated, "Request created successfully", created)
}

// GetMyRequests lists the authenticated user's posted requests.
// @Summary List my requests
// @Description List every request posted by the authenticated user, newest first.
// @Tags Request
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope "List of requests"
// @Failure 500 {object} response.Envelope
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRequests")
	defer scope.End()

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return
	}

	requests, err := handler.service.ListForUser(ctx, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Requests retrieved successfully")

	response.WithData(w, http.StatusOK, "Requests retrieved successfully", requests)
}
