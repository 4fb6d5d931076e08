package seller

import (
	"net/http"
	"village/infras/otel"
	sellerDto "village/internal/domains/seller/model/dto"
	sellerService "village/internal/domains/seller/service"
	serviceDto "village/internal/domains/service/model/dto"
	serviceService "village/internal/domains/service/service"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/shared/failure"
	"village/shared/validator"
	"village/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	sellers  sellerService.Seller
	services serviceService.Service
	otel     otel.Otel
}

func New(sellers sellerService.Seller, services serviceService.Service, otel otel.Otel) Handler {
	return Handler{
		sellers:  sellers,
		services: services,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sellers", func(routerGroup chi.Router) {
		routerGroup.Post("/setup", handler.SetupSeller)
		routerGroup.Post("/create-service", handler.CreateService)
		routerGroup.Get("/services", handler.GetMyServices)
		routerGroup.Put("/edit-service/{serviceId}", handler.EditService)
		routerGroup.Put("/toggle-service/{serviceId}", handler.ToggleService)
	})
}

func identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, ok := r.Context().Value(constant.ContextKeyUserID).(string)
	if !ok || user == constant.Empty {
		response.WithError(w, failure.Unauthorized("Missing user identity"))

		return constant.Empty, false
	}

	return user, true
}

// SetupSeller creates or replaces the user's seller profile.
// @Summary Set up a seller profile
// @Description Create the seller profile, or overwrite it when one already exists for the user.
// @Tags Seller
// @Accept json
// @Produce json
// @Param request body sellerDto.SetupSellerRequest true "Seller profile"
// @Success 200 {object} response.Envelope "Seller profile saved successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/sellers/setup [post]
// @Security BearerAuth
func (handler *Handler) SetupSeller(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetupSeller")
	defer scope.End()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	var req sellerDto.SetupSellerRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	seller, err := handler.sellers.Setup(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set up seller profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Seller profile saved successfully by user " + user)

	response.WithData(w, http.StatusOK, "Seller profile saved successfully", seller)
}

// CreateService lists a new service owned by the authenticated seller.
// @Summary Create a service
// @Description Create a new active, unverified service listing.
// @Tags Seller
// @Accept json
// @Produce json
// @Param request body serviceDto.CreateServiceRequest true "Service details"
// @Success 201 {object} response.Envelope "Service created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/sellers/create-service [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	var req serviceDto.CreateServiceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	svc, err := handler.services.Create(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service created successfully by user " + user)

	response.WithData(w, http.StatusCreated, "Service created successfully", svc)
}

// GetMyServices lists the authenticated seller's own services.
// @Summary List my services
// @Description List every service owned by the authenticated user, active or not.
// @Tags Seller
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Envelope "List of services"
// @Failure 500 {object} response.Envelope
// @Router /v1/sellers/services [get]
// @Security BearerAuth
func (handler *Handler) GetMyServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyServices")
	defer scope.End()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	services, err := handler.services.ListMine(ctx, user, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithData(w, http.StatusOK, "Services retrieved successfully", services)
}

// EditService updates a service owned by the authenticated seller.
// @Summary Edit a service
// @Description Update an owned service. Verification status cannot be changed here.
// @Tags Seller
// @Accept json
// @Produce json
// @Param serviceId path string true "Service ID"
// @Param request body serviceDto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} response.Envelope "Service updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/sellers/edit-service/{serviceId} [put]
// @Security BearerAuth
func (handler *Handler) EditService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditService")
	defer scope.End()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamServiceID)

	var req serviceDto.UpdateServiceRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.services.Update(ctx, user, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// ToggleService flips the catalog visibility of an owned service.
// @Summary Toggle a service
// @Description Flip the is_active flag of an owned service.
// @Tags Seller
// @Accept json
// @Produce json
// @Param serviceId path string true "Service ID"
// @Success 200 {object} response.Envelope "Service toggled successfully"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/sellers/toggle-service/{serviceId} [put]
// @Security BearerAuth
func (handler *Handler) ToggleService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleService")
	defer scope.End()

	user, ok := identity(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamServiceID)

	svc, err := handler.services.Toggle(ctx, user, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service toggled successfully by user " + user)

	response.WithData(w, http.StatusOK, "Service toggled successfully", svc)
}
