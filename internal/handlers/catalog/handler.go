package catalog

import (
	"net/http"
	"village/infras/otel"
	"village/internal/domains/service/service"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Service
	otel    otel.Otel
}

func New(service service.Service, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/products", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProducts)
		routerGroup.Get("/{id}", handler.GetProductByID)
	})
}

// GetProducts lists active services in the public catalog.
// @Summary Browse the catalog
// @Description List active services, optionally filtered by category and a search term over title and description.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param search query string false "Search in title and description"
// @Success 200 {object} response.Envelope "List of services"
// @Failure 500 {object} response.Envelope
// @Router /v1/products [get]
func (handler *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(constant.RequestParamCategory)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	services, err := handler.service.GetAll(ctx, queryParams, category, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Services retrieved successfully")

	response.WithData(w, http.StatusOK, "Services retrieved successfully", services)
}

// GetProductByID retrieves one active service with its seller summary.
// @Summary Get a service by ID
// @Description Retrieve an active service by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Envelope "Service details"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/products/{id} [get]
func (handler *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	svc, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service retrieved successfully")

	response.WithData(w, http.StatusOK, "Service retrieved successfully", svc)
}
