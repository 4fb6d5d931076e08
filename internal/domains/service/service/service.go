package service

import (
	"context"
	"fmt"
	"village/config"
	"village/infras/otel"
	"village/internal/domains/service/model"
	"village/internal/domains/service/model/dto"
	"village/internal/domains/service/repository"
	"village/shared"
	"village/shared/cache"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"
)

type Service interface {
	GetAll(ctx context.Context, params gDto.QueryParams, category, search string) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Create(ctx context.Context, actingUserID string, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	ListMine(ctx context.Context, actingUserID string, params gDto.QueryParams) (dto.GetServicesResponse, error)
	Update(ctx context.Context, actingUserID, serviceID string, req dto.UpdateServiceRequest) error
	Toggle(ctx context.Context, actingUserID, serviceID string) (dto.ServiceResponse, error)
}

type serviceImpl struct {
	repo  repository.Service
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Service {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll is the public catalog listing: active services only, optionally
// narrowed by category and a free-text search over title and description.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, category, search string) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := catalogFilter(category, search)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	svc, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty || !svc.IsActive {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	res.FromModel(svc)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, actingUserID string, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	svc := req.ToModel(actingUserID)

	if err = s.repo.Insert(ctx, svc); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	res.FromModel(svc)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, actingUserID string, params gDto.QueryParams) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(actingUserID, model.FieldUserID, model.TableName)

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, actingUserID, serviceID string, req dto.UpdateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := ownedServiceFilter(actingUserID, serviceID)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return fmt.Errorf("failed to get service: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actingUserID)

	// Verification is platform-asserted; a seller edit never changes it.
	delete(updatedFields, model.FieldIsVerified)

	if len(updatedFields) <= 2 {
		return failure.BadRequestFromString("no fields to update") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidate(ctx, serviceID)

	return nil
}

// Toggle flips the listing's visibility in the public catalog.
func (s *serviceImpl) Toggle(ctx context.Context, actingUserID, serviceID string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := ownedServiceFilter(actingUserID, serviceID)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct{}{}, actingUserID)
	updatedFields[model.FieldIsActive] = !current.IsActive

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle service")

		return res, fmt.Errorf("failed to toggle service: %w", err)
	}

	current.IsActive = !current.IsActive
	res.FromModel(current)

	s.invalidate(ctx, serviceID)

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountService, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, serviceID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, serviceID)); err != nil {
			log.Error().Err(err).Msg("failed to delete service cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()
}

func catalogFilter(category, search string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if category != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    category,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if search != constant.Empty {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_title",
					Field:    model.FieldTitle,
					Value:    search,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_description",
					Field:    model.FieldDescription,
					Value:    search,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
				},
			},
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func ownedServiceFilter(userID, serviceID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    serviceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
