package service

import (
	"context"
	"fmt"
	"village/infras/otel"
	"village/internal/domains/request/model"
	"village/internal/domains/request/model/dto"
	"village/internal/domains/request/repository"
	"village/shared"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/shared/failure"
	"village/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Request interface {
	Create(ctx context.Context, actingUserID string, req dto.CreateRequestRequest) (dto.RequestResponse, error)
	ListForUser(ctx context.Context, userID string) (dto.GetRequestsResponse, error)
}

type serviceImpl struct {
	repo repository.Request
	otel otel.Otel
}

func New(repo repository.Request, otel otel.Otel) Request {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, actingUserID string, req dto.CreateRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	neededBy, err := timezone.Parse(constant.BookingDateFormat, req.NeededBy)
	if err != nil {
		return res, failure.BadRequestFromString("invalid needed_by format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	request := req.ToModel(actingUserID, neededBy)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create request")

		return res, fmt.Errorf("failed to create request: %w", err)
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) ListForUser(ctx context.Context, userID string) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	requests, err := s.repo.GetAll(ctx, params, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res.FromModels(requests)

	return res, nil
}
