package service

import (
	"context"
	"fmt"
	"village/infras/otel"
	"village/internal/domains/seller/model"
	"village/internal/domains/seller/model/dto"
	"village/internal/domains/seller/repository"
	"village/shared"
	"village/shared/constant"
	"village/shared/failure"

	"github.com/rs/zerolog/log"
)

type Seller interface {
	Setup(ctx context.Context, actingUserID string, req dto.SetupSellerRequest) (dto.SellerResponse, error)
	Get(ctx context.Context, userID string) (dto.SellerResponse, error)
}

type serviceImpl struct {
	repo repository.Seller
	otel otel.Otel
}

func New(repo repository.Seller, otel otel.Otel) Seller {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Setup creates the user's seller profile, or overwrites it when one already
// exists. Either way the persisted row is read back and returned.
func (s *serviceImpl) Setup(ctx context.Context, actingUserID string, req dto.SetupSellerRequest) (res dto.SellerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Setup")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Upsert(ctx, req.ToModel(actingUserID)); err != nil {
		log.Error().Err(err).Msg("failed to set up seller profile")

		return res, fmt.Errorf("failed to set up seller profile: %w", err)
	}

	seller, err := s.repo.Get(ctx, shared.FilterByID(actingUserID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seller profile")

		return res, fmt.Errorf("failed to get seller profile: %w", err)
	}

	res.FromModel(seller)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID string) (res dto.SellerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	seller, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seller profile")

		return res, fmt.Errorf("failed to get seller profile: %w", err)
	}

	if seller.ID == constant.Empty {
		return res, failure.NotFound("seller profile not found") // nolint:wrapcheck
	}

	res.FromModel(seller)

	return res, nil
}
