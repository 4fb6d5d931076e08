package service

import (
	"context"
	"fmt"
	serviceModel "village/internal/domains/service/model"
	"village/shared"
	"village/shared/constant"
	"village/shared/failure"

	"github.com/rs/zerolog/log"
)

// checkBookable decides whether actingUserID may create a booking against the
// given service. Read-only. Rules are evaluated in order, first failure wins:
// verification, activity, then ownership (no self-booking). The returned
// service carries the owner id and summary fields for the caller.
func (s *serviceImpl) checkBookable(ctx context.Context, actingUserID, serviceID string) (serviceModel.Service, error) {
	svc, err := s.serviceRepo.Get(ctx, shared.FilterByID(serviceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up service for eligibility check")

		return svc, fmt.Errorf("failed to look up service: %w", err)
	}

	if svc.ID == constant.Empty {
		return svc, failure.NotFound("service not found") // nolint:wrapcheck
	}

	if !svc.IsVerified {
		return svc, failure.Forbidden("cannot book unverified service") // nolint:wrapcheck
	}

	if !svc.IsActive {
		return svc, failure.Forbidden("cannot book inactive service") // nolint:wrapcheck
	}

	if svc.UserID == actingUserID {
		return svc, failure.Forbidden("cannot book your own service") // nolint:wrapcheck
	}

	return svc, nil
}

// CheckBookable exposes the eligibility decision without side effects.
func (s *serviceImpl) CheckBookable(ctx context.Context, actingUserID, serviceID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckBookable")
	defer scope.End()
	defer scope.TraceIfError(err)

	if actingUserID == constant.Empty || serviceID == constant.Empty {
		return failure.BadRequestFromString("user ID and service ID are required") // nolint:wrapcheck
	}

	_, err = s.checkBookable(ctx, actingUserID, serviceID)

	return err
}
