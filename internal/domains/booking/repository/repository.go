package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"village/infras/otel"
	"village/infras/postgres"
	"village/internal/domains/booking/model"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/shared/logger"
	gRepo "village/shared/repository"
	"village/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	TransitionStatus(ctx context.Context, id string, from, to model.Status, modifiedBy string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// TransitionStatus performs a conditional status update: the write only lands
// if the persisted status still equals from. Returns false when the row was
// missing or no longer in the expected status, so concurrent transitions
// cannot double-fire.
func (repo *repositoryImpl) TransitionStatus(ctx context.Context, id string, from, to model.Status, modifiedBy string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".TransitionStatus")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :to, %s = :modified_at, %s = :modified_by WHERE %s = :id AND %s = :from",
		model.TableName,
		model.FieldStatus,
		constant.FieldModifiedAt,
		constant.FieldModifiedBy,
		model.FieldID,
		model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"from":        from.String(),
		"to":          to.String(),
		"modified_at": timezone.Now(),
		"modified_by": modifiedBy,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to transition status (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}
