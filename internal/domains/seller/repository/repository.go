package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"village/infras/otel"
	"village/infras/postgres"
	"village/internal/domains/seller/model"
	"village/shared/constant"
	gDto "village/shared/dto"
	"village/shared/logger"
	gRepo "village/shared/repository"
)

type Seller interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Seller, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Upsert(ctx context.Context, model model.Seller) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Seller]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Seller {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Seller](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the seller row or, when one already exists for the user,
// updates it in place. Conflict target is the user_id unique constraint.
func (repo *repositoryImpl) Upsert(ctx context.Context, mod model.Seller) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	placeholders := make([]string, len(repo.InsertColumns))
	assignments := []string{}

	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col

		if col == model.FieldID || col == model.FieldUserID || col == constant.FieldCreatedAt || col == constant.FieldCreatedBy {
			continue
		}

		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldUserID,
		strings.Join(assignments, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
