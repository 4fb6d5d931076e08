package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"village/infras/otel"
	"village/infras/postgres"
	"village/internal/domains/profile/model"
	gDto "village/shared/dto"
	gRepo "village/shared/repository"
)

type Profile interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Profile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Profile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Profile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
