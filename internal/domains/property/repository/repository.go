package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aset/infras/otel"
	"aset/infras/postgres"
	"aset/internal/domains/property/model"
	gDto "aset/shared/dto"
	gRepo "aset/shared/repository"
)

type Property interface {
	Insert(ctx context.Context, model model.Property) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Property, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Property]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Property {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Property](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
