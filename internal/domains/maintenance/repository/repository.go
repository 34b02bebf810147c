package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aset/infras/otel"
	"aset/infras/postgres"
	"aset/internal/domains/maintenance/model"
	gDto "aset/shared/dto"
	gRepo "aset/shared/repository"
)

type Maintenance interface {
	Insert(ctx context.Context, model model.MaintenanceOrder) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MaintenanceOrder, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MaintenanceOrder, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateChecked(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.MaintenanceOrder]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MaintenanceOrder](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
