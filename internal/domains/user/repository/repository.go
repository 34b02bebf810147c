package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aset/infras/otel"
	"aset/infras/postgres"
	"aset/internal/domains/user/model"
	gDto "aset/shared/dto"
	gRepo "aset/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Profile interface {
	Insert(ctx context.Context, model model.Profile) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Profile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Profile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Profile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
}

type Assignment interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.PropertyAssignment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PropertyAssignment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type profileRepositoryImpl struct {
	gRepo.Repository[model.Profile]
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *profileRepositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return repo.db.Write.BeginTxx(ctx, nil) //nolint:wrapcheck
}

func NewProfile(db *postgres.Connection, otel otel.Otel) Profile {
	return &profileRepositoryImpl{
		Repository: gRepo.NewRepository[model.Profile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type assignmentRepositoryImpl struct {
	gRepo.Repository[model.PropertyAssignment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAssignment(db *postgres.Connection, otel otel.Otel) Assignment {
	return &assignmentRepositoryImpl{
		Repository: gRepo.NewRepository[model.PropertyAssignment](model.AssignmentEntityName, model.AssignmentTableName, model.FieldAssignmentID, db, otel),
		db:         db,
		otel:       otel,
	}
}
