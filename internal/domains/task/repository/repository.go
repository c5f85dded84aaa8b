package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Task=MockTaskRepository

import (
	"context"

	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	"ourstory/internal/domains/task/model"
	gDto "ourstory/shared/dto"
	gRepo "ourstory/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Task interface {
	Insert(ctx context.Context, model model.Task) (model.Task, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Task) error
	InsertBulkGeneratedTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Task) error
	GetAll(ctx context.Context, sort gDto.Sort, filter gDto.FilterGroup) ([]model.Task, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, sort gDto.Sort, filter gDto.FilterGroup) ([]model.Task, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (model.Task, bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error
	ResetSequenceTx(ctx context.Context, sqltx *sqlx.Tx) error
	LockTx(ctx context.Context, sqltx *sqlx.Tx) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
