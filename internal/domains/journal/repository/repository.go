package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Journal=MockJournalRepository

import (
	"context"

	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	"ourstory/internal/domains/journal/model"
	gDto "ourstory/shared/dto"
	gRepo "ourstory/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Journal interface {
	Insert(ctx context.Context, model model.Entry) (model.Entry, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Entry) error
	InsertBulkGeneratedTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Entry) error
	GetAll(ctx context.Context, sort gDto.Sort, filter gDto.FilterGroup) ([]model.Entry, error)
	DeleteAllTx(ctx context.Context, sqltx *sqlx.Tx) error
	ResetSequenceTx(ctx context.Context, sqltx *sqlx.Tx) error
	LockTx(ctx context.Context, sqltx *sqlx.Tx) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
}

func New(db *postgres.Connection, otel otel.Otel) Journal {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
