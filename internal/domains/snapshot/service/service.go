package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Snapshot=MockSnapshotService

import (
	"context"
	"errors"

	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	journalService "ourstory/internal/domains/journal/service"
	"ourstory/internal/domains/snapshot/model/dto"
	taskService "ourstory/internal/domains/task/service"
	"ourstory/shared/constant"
	"ourstory/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var errDuplicateIDs = errors.New("snapshot contains duplicate ids")

type Snapshot interface {
	Get(ctx context.Context) (dto.Data, error)
	Replace(ctx context.Context, req dto.ReplaceRequest) error
}

type serviceImpl struct {
	tasks   taskService.Task
	journal journalService.Journal
	tx      postgres.Transactor
	otel    otel.Otel
}

func New(tasks taskService.Task, journal journalService.Journal, tx postgres.Transactor, otel otel.Otel) Snapshot {
	return &serviceImpl{
		tasks:   tasks,
		journal: journal,
		tx:      tx,
		otel:    otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.Data, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".snapshot.Get")
	defer scope.End()

	if res.Tasks, err = s.tasks.List(ctx); err != nil {
		scope.TraceError(err)

		return dto.Data{}, err
	}

	if res.Journal, err = s.journal.List(ctx); err != nil {
		scope.TraceError(err)

		return dto.Data{}, err
	}

	return res, nil
}

// Replace swaps both tables for the snapshot in one transaction; a failure leaves them untouched.
// Both tables are locked for the whole swap, so any constraint error past the duplicate check is
// a storage failure rather than a client mistake.
func (s *serviceImpl) Replace(ctx context.Context, req dto.ReplaceRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".snapshot.Replace")
	defer scope.End()

	if req.HasDuplicateIDs() {
		return failure.BadRequest(errDuplicateIDs) //nolint:wrapcheck
	}

	err := s.tx.WithTransaction(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.journal.ReplaceAllTx(ctx, sqltx, req.Journal); err != nil {
			return err //nolint:wrapcheck
		}

		return s.tasks.ReplaceAllTx(ctx, sqltx, req.Tasks) //nolint:wrapcheck
	})
	if err == nil {
		return nil
	}

	scope.TraceError(err)

	event := log.Error().Err(err).Int("tasks", len(req.Tasks)).Int("journal", len(req.Journal))

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		event = event.Str("pq_code", string(pqErr.Code)).Str("constraint", pqErr.Constraint)
	}

	event.Msg("failed to replace data")

	return failure.Storage("Failed to save data", err) //nolint:wrapcheck
}
