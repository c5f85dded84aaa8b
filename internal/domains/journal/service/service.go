package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Journal=MockJournalService

import (
	"context"
	"fmt"

	"ourstory/infras/otel"
	"ourstory/internal/domains/journal/model"
	"ourstory/internal/domains/journal/model/dto"
	"ourstory/internal/domains/journal/repository"
	"ourstory/shared/constant"
	gDto "ourstory/shared/dto"
	"ourstory/shared/failure"
	"ourstory/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Journal interface {
	List(ctx context.Context) ([]dto.EntryResponse, error)
	Add(ctx context.Context, req dto.AddEntryRequest) (dto.EntryResponse, error)
	History(ctx context.Context) ([]dto.HistoryGroup, error)
	ReplaceAllTx(ctx context.Context, sqltx *sqlx.Tx, entries []dto.SnapshotEntry) error
}

type serviceImpl struct {
	repo repository.Journal
	otel otel.Otel
}

func New(repo repository.Journal, otel otel.Otel) Journal {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) all(ctx context.Context) ([]model.Entry, error) {
	return s.repo.GetAll(ctx, gDto.Ascending(model.FieldTimestamp), gDto.FilterGroup{})
}

func (s *serviceImpl) List(ctx context.Context) ([]dto.EntryResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".journal.List")
	defer scope.End()

	entries, err := s.all(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list journal")

		return nil, failure.Storage("Failed to fetch journal", err) //nolint:wrapcheck
	}

	return dto.FromModels(entries), nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddEntryRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".journal.Add")
	defer scope.End()

	entry := req.ToModel(timezone.Now())
	if entry.Question == "" || entry.Answer == "" || entry.Author == "" {
		return res, failure.BadRequestFromString("question, answer and author are required") //nolint:wrapcheck
	}

	if len([]rune(entry.Author)) > model.AuthorMaxLength {
		return res, failure.BadRequestFromString(fmt.Sprintf("author must be at most %d characters", model.AuthorMaxLength)) //nolint:wrapcheck
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add journal entry")

		return res, failure.Storage("Failed to add journal entry", err) //nolint:wrapcheck
	}

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context) ([]dto.HistoryGroup, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".journal.History")
	defer scope.End()

	entries, err := s.all(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load journal history")

		return nil, failure.Storage("Failed to fetch journal history", err) //nolint:wrapcheck
	}

	return dto.BuildHistory(entries), nil
}

// ReplaceAllTx swaps every entry for entries inside sqltx, keeping client ids and timestamps.
// The table stays locked against concurrent writers until sqltx ends.
func (s *serviceImpl) ReplaceAllTx(ctx context.Context, sqltx *sqlx.Tx, entries []dto.SnapshotEntry) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".journal.ReplaceAllTx")
	defer scope.End()

	withID, withoutID := dto.SplitSnapshot(entries, timezone.Now())

	if err := s.repo.LockTx(ctx, sqltx); err != nil {
		return fmt.Errorf("failed to lock journal: %w", err)
	}

	if err := s.repo.DeleteAllTx(ctx, sqltx); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}

	if err := s.repo.InsertBulkTx(ctx, sqltx, withID); err != nil {
		return fmt.Errorf("failed to insert journal: %w", err)
	}

	if err := s.repo.ResetSequenceTx(ctx, sqltx); err != nil {
		return fmt.Errorf("failed to align journal ids: %w", err)
	}

	if err := s.repo.InsertBulkGeneratedTx(ctx, sqltx, withoutID); err != nil {
		return fmt.Errorf("failed to insert journal: %w", err)
	}

	return nil
}
