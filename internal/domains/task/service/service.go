package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Task=MockTaskService

import (
	"context"
	"fmt"

	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	"ourstory/internal/domains/task/model"
	"ourstory/internal/domains/task/model/dto"
	"ourstory/internal/domains/task/repository"
	"ourstory/shared"
	"ourstory/shared/constant"
	gDto "ourstory/shared/dto"
	"ourstory/shared/failure"
	"ourstory/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errTaskNotFound = "Task not found"

	otelTaskIDAttribute    = "task.id"
	otelTaskOrderAttribute = "task.order"
)

type Task interface {
	List(ctx context.Context) ([]dto.TaskResponse, error)
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTaskRequest) (dto.TaskResponse, error)
	Undo(ctx context.Context, id int64) (dto.TaskResponse, error)
	Reorder(ctx context.Context, req dto.ReorderTasksRequest) error
	Delete(ctx context.Context, id int64) error
	ReplaceAllTx(ctx context.Context, sqltx *sqlx.Tx, tasks []dto.SnapshotTask) error
	SeedTx(ctx context.Context, sqltx *sqlx.Tx) (bool, error)
}

type serviceImpl struct {
	repo repository.Task
	tx   postgres.Transactor
	otel otel.Otel
}

func New(repo repository.Task, tx postgres.Transactor, otel otel.Otel) Task {
	return &serviceImpl{
		repo: repo,
		tx:   tx,
		otel: otel,
	}
}

func byCreation() gDto.Sort {
	return gDto.Ascending(model.FieldCreatedAt)
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.List")
	defer scope.End()

	tasks, err := s.repo.GetAll(ctx, byCreation(), gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list tasks")

		return nil, failure.Storage("Failed to fetch tasks", err) //nolint:wrapcheck
	}

	return dto.FromModels(tasks), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Create")
	defer scope.End()

	task := req.ToModel(timezone.Now())
	if task.Text == "" {
		return res, failure.BadRequestFromString("text is required") //nolint:wrapcheck
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		return res, failure.Storage("Failed to create task", err) //nolint:wrapcheck
	}

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelTaskIDAttribute, id)

	req.Normalize()

	if req.Text == "" {
		return res, failure.BadRequestFromString("text is required") //nolint:wrapcheck
	}

	return s.overwrite(ctx, id, shared.ToColumns(req), "Failed to update task")
}

// Undo reopens a task and drops its media, whatever its previous state.
func (s *serviceImpl) Undo(ctx context.Context, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Undo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelTaskIDAttribute, id)

	return s.overwrite(ctx, id, map[string]any{
		model.FieldDone:     false,
		model.FieldImageURL: nil,
		model.FieldVideoURL: nil,
	}, "Failed to undo task")
}

func (s *serviceImpl) overwrite(ctx context.Context, id int64, columns map[string]any, storageMsg string) (res dto.TaskResponse, err error) {
	updated, found, err := s.repo.Update(ctx, columns, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg(storageMsg)

		return res, failure.Storage(storageMsg, err) //nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound(errTaskNotFound) //nolint:wrapcheck
	}

	res.FromModel(updated)

	return res, nil
}

// Reorder rewrites created_at so the list follows req.Order. See model.ReorderPlan.
func (s *serviceImpl) Reorder(ctx context.Context, req dto.ReorderTasksRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Reorder")
	defer scope.End()

	scope.SetAttribute(otelTaskOrderAttribute, req.Order)

	err = s.tx.WithTransaction(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.LockTx(ctx, sqltx); err != nil {
			return err
		}

		current, err := s.repo.GetAllTx(ctx, sqltx, byCreation(), gDto.FilterGroup{})
		if err != nil {
			return err
		}

		plan := model.ReorderPlan(current, req.Order, timezone.Now())

		for _, task := range current {
			_, err := s.repo.UpdateTx(ctx, sqltx,
				map[string]any{model.FieldCreatedAt: plan[task.ID]},
				shared.FilterByID(task.ID, model.FieldID, model.TableName))
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder tasks")

		return failure.Storage("Failed to reorder tasks", err) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.Delete")
	defer scope.End()

	scope.SetAttribute(otelTaskIDAttribute, id)

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete task")

		return failure.Storage("Failed to delete task", err) //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(errTaskNotFound) //nolint:wrapcheck
	}

	return nil
}

// ReplaceAllTx swaps the whole list for tasks inside sqltx. Client ids are kept and the id
// sequence is moved past them before rows without an id are inserted. The table stays locked
// against concurrent creates until sqltx ends.
func (s *serviceImpl) ReplaceAllTx(ctx context.Context, sqltx *sqlx.Tx, tasks []dto.SnapshotTask) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.ReplaceAllTx")
	defer scope.End()

	withID, withoutID := dto.SplitSnapshot(tasks, timezone.Now())

	if err := s.repo.LockTx(ctx, sqltx); err != nil {
		return fmt.Errorf("failed to lock tasks: %w", err)
	}

	if err := s.repo.DeleteAllTx(ctx, sqltx); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	if err := s.repo.InsertBulkTx(ctx, sqltx, withID); err != nil {
		return fmt.Errorf("failed to insert tasks: %w", err)
	}

	if err := s.repo.ResetSequenceTx(ctx, sqltx); err != nil {
		return fmt.Errorf("failed to align task ids: %w", err)
	}

	if err := s.repo.InsertBulkGeneratedTx(ctx, sqltx, withoutID); err != nil {
		return fmt.Errorf("failed to insert tasks: %w", err)
	}

	return nil
}

// SeedTx fills an empty list with model.DefaultTasks. It reports whether rows were written and
// never touches a table that already holds a row.
func (s *serviceImpl) SeedTx(ctx context.Context, sqltx *sqlx.Tx) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".task.SeedTx")
	defer scope.End()

	if err := s.repo.LockTx(ctx, sqltx); err != nil {
		return false, err //nolint:wrapcheck
	}

	exist, err := s.repo.ExistTx(ctx, sqltx, gDto.FilterGroup{})
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	if exist {
		return false, nil
	}

	if err := s.repo.InsertBulkGeneratedTx(ctx, sqltx, model.Seed(timezone.Now())); err != nil {
		return false, err //nolint:wrapcheck
	}

	return true, nil
}
