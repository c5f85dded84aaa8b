package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"ourstory/infras/otel/mocks"
	pgMocks "ourstory/infras/postgres/mocks"
	taskMocks "ourstory/internal/domains/task/mocks"
	"ourstory/internal/domains/task/model"
	"ourstory/internal/domains/task/model/dto"
	"ourstory/internal/domains/task/service"
	"ourstory/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Task, *taskMocks.MockTaskRepository, *pgMocks.Transactor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := taskMocks.NewMockTaskRepository(ctrl)
	transactor := pgMocks.NewTransactor()

	return service.New(mockRepo, transactor, mocks.NewOtel()), mockRepo, transactor
}

func ptr[T any](v T) *T {
	return &v
}

func TestTaskService_List(t *testing.T) {
	svc, mockRepo, _ := newService(t)
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Task{{ID: 1, Text: "a", CreatedAt: created}, {ID: 2, Text: "b", CreatedAt: created}}, nil)

	res, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, "2024-05-01T08:00:00.000Z", res[0].CreatedAt)
}

func TestTaskService_ListFailure(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, failure.ErrDatabaseUnavailable)

	_, err := svc.List(context.Background())

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.ErrorIs(t, err, failure.ErrDatabaseUnavailable)
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		setupMock func(repo *taskMocks.MockTaskRepository)
		wantCode  int
		wantText  string
	}{
		{
			name: "stores trimmed text",
			req:  dto.CreateTaskRequest{Text: "  x  "},
			setupMock: func(repo *taskMocks.MockTaskRepository) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task model.Task) (model.Task, error) {
						task.ID = 11

						return task, nil
					})
			},
			wantText: "x",
		},
		{
			name:      "empty text",
			req:       dto.CreateTaskRequest{Text: ""},
			setupMock: func(_ *taskMocks.MockTaskRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "whitespace text",
			req:       dto.CreateTaskRequest{Text: "   "},
			setupMock: func(_ *taskMocks.MockTaskRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateTaskRequest{Text: "walk"},
			setupMock: func(repo *taskMocks.MockTaskRepository) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Task{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(11), res.ID)
			assert.Equal(t, tt.wantText, res.Text)
			assert.False(t, res.Done)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	t.Run("overwrites every column", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), map[string]any{
				model.FieldText:     "read",
				model.FieldDone:     true,
				model.FieldImageURL: ptr("data:image/png;base64,AA=="),
				model.FieldVideoURL: (*string)(nil),
			}, gomock.Any()).
			Return(model.Task{ID: 4, Text: "read", Done: true, ImageURL: ptr("data:image/png;base64,AA==")}, true, nil)

		res, err := svc.Update(context.Background(), 4, dto.UpdateTaskRequest{
			Text:     " read ",
			Done:     true,
			ImageURL: ptr("data:image/png;base64,AA=="),
		})

		assert.NoError(t, err)
		assert.Equal(t, "read", res.Text)
		assert.True(t, res.Done)
		assert.Nil(t, res.VideoURL)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Task{}, false, nil)

		_, err := svc.Update(context.Background(), 404, dto.UpdateTaskRequest{Text: "read"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("blank text", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Update(context.Background(), 4, dto.UpdateTaskRequest{Text: "  "})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTaskService_Undo(t *testing.T) {
	priorStates := []model.Task{
		{ID: 5, Done: true, ImageURL: ptr("a.png"), VideoURL: ptr("b.mp4")},
		{ID: 5, Done: false},
		{ID: 5, Done: true},
	}

	for _, prior := range priorStates {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), map[string]any{
				model.FieldDone:     false,
				model.FieldImageURL: nil,
				model.FieldVideoURL: nil,
			}, gomock.Any()).
			Return(model.Task{ID: prior.ID, Text: prior.Text}, true, nil)

		res, err := svc.Undo(context.Background(), prior.ID)

		assert.NoError(t, err)
		assert.False(t, res.Done)
		assert.Nil(t, res.ImageURL)
		assert.Nil(t, res.VideoURL)
	}

	t.Run("missing id", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Task{}, false, nil)

		_, err := svc.Undo(context.Background(), 9)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTaskService_Reorder(t *testing.T) {
	t.Run("rewrites created_at in requested order", func(t *testing.T) {
		svc, mockRepo, transactor := newService(t)

		mockRepo.EXPECT().LockTx(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().
			GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Task{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}, nil)

		slots := map[int64]time.Time{}
		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Times(4).
			DoAndReturn(func(_ context.Context, _ any, mod map[string]any, filter any) (int64, error) {
				where, args := filterArgs(filter)
				assert.Equal(t, "(tasks.id = :w_id)", where)

				slots[args["w_id"].(int64)] = mod[model.FieldCreatedAt].(time.Time)

				return 1, nil
			})

		err := svc.Reorder(context.Background(), dto.ReorderTasksRequest{Order: []int64{3, 1, 2}})

		assert.NoError(t, err)
		assert.Equal(t, 1, transactor.Calls)
		assert.True(t, slots[3].Before(slots[1]))
		assert.True(t, slots[1].Before(slots[2]))
		assert.True(t, slots[2].Before(slots[4]))
		assert.Equal(t, time.Second, slots[1].Sub(slots[3]))
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().LockTx(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().
			GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		err := svc.Reorder(context.Background(), dto.ReorderTasksRequest{Order: []int64{1}})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("no database", func(t *testing.T) {
		svc, _, transactor := newService(t)
		transactor.Err = failure.ErrDatabaseUnavailable

		err := svc.Reorder(context.Background(), dto.ReorderTasksRequest{Order: []int64{1}})

		assert.ErrorIs(t, err, failure.ErrDatabaseUnavailable)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("missing id", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(context.Background(), 1)))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(svc.Delete(context.Background(), 1)))
	})
}

func TestTaskService_ReplaceAllTx(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	gomock.InOrder(
		mockRepo.EXPECT().LockTx(gomock.Any(), gomock.Any()).Return(nil),
		mockRepo.EXPECT().DeleteAllTx(gomock.Any(), gomock.Any()).Return(nil),
		mockRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rows []model.Task) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, int64(7), rows[0].ID)

				return nil
			}),
		mockRepo.EXPECT().ResetSequenceTx(gomock.Any(), gomock.Any()).Return(nil),
		mockRepo.EXPECT().
			InsertBulkGeneratedTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rows []model.Task) error {
				assert.Len(t, rows, 1)
				assert.Equal(t, "new", rows[0].Text)

				return nil
			}),
	)

	err := svc.ReplaceAllTx(context.Background(), nil, []dto.SnapshotTask{
		{ID: ptr(int64(7)), Text: "kept"},
		{Text: "new"},
	})

	assert.NoError(t, err)
}

func TestTaskService_ReplaceAllTxStopsOnError(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().LockTx(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteAllTx(gomock.Any(), gomock.Any()).Return(errors.New("permission denied"))

	err := svc.ReplaceAllTx(context.Background(), nil, nil)

	assert.ErrorContains(t, err, "permission denied")
}

func TestTaskService_SeedTx(t *testing.T) {
	t.Run("seeds an empty table", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().LockTx(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			InsertBulkGeneratedTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rows []model.Task) error {
				assert.Len(t, rows, len(model.DefaultTasks))

				return nil
			})

		seeded, err := svc.SeedTx(context.Background(), nil)

		assert.NoError(t, err)
		assert.True(t, seeded)
	})

	t.Run("never reseeds", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().LockTx(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		seeded, err := svc.SeedTx(context.Background(), nil)

		assert.NoError(t, err)
		assert.False(t, seeded)
	})
}

func TestTaskService_TracesTaskIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := taskMocks.NewMockTaskRepository(ctrl)
	otl := mocks.NewOtel()
	svc := service.New(mockRepo, pgMocks.NewTransactor(), otl)

	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Task{}, false, nil)

	_, err := svc.Update(context.Background(), 404, dto.UpdateTaskRequest{Text: "read"})

	scope := otl.Scope("service.task.Update")
	assert.Equal(t, int64(404), scope.Attribute("task.id"))
	assert.Equal(t, []error{err}, scope.Errors())
	assert.True(t, scope.Ended())
}
