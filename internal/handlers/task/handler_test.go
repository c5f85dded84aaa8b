package task_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ourstory/infras/otel/mocks"
	taskMocks "ourstory/internal/domains/task/mocks"
	"ourstory/internal/domains/task/model/dto"
	"ourstory/internal/handlers/task"
	"ourstory/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *taskMocks.MockTaskService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := taskMocks.NewMockTaskService(ctrl)

	handler := task.New(mockService, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router, mockService
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func TestHandler_CreateTask(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *taskMocks.MockTaskService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"text":"  walk  "}`,
			setupMock: func(svc *taskMocks.MockTaskService) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateTaskRequest{Text: "walk"}).
					Return(dto.TaskResponse{ID: 16, Text: "walk", CreatedAt: "2024-05-01T08:00:00.000Z"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"id":16,"text":"walk","done":false,"imageUrl":null,"videoUrl":null,"createdAt":"2024-05-01T08:00:00.000Z"}`,
		},
		{
			name:      "blank text",
			body:      `{"text":"   "}`,
			setupMock: func(_ *taskMocks.MockTaskService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"text is required"}`,
		},
		{
			name:      "missing body",
			body:      ``,
			setupMock: func(_ *taskMocks.MockTaskService) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"request body is required"}`,
		},
		{
			name: "storage failure",
			body: `{"text":"walk"}`,
			setupMock: func(svc *taskMocks.MockTaskService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.TaskResponse{}, failure.Storage("Failed to create task", errors.New("database unavailable")))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to create task","details":"database unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			rec := serve(router, http.MethodPost, "/api/tasks", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_UpdateTask(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, mockService := newRouter(t)
		video := "https://video.example/v.mp4"

		mockService.EXPECT().
			Update(gomock.Any(), int64(3), dto.UpdateTaskRequest{Text: "swim", Done: true, VideoURL: &video}).
			Return(dto.TaskResponse{ID: 3, Text: "swim", Done: true, VideoURL: &video}, nil)

		rec := serve(router, http.MethodPut, "/api/tasks/3", `{"text":"swim","done":true,"imageUrl":null,"videoUrl":"https://video.example/v.mp4"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"videoUrl":"https://video.example/v.mp4"`)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Update(gomock.Any(), int64(99), gomock.Any()).
			Return(dto.TaskResponse{}, failure.NotFound("Task not found"))

		rec := serve(router, http.MethodPut, "/api/tasks/99", `{"text":"swim","done":false}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
	})

	t.Run("id beyond 32 bits", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().
			Update(gomock.Any(), int64(3000000000), gomock.Any()).
			Return(dto.TaskResponse{}, failure.NotFound("Task not found"))

		rec := serve(router, http.MethodPut, "/api/tasks/3000000000", `{"text":"swim","done":false}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
	})

	t.Run("video in image slot", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPut, "/api/tasks/3", `{"text":"swim","imageUrl":"data:video/mp4;base64,AAAAIGZ0"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"imageUrl must be a URL or a base64 image data URI"}`, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPut, "/api/tasks/abc", `{"text":"swim"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UndoTask(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		Undo(gomock.Any(), int64(5)).
		Return(dto.TaskResponse{ID: 5, Text: "walk"}, nil)

	rec := serve(router, http.MethodPut, "/api/tasks/5/undo", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"done":false`)
	assert.Contains(t, rec.Body.String(), `"imageUrl":null`)
}

func TestHandler_ReorderTasks(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *taskMocks.MockTaskService)
		wantCode  int
	}{
		{
			name: "reordered",
			body: `{"order":[3,1,2]}`,
			setupMock: func(svc *taskMocks.MockTaskService) {
				svc.EXPECT().Reorder(gomock.Any(), dto.ReorderTasksRequest{Order: []int64{3, 1, 2}}).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "not a list",
			body:      `{"order":"3,1,2"}`,
			setupMock: func(_ *taskMocks.MockTaskService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non numeric ids",
			body:      `{"order":["a"]}`,
			setupMock: func(_ *taskMocks.MockTaskService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing order",
			body:      `{}`,
			setupMock: func(_ *taskMocks.MockTaskService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non positive id",
			body:      `{"order":[1,0]}`,
			setupMock: func(_ *taskMocks.MockTaskService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			rec := serve(router, http.MethodPut, "/api/tasks/reorder", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
		})
	}
}

func TestHandler_DeleteTask(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, mockService := newRouter(t)
		mockService.EXPECT().Delete(gomock.Any(), int64(8)).Return(nil)

		rec := serve(router, http.MethodDelete, "/api/tasks/8", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := newRouter(t)
		mockService.EXPECT().Delete(gomock.Any(), int64(8)).Return(failure.NotFound("Task not found"))

		rec := serve(router, http.MethodDelete, "/api/tasks/8", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_TracesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := taskMocks.NewMockTaskService(ctrl)
	otl := mocks.NewOtel()

	router := chi.NewRouter()
	router.Route("/api", task.New(mockService, otl).Router)

	storageErr := failure.Storage("Failed to delete task", errors.New("connection reset"))
	mockService.EXPECT().Delete(gomock.Any(), int64(8)).Return(storageErr)

	rec := serve(router, http.MethodDelete, "/api/tasks/8", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	scope := otl.Scope("handler.DeleteTask")
	assert.Equal(t, []error{storageErr}, scope.Errors())
	assert.True(t, scope.Ended())
}
