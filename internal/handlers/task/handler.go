package task

import (
	"net/http"

	"ourstory/infras/otel"
	"ourstory/internal/domains/task/model/dto"
	"ourstory/internal/domains/task/service"
	"ourstory/shared"
	"ourstory/shared/constant"
	"ourstory/shared/validator"
	"ourstory/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Task
	otel    otel.Otel
}

func New(service service.Task, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tasks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Put("/reorder", handler.ReorderTasks)
		routerGroup.Put("/{id}", handler.UpdateTask)
		routerGroup.Put("/{id}/undo", handler.UndoTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask adds a task at the end of the list.
// @Summary Create a task
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/tasks [post]
func (handler *Handler) CreateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, created)
}

// UpdateTask overwrites text, completion and media of a task.
// @Summary Update a task
// @Tags Task
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/tasks/{id} [put]
func (handler *Handler) UpdateTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateTaskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	updated, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update task")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, updated)
}

// UndoTask reopens a task and clears its media.
// @Summary Undo a task
// @Tags Task
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/tasks/{id}/undo [put]
func (handler *Handler) UndoTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UndoTask")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	updated, err := handler.service.Undo(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to undo task")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, updated)
}

// ReorderTasks moves the listed tasks to the front, in the given order.
// @Summary Reorder tasks
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.ReorderTasksRequest true "Reorder Tasks Request"
// @Success 200 {object} response.Success
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/tasks/reorder [put]
func (handler *Handler) ReorderTasks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderTasks")
	defer scope.End()

	req := dto.ReorderTasksRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Reorder(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder tasks")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer)
}

// DeleteTask removes a task for good.
// @Summary Delete a task
// @Tags Task
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Success
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/tasks/{id} [delete]
func (handler *Handler) DeleteTask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete task")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer)
}
