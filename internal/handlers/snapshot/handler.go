package snapshot

import (
	"net/http"

	"ourstory/infras/otel"
	"ourstory/internal/domains/snapshot/model/dto"
	"ourstory/internal/domains/snapshot/service"
	"ourstory/shared/constant"
	"ourstory/shared/validator"
	"ourstory/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Snapshot
	otel    otel.Otel
}

func New(service service.Snapshot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/data", handler.GetData)
	router.Post("/data", handler.ReplaceData)
}

// GetData returns every task and journal entry.
// @Summary Get all data
// @Tags Data
// @Produce json
// @Success 200 {object} dto.Data
// @Failure 500 {object} response.Error
// @Router /api/data [get]
func (handler *Handler) GetData(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetData")
	defer scope.End()

	data, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch data")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, data)
}

// ReplaceData swaps both tables for the posted snapshot.
// @Summary Replace all data
// @Tags Data
// @Accept json
// @Produce json
// @Param request body dto.ReplaceRequest true "Snapshot"
// @Success 200 {object} response.Success
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/data [post]
func (handler *Handler) ReplaceData(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceData")
	defer scope.End()

	req := dto.ReplaceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Replace(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("tasks", len(req.Tasks)).Int("journal", len(req.Journal)).Msg("failed to replace data")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer)
}
