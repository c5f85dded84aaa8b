package journal

import (
	"net/http"

	"ourstory/infras/otel"
	"ourstory/internal/domains/journal/model/dto"
	"ourstory/internal/domains/journal/service"
	"ourstory/shared/constant"
	"ourstory/shared/validator"
	"ourstory/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Journal
	otel    otel.Otel
}

func New(service service.Journal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/journal", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddEntry)
		routerGroup.Get("/history", handler.GetHistory)
	})
}

// AddEntry appends one answer to the journal.
// @Summary Add a journal entry
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body dto.AddEntryRequest true "Add Entry Request"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/journal [post]
func (handler *Handler) AddEntry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddEntry")
	defer scope.End()

	req := dto.AddEntryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	entry, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add journal entry")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, entry)
}

// GetHistory returns the journal grouped by day and question.
// @Summary Journal history
// @Tags Journal
// @Produce json
// @Success 200 {array} dto.HistoryGroup
// @Failure 500 {object} response.Error
// @Router /api/journal/history [get]
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	history, err := handler.service.History(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build journal history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, history)
}
