package system

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"ourstory/config"
	"ourstory/infras/postgres"
	"ourstory/shared/constant"
	"ourstory/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	healthMessage = "Server is running!"
	testMessage   = "Test endpoint working!"
	rootMessage   = "Our Story Todo App - Backend is running!"
	indexFile     = "index.html"
	pingTimeout   = 2 * time.Second
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Port      string `json:"port"`
	Message   string `json:"message"`
	Database  string `json:"database"`
}

type TestResponse struct {
	Message string `json:"message"`
	Port    string `json:"port"`
	Time    string `json:"time"`
}

type RootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Port      string            `json:"port"`
}

// Handler serves the unversioned routes: probes, metrics and the landing page.
type Handler struct {
	config *config.Config
	db     *postgres.Connection
	now    func() time.Time
}

func New(config *config.Config, db *postgres.Connection) Handler {
	return Handler{
		config: config,
		db:     db,
		now:    time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/health", handler.Health)
	router.Get("/test", handler.Test)
	router.Handle("/metrics", promhttp.Handler())
}

func (handler *Handler) timestamp() string {
	return handler.now().UTC().Format(constant.DateFormat)
}

// Health never fails; the database field tells whether persistence is usable.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, cancel := context.WithTimeout(request.Context(), pingTimeout)
	defer cancel()

	database := constant.DatabaseStatusConnected

	if err := handler.db.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check could not reach database")

		database = constant.DatabaseStatusDisconnected
	}

	response.WithJSON(writer, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: handler.timestamp(),
		Port:      handler.config.Server.Port,
		Message:   healthMessage,
		Database:  database,
	})
}

// @Summary Smoke test
// @Tags System
// @Produce json
// @Success 200 {object} TestResponse
// @Router /test [get]
func (handler *Handler) Test(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, TestResponse{
		Message: testMessage,
		Port:    handler.config.Server.Port,
		Time:    handler.timestamp(),
	})
}

// Root serves the bundled frontend when STATIC_DIR holds an index.html.
func (handler *Handler) Root(writer http.ResponseWriter, request *http.Request) {
	index := filepath.Join(handler.config.App.StaticDir, indexFile)

	if info, err := os.Stat(index); err == nil && !info.IsDir() {
		http.ServeFile(writer, request, index)

		return
	}

	response.WithJSON(writer, http.StatusOK, RootResponse{
		Message: rootMessage,
		Endpoints: map[string]string{
			"health":  "/health",
			"test":    "/test",
			"data":    "/api/data",
			"tasks":   "/api/tasks",
			"journal": "/api/journal",
			"history": "/api/journal/history",
		},
		Port: handler.config.Server.Port,
	})
}

func (handler *Handler) NotFound(writer http.ResponseWriter, request *http.Request) {
	log.Info().Str("path", request.URL.RequestURI()).Msg("no route for request")

	response.WithNotFound(writer, request.URL.RequestURI())
}

func (handler *Handler) MethodNotAllowed(writer http.ResponseWriter, _ *http.Request) {
	response.WithMethodNotAllowed(writer)
}
