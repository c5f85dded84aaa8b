package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"ourstory/config"
	"ourstory/infras/otel"
	"ourstory/infras/postgres"
	"ourstory/internal/domains/schema"
	"ourstory/shared/constant"
	"ourstory/transport/http/middleware"
	"ourstory/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Schema     schema.Manager
	DB         *postgres.Connection
	Otel       otel.Otel

	state   atomic.Int32
	once    sync.Once
	handler http.Handler
	server  *http.Server
	stopped chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	mw middleware.AppMiddleware,
	schema schema.Manager,
	db *postgres.Connection,
	otel otel.Otel,
) *HTTP {
	h := &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Schema:     schema,
		DB:         db,
		Otel:       otel,
		stopped:    make(chan struct{}),
	}
	h.state.Store(int32(ServerStateReady))

	return h
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// accepting stays true through the grace period so in-flight clients can finish their polling cycle.
func (h *HTTP) accepting() bool {
	return h.State() != ServerStateInCleanupPeriod
}

// Prepare creates and seeds the schema. A failure is logged and the server keeps running without
// persistence.
func (h *HTTP) Prepare(ctx context.Context) {
	if err := h.Schema.Ensure(ctx); err != nil {
		log.Error().Err(err).Msg("Database setup failed, serving without persistence")
	}
}

// Serve prepares the schema, then blocks until the listener is closed by a shutdown signal.
func (h *HTTP) Serve() {
	h.Prepare(context.Background())

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()

	log.Info().
		Str("host", h.Config.Server.Host).
		Str("port", h.Config.Server.Port).
		Str("env", h.Config.Server.Env).
		Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// Handler returns the routed middleware chain. It is built once.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(h.setupRoutes)

	return h.handler
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(
		h.Middleware.RequestID,
		h.Middleware.Tracing,
		h.Middleware.RequestLog,
		h.Middleware.Metrics,
		chiMiddleware.Recoverer,
		h.Middleware.CORS(),
		h.Middleware.RateLimit(),
		h.Middleware.Availability(h.accepting),
	)

	h.Router.SetupRoutes(mux)

	h.handler = mux
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown()

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	h.shutdown()

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// shutdown closes the listener, waits for in-flight requests, then releases the pool and flushes traces.
func (h *HTTP) shutdown() {
	defer close(h.stopped)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
		}
	}

	h.DB.Close()

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
