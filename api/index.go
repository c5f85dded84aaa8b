package handler

import (
	"context"
	"net/http"
	"sync"

	"ourstory/config"
	"ourstory/di"
	"ourstory/shared/logger"
	ourHTTP "ourstory/transport/http"
)

var (
	server *ourHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the first request and
// reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.UseJSONOutput(cfg)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
		server.Prepare(context.Background())
	})

	server.ServeHTTP(w, r)
}
