package main

import (
	"ourstory/config"
	"ourstory/di"
	"ourstory/shared/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
