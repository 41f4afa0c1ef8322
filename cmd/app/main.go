package main

import (
	"tick/config"
	"tick/di"
	"tick/shared/logger"
)

// Boot order matters: config first, then the logger it configures,
// then the wired HTTP server. Serve blocks until shutdown.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
