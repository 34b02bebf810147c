package main

import (
	"aset/config"
	"aset/di"
	"aset/shared/logger"
)

// @title Aset API
// @version 1.0
// @description Hotel property asset and maintenance tracking service.
// @BasePath /v1
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
