package main

import (
	"context"

	"riviera/config"
	"riviera/di"
	"riviera/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer := di.InitializeConsumer()
	consumer.Start(context.Background())

	http := di.InitializeService()
	http.Serve()
}
