package main

import (
	"booking-widget/config"
	"booking-widget/di"
	"booking-widget/logger"
)

const SERVICE_NAME = "booking-widget"

func main() {
	cfg := config.Load()
	logger.InitLogger(SERVICE_NAME, cfg.Env, cfg.LogLevel)

	container := di.NewContainer(cfg)
	container.BookingWidgetHttpServer.Start()
}
