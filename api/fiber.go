package api

import (
	"log/slog"
	"os"

	certificate_controller "github.com/campusflow/cert-api/api/controllers/certificate"
	"github.com/campusflow/cert-api/api/handler"
	"github.com/campusflow/cert-api/api/middleware"
	"github.com/campusflow/cert-api/api/routes"
	"github.com/campusflow/cert-api/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func InitFiber(certificateController *certificate_controller.CertificateController) {
	cfg := fiber.Config{
		AppName:       "campus cert api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app, certificateController)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
