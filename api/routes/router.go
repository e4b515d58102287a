package routes

import (
	certificate_controller "github.com/campusflow/cert-api/api/controllers/certificate"
	"github.com/gofiber/fiber/v2"
)

func Init(router fiber.Router, certificateController *certificate_controller.CertificateController) {
	api := router.Group("api")

	SetupCertificateRoutes(api, certificateController)
}
