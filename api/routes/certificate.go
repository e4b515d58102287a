package routes

import (
	certificate_controller "github.com/campusflow/cert-api/api/controllers/certificate"
	"github.com/campusflow/cert-api/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(router fiber.Router, controller *certificate_controller.CertificateController) {
	// Public surfaces: QR verification and participant download
	publicGroup := router.Group("public/certificates")
	publicGroup.Get("verify/:userId/:eventId", controller.Verify)
	publicGroup.Get("download/:eventId/:userId", controller.Download)

	// Administrative surfaces
	adminGroup := router.Group("admin/certificates")
	adminGroup.Use(middleware.Jwt())
	adminGroup.Use(middleware.AdminOnly())
	adminGroup.Get("", controller.GetAll)
	adminGroup.Post("generate", controller.TriggerBatch)
	adminGroup.Delete(":certificateId", controller.Delete)
}
