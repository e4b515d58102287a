package certificate_controller

import (
	"log/slog"

	"github.com/campusflow/cert-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// GetAll lists issuance records for the administrative dashboard.
func (ct *CertificateController) GetAll(c *fiber.Ctx) error {
	certificates, err := ct.certs.GetAll()
	if err != nil {
		slog.Error("Certificate GetAll controller failed", "error", err)
		return response.SendInternalError(c, err)
	}

	slog.Info("Certificate GetAll successful", "count", len(certificates))
	return response.SendSuccess(c, "Certificates fetched", certificates)
}
