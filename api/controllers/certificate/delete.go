package certificate_controller

import (
	"context"
	"log/slog"

	"github.com/campusflow/cert-api/common/util"
	"github.com/campusflow/cert-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// Delete is the administrative removal of a certificate: the record, the
// backing file and the mirrored copy all go.
func (ct *CertificateController) Delete(c *fiber.Ctx) error {
	certificateId := c.Params("certificateId")

	cert, err := ct.certs.GetByCertificateId(certificateId)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if cert == nil {
		return response.SendNotFound(c, "Certificate not found")
	}

	if _, err := ct.certs.Delete(certificateId); err != nil {
		return response.SendInternalError(c, err)
	}

	removed, err := ct.store.Delete(cert)
	if err != nil {
		slog.Warn("Failed to delete certificate file", "error", err, "certificate_id", certificateId)
	}

	if util.MirrorEnabled() {
		fileName := ct.store.FileName(cert)
		if err := util.RemoveMirroredCertificate(context.Background(), fileName); err != nil {
			slog.Warn("Failed to delete mirrored certificate", "error", err, "file_name", fileName)
		}
	}

	slog.Info("Certificate deleted",
		"certificate_id", certificateId,
		"file_removed", removed)

	return response.SendSuccess(c, "Certificate deleted", cert)
}
