package certificate_controller

import (
	"log/slog"

	"github.com/campusflow/cert-api/type/payload"
	"github.com/gofiber/fiber/v2"
)

// notValid is the uniform negative response. Wrong ids, pending or expired
// certificates and internal lookup failures all collapse to it so the public
// endpoint never reveals whether a (user, event) pair exists.
func notValid(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(payload.VerifyCertificateResult{
		Valid:   false,
		Message: "Certificate is not valid",
	})
}

// Verify is the public verification endpoint reached through the QR payload.
func (ct *CertificateController) Verify(c *fiber.Ctx) error {
	userId := c.Params("userId")
	eventId := c.Params("eventId")

	if userId == "" || eventId == "" {
		return notValid(c)
	}

	cert, err := ct.certs.GetIssued(userId, eventId)
	if err != nil {
		slog.Error("Certificate Verify lookup failed", "error", err, "user_id", userId, "event_id", eventId)
		return notValid(c)
	}
	if cert == nil {
		return notValid(c)
	}

	user, err := ct.users.GetById(cert.UserID)
	if err != nil || user == nil {
		slog.Error("Certificate Verify user lookup failed", "error", err, "user_id", cert.UserID)
		return notValid(c)
	}

	event, err := ct.events.GetById(cert.EventID)
	if err != nil || event == nil {
		slog.Error("Certificate Verify event lookup failed", "error", err, "event_id", cert.EventID)
		return notValid(c)
	}

	slog.Info("Certificate verified", "certificate_id", cert.CertificateID, "user_id", userId, "event_id", eventId)

	return c.Status(fiber.StatusOK).JSON(payload.VerifyCertificateResult{
		Valid: true,
		Certificate: &payload.VerifiedCertificate{
			CertificateID: cert.CertificateID,
			Title:         cert.Title,
			StudentName:   user.Name,
			StudentEmail:  user.Email,
			EventTitle:    event.Title,
			EventDate:     event.Date,
			EventLocation: event.Location,
			IssuedAt:      cert.IssuedAt,
		},
	})
}
