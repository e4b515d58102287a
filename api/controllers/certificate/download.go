package certificate_controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	certificatemodel "github.com/campusflow/cert-api/api/model/certificateModel"
	"github.com/campusflow/cert-api/type/response"
	"github.com/campusflow/cert-api/type/shared/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const downloadRenderTimeout = 30 * time.Second

// Download serves a certificate PDF for (event, user), generating it on
// demand. A record whose file has gone missing is regenerated under the same
// certificate id before serving, so storage loss is repaired transparently.
func (ct *CertificateController) Download(c *fiber.Ctx) error {
	eventId := c.Params("eventId")
	userId := c.Params("userId")

	event, err := ct.events.GetById(eventId)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if event == nil {
		return response.SendNotFound(c, "Event not found")
	}

	user, err := ct.users.GetById(userId)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if user == nil {
		return response.SendNotFound(c, "User not found")
	}

	cert, err := ct.certs.GetByUserAndEvent(userId, eventId)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	if cert == nil {
		cert, err = ct.generateFirstTime(c.UserContext(), user, event)
		if err != nil {
			if errors.Is(err, errEventNotCompleted) {
				return response.SendFailed(c, "Certificates are only available for completed events")
			}
			slog.Error("Certificate Download first-time generation failed",
				"error", err,
				"event_id", eventId,
				"user_id", userId)
			return response.SendError(c, "Certificate generation failed")
		}
	}

	path, exists := ct.store.Resolve(cert)
	if !exists {
		slog.Warn("Certificate file missing, regenerating under existing id",
			"certificate_id", cert.CertificateID,
			"event_id", eventId,
			"user_id", userId)

		renderCtx, cancel := context.WithTimeout(c.UserContext(), downloadRenderTimeout)
		result, genErr := ct.engine.Generate(renderCtx, user, event, cert.CertificateID)
		cancel()

		if genErr != nil {
			slog.Error("Certificate repair failed",
				"error", genErr,
				"certificate_id", cert.CertificateID)
			return response.SendError(c, "Certificate generation failed")
		}

		if updateErr := ct.certs.UpdateFilePath(cert.CertificateID, result.FilePath); updateErr != nil {
			// The file exists; a stale file_path only re-triggers repair.
			slog.Warn("Failed to update certificate file path after repair",
				"error", updateErr,
				"certificate_id", cert.CertificateID)
		}

		path = result.FilePath
	}

	fileName := fmt.Sprintf("certificate_%s_%s.pdf", eventId, userId)
	c.Set("Content-Type", "application/pdf")
	return c.Download(path, fileName)
}

var errEventNotCompleted = errors.New("event not completed")

// generateFirstTime runs the full generation and persist path for a pair with
// no existing record. Only completed events qualify.
func (ct *CertificateController) generateFirstTime(ctx context.Context, user *model.User, event *model.Event) (*model.Certificate, error) {
	if !event.Date.Before(ct.todayUTC()) {
		return nil, errEventNotCompleted
	}
	if event.Status == model.EventStatusCancelled {
		return nil, errEventNotCompleted
	}

	certificateID := uuid.New().String()

	renderCtx, cancel := context.WithTimeout(ctx, downloadRenderTimeout)
	result, err := ct.engine.Generate(renderCtx, user, event, certificateID)
	cancel()

	if err != nil {
		return nil, err
	}

	cert := &model.Certificate{
		CertificateID: certificateID,
		UserID:        user.ID,
		EventID:       event.ID,
		FilePath:      result.FilePath,
		Title:         model.CertificateTitle(event.Title),
		Status:        model.CertificateStatusIssued,
		IssuedAt:      ct.now(),
	}

	if err := ct.certs.Create(cert); err != nil {
		if errors.Is(err, certificatemodel.ErrAlreadyIssued) {
			// A concurrent batch or download won the insert; serve its record.
			existing, lookupErr := ct.certs.GetByUserAndEvent(user.ID, event.ID)
			if lookupErr != nil || existing == nil {
				return nil, fmt.Errorf("certificate already issued but not found: %w", lookupErr)
			}
			return existing, nil
		}
		return nil, err
	}

	return cert, nil
}
