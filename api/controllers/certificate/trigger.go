package certificate_controller

import (
	"errors"
	"log/slog"

	"github.com/campusflow/cert-api/api/middleware"
	"github.com/campusflow/cert-api/internal/scheduler"
	"github.com/campusflow/cert-api/type/response"
	"github.com/gofiber/fiber/v2"
)

// TriggerBatch runs the batch generation pass synchronously and returns its
// summary. The scheduler's run guard makes an overlapping trigger a no-op.
func (ct *CertificateController) TriggerBatch(c *fiber.Ctx) error {
	adminId, _ := middleware.GetUserFromContext(c)
	slog.Info("Manual certificate batch trigger", "admin_id", adminId)

	summary, err := ct.batch.RunBatch(c.UserContext())
	if err != nil {
		if errors.Is(err, scheduler.ErrBatchRunning) {
			return response.SendConflict(c, "Certificate batch already running")
		}
		slog.Error("Manual certificate batch failed", "error", err)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Certificate batch completed", summary)
}
