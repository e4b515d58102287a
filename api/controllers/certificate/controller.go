package certificate_controller

import (
	"time"

	certificatemodel "github.com/campusflow/cert-api/api/model/certificateModel"
	eventmodel "github.com/campusflow/cert-api/api/model/eventModel"
	usermodel "github.com/campusflow/cert-api/api/model/userModel"
	"github.com/campusflow/cert-api/internal/generator"
	"github.com/campusflow/cert-api/internal/scheduler"
	"github.com/campusflow/cert-api/internal/store"
)

// CertificateController handles certificate-related HTTP requests
type CertificateController struct {
	certs  certificatemodel.ICertificateRepository
	events eventmodel.IEventRepository
	users  usermodel.IUserRepository
	engine generator.ICertificateGenerator
	store  *store.CertificateStore
	batch  *scheduler.Scheduler

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(
	certs certificatemodel.ICertificateRepository,
	events eventmodel.IEventRepository,
	users usermodel.IUserRepository,
	engine generator.ICertificateGenerator,
	certStore *store.CertificateStore,
	batch *scheduler.Scheduler,
) *CertificateController {
	return &CertificateController{
		certs:  certs,
		events: events,
		users:  users,
		engine: engine,
		store:  certStore,
		batch:  batch,
		now:    time.Now,
	}
}

// todayUTC is the completion cutoff shared with the batch scheduler: an event
// counts as completed when its date falls before midnight UTC of today.
func (ct *CertificateController) todayUTC() time.Time {
	now := ct.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
