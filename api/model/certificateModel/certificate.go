package certificatemodel

import (
	"errors"
	"log/slog"

	"github.com/campusflow/cert-api/type/shared/model"
	"gorm.io/gorm"
)

// ErrAlreadyIssued is returned when an insert hits the (user, event) unique
// constraint. Callers treat it as "certificate exists", not as a failure, so
// a racing batch and repair request converge on a single record.
var ErrAlreadyIssued = errors.New("certificate already issued for this user and event")

// CertificateRepository handles certificate persistence
type CertificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	createErr := r.db.Create(cert).Error

	if createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			slog.Warn("Certificate Create duplicate", "user_id", cert.UserID, "event_id", cert.EventID)
			return ErrAlreadyIssued
		}
		slog.Error("Certificate Create", "error", createErr, "user_id", cert.UserID, "event_id", cert.EventID)
		return createErr
	}

	return nil
}

func (r *CertificateRepository) GetByUserAndEvent(userId string, eventId string) (*model.Certificate, error) {
	cert := new(model.Certificate)
	queryErr := r.db.Where("user_id = ? AND event_id = ?", userId, eventId).First(cert).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetByUserAndEvent", "error", queryErr)
		return nil, queryErr
	}

	return cert, nil
}

// GetIssued returns the certificate for (user, event) only when its status is
// issued; pending and expired records are treated as absent.
func (r *CertificateRepository) GetIssued(userId string, eventId string) (*model.Certificate, error) {
	cert := new(model.Certificate)
	queryErr := r.db.
		Where("user_id = ? AND event_id = ? AND status = ?", userId, eventId, model.CertificateStatusIssued).
		First(cert).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetIssued", "error", queryErr)
		return nil, queryErr
	}

	return cert, nil
}

func (r *CertificateRepository) GetByCertificateId(certificateId string) (*model.Certificate, error) {
	cert := new(model.Certificate)
	queryErr := r.db.Where("certificate_id = ?", certificateId).First(cert).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetByCertificateId", "error", queryErr)
		return nil, queryErr
	}

	return cert, nil
}

func (r *CertificateRepository) GetAll() ([]*model.Certificate, error) {
	var certs []*model.Certificate
	queryErr := r.db.Order("issued_at DESC").Find(&certs).Error

	if queryErr != nil {
		slog.Error("Certificate GetAll", "error", queryErr)
		return nil, queryErr
	}

	return certs, nil
}

// UpdateFilePath records the new file location after a repair regeneration.
// Only file_path is touched; identity fields stay as issued.
func (r *CertificateRepository) UpdateFilePath(certificateId string, filePath string) error {
	updateErr := r.db.Model(&model.Certificate{}).
		Where("certificate_id = ?", certificateId).
		Update("file_path", filePath).Error

	if updateErr != nil {
		slog.Error("Certificate UpdateFilePath", "error", updateErr, "certificate_id", certificateId)
		return updateErr
	}

	return nil
}

func (r *CertificateRepository) Delete(certificateId string) (*model.Certificate, error) {
	cert, queryErr := r.GetByCertificateId(certificateId)
	if queryErr != nil {
		return nil, queryErr
	}
	if cert == nil {
		return nil, errors.New("certificate not found")
	}

	deleteErr := r.db.Delete(cert).Error
	if deleteErr != nil {
		slog.Error("Certificate Delete", "error", deleteErr, "certificate_id", certificateId)
		return nil, deleteErr
	}

	return cert, nil
}
