package certificatemodel

import (
	"github.com/campusflow/cert-api/type/shared/model"
)

// ICertificateRepository defines the interface for certificate repository operations
type ICertificateRepository interface {
	Create(cert *model.Certificate) error
	GetByUserAndEvent(userId string, eventId string) (*model.Certificate, error)
	GetIssued(userId string, eventId string) (*model.Certificate, error)
	GetByCertificateId(certificateId string) (*model.Certificate, error)
	GetAll() ([]*model.Certificate, error)
	UpdateFilePath(certificateId string, filePath string) error
	Delete(certificateId string) (*model.Certificate, error)
}

// Ensure CertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*CertificateRepository)(nil)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	CreateFunc              func(cert *model.Certificate) error
	GetByUserAndEventFunc   func(userId string, eventId string) (*model.Certificate, error)
	GetIssuedFunc           func(userId string, eventId string) (*model.Certificate, error)
	GetByCertificateIdFunc  func(certificateId string) (*model.Certificate, error)
	GetAllFunc              func() ([]*model.Certificate, error)
	UpdateFilePathFunc      func(certificateId string, filePath string) error
	DeleteFunc              func(certificateId string) (*model.Certificate, error)
}

// Ensure MockCertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*MockCertificateRepository)(nil)

// NewMockCertificateRepository creates a new mock repository
func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) Create(cert *model.Certificate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(cert)
	}
	return nil
}

func (m *MockCertificateRepository) GetByUserAndEvent(userId string, eventId string) (*model.Certificate, error) {
	if m.GetByUserAndEventFunc != nil {
		return m.GetByUserAndEventFunc(userId, eventId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetIssued(userId string, eventId string) (*model.Certificate, error) {
	if m.GetIssuedFunc != nil {
		return m.GetIssuedFunc(userId, eventId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetByCertificateId(certificateId string) (*model.Certificate, error) {
	if m.GetByCertificateIdFunc != nil {
		return m.GetByCertificateIdFunc(certificateId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) GetAll() ([]*model.Certificate, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockCertificateRepository) UpdateFilePath(certificateId string, filePath string) error {
	if m.UpdateFilePathFunc != nil {
		return m.UpdateFilePathFunc(certificateId, filePath)
	}
	return nil
}

func (m *MockCertificateRepository) Delete(certificateId string) (*model.Certificate, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(certificateId)
	}
	return nil, nil
}
