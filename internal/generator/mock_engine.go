package generator

import (
	"context"

	"github.com/campusflow/cert-api/type/shared/model"
)

// ICertificateGenerator defines the interface for certificate generation
type ICertificateGenerator interface {
	Generate(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*Result, error)
}

// Ensure Engine implements ICertificateGenerator
var _ ICertificateGenerator = (*Engine)(nil)

// MockGenerator is a mock implementation for testing
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*Result, error)
}

// Ensure MockGenerator implements ICertificateGenerator
var _ ICertificateGenerator = (*MockGenerator)(nil)

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

func (m *MockGenerator) Generate(ctx context.Context, user *model.User, event *model.Event, certificateID string) (*Result, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, user, event, certificateID)
	}
	return &Result{CertificateID: certificateID}, nil
}
