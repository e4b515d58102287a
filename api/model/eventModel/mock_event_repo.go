package eventmodel

import (
	"time"

	"github.com/campusflow/cert-api/type/shared/model"
)

// IEventRepository defines the interface for event repository operations
type IEventRepository interface {
	GetById(eventId string) (*model.Event, error)
	ListCompleted(cutoff time.Time) ([]*model.Event, error)
}

// Ensure EventRepository implements IEventRepository
var _ IEventRepository = (*EventRepository)(nil)

// MockEventRepository is a mock implementation for testing
type MockEventRepository struct {
	GetByIdFunc       func(eventId string) (*model.Event, error)
	ListCompletedFunc func(cutoff time.Time) ([]*model.Event, error)
}

// Ensure MockEventRepository implements IEventRepository
var _ IEventRepository = (*MockEventRepository)(nil)

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) GetById(eventId string) (*model.Event, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(eventId)
	}
	return nil, nil
}

func (m *MockEventRepository) ListCompleted(cutoff time.Time) ([]*model.Event, error) {
	if m.ListCompletedFunc != nil {
		return m.ListCompletedFunc(cutoff)
	}
	return nil, nil
}
