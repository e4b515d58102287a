package usermodel

import (
	"github.com/campusflow/cert-api/type/shared/model"
)

// IUserRepository defines the interface for user repository operations
type IUserRepository interface {
	GetById(userId string) (*model.User, error)
}

// Ensure UserRepository implements IUserRepository
var _ IUserRepository = (*UserRepository)(nil)

// MockUserRepository is a mock implementation for testing
type MockUserRepository struct {
	GetByIdFunc func(userId string) (*model.User, error)
}

// Ensure MockUserRepository implements IUserRepository
var _ IUserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) GetById(userId string) (*model.User, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(userId)
	}
	return nil, nil
}
