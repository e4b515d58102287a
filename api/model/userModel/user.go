package usermodel

import (
	"errors"
	"log/slog"

	"github.com/campusflow/cert-api/type/shared/model"
	"gorm.io/gorm"
)

// UserRepository reads account data owned by the account subsystem.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetById(userId string) (*model.User, error) {
	user := new(model.User)
	queryErr := r.db.Where("id = ?", userId).First(user).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("User GetById", "error", queryErr, "user_id", userId)
		return nil, queryErr
	}

	return user, nil
}
