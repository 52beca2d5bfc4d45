package repository

import (
	"fmt"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/mappers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) FindReferred() ([]*domain.User, error) {
	var userModels []models.UserModel
	err := r.DB.
		Where("contractor_id IS NOT NULL").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find referred users: %w", err)
	}

	users := make([]*domain.User, len(userModels))
	for i := range userModels {
		users[i] = mappers.ToDomainUser(&userModels[i])
	}
	return users, nil
}
