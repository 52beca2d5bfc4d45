package repository

import (
	"fmt"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/mappers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultContractorRepository struct {
	DB *gorm.DB
}

func NewDefaultContractorRepository(db *gorm.DB) *DefaultContractorRepository {
	return &DefaultContractorRepository{DB: db}
}

func (r *DefaultContractorRepository) Create(contractor *domain.Contractor) error {
	contractorModel := mappers.ToGORMContractor(contractor)
	if err := r.DB.Create(contractorModel).Error; err != nil {
		return fmt.Errorf("failed to create contractor: %w", err)
	}
	contractor.ID = contractorModel.ID
	contractor.CreatedAt = contractorModel.CreatedAt
	return nil
}

func (r *DefaultContractorRepository) List() ([]*domain.Contractor, error) {
	var contractorModels []models.ContractorModel
	if err := r.DB.Order("created_at DESC").Find(&contractorModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list contractors: %w", err)
	}

	contractors := make([]*domain.Contractor, len(contractorModels))
	for i := range contractorModels {
		contractors[i] = mappers.ToDomainContractor(&contractorModels[i])
	}
	return contractors, nil
}

func (r *DefaultContractorRepository) FindActive() ([]*domain.Contractor, error) {
	var contractorModels []models.ContractorModel
	if err := r.DB.Where("is_active = ?", true).Find(&contractorModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find active contractors: %w", err)
	}

	contractors := make([]*domain.Contractor, len(contractorModels))
	for i := range contractorModels {
		contractors[i] = mappers.ToDomainContractor(&contractorModels[i])
	}
	return contractors, nil
}
