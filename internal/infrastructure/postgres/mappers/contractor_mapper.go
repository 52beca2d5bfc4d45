package mappers

import (
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
)

func ToDomainContractor(model *models.ContractorModel) *domain.Contractor {
	return &domain.Contractor{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		ReferralCode:   model.ReferralCode,
		CommissionRate: model.CommissionRate,
		IsActive:       model.IsActive,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMContractor(contractor *domain.Contractor) *models.ContractorModel {
	return &models.ContractorModel{
		ID:             contractor.ID,
		Name:           contractor.Name,
		Email:          contractor.Email,
		ReferralCode:   contractor.ReferralCode,
		CommissionRate: contractor.CommissionRate,
		IsActive:       contractor.IsActive,
		CreatedAt:      contractor.CreatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		ContractorID: model.ContractorID,
	}
}
